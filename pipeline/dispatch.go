package pipeline

import (
	"context"

	"github.com/louisbranch/mediatr/mediator"
)

// SendAsync dispatches request and returns its typed response. Callers must
// pass the context of the operation they are serving.
func SendAsync[TResponse any](ctx context.Context, sender mediator.Sender, request mediator.Request[TResponse]) (TResponse, error) {
	return mediator.Send[TResponse](ctx, sender, request)
}

// PublishAsync dispatches notification to its handlers.
func PublishAsync[TNotification mediator.Notification](ctx context.Context, publisher mediator.Publisher, notification TNotification) error {
	return mediator.Publish[TNotification](ctx, publisher, notification)
}
