package pipeline

import (
	"context"

	"github.com/louisbranch/mediatr/mediator"
)

type Config struct {
	mediator.Configuration
}

type Builder struct {
	services *mediator.Services
}

func AddMediator(services *mediator.Services, configure func(*Config), modules ...mediator.Module) (*Builder, error) {
	if err := mediator.Register(services, mediator.Configuration{Modules: modules}); err != nil {
		return nil, err
	}
	return &Builder{services: services}, nil
}

func SendAsync[TResponse any](ctx context.Context, sender mediator.Sender, request mediator.Request[TResponse]) (TResponse, error) {
	return mediator.Send[TResponse](ctx, sender, request)
}

func PublishAsync[TNotification mediator.Notification](ctx context.Context, publisher mediator.Publisher, notification TNotification) error {
	return mediator.Publish[TNotification](ctx, publisher, notification)
}
