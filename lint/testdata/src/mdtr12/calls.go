package mdtr12

import (
	"context"

	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

type getNoteQuery struct{ mediator.Returning[string] }

type listNotesStreamQuery struct{ mediator.Stream[string] }

type noteCreatedEvent struct{ mediator.Event }

func dispatch(ctx context.Context, m *mediator.Mediator) {
	_, _ = mediator.Send[string](ctx, m, getNoteQuery{}) // want "MDTR12: use pipeline.SendAsync instead"
	_ = mediator.Publish(ctx, m, noteCreatedEvent{})     // want "MDTR12: use pipeline.PublishAsync instead"
	_, _ = m.Send(ctx, getNoteQuery{})                   // want "MDTR12: use pipeline.SendAsync"
	_ = m.Publish(ctx, noteCreatedEvent{})               // want "MDTR12: use pipeline.PublishAsync"

	_ = mediator.CreateStream[string](ctx, m, listNotesStreamQuery{})
	_, _ = pipeline.SendAsync[string](ctx, m, getNoteQuery{})
	_ = pipeline.PublishAsync(ctx, m, noteCreatedEvent{})
}
