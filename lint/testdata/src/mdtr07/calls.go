package mdtr07

import (
	"context"

	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

type getNoteQuery struct{ mediator.Returning[string] }

type listNotesStreamQuery struct{ mediator.Stream[string] }

type noteCreatedEvent struct{ mediator.Event }

func dispatch(ctx context.Context, m *mediator.Mediator, s mediator.Sender, d mediator.Dispatcher) {
	_, _ = m.Send(ctx, getNoteQuery{})              // want "MDTR07: use the generic mediator.Send function instead of the method"
	_ = m.Publish(ctx, noteCreatedEvent{})          // want "MDTR07: use the generic mediator.Publish function"
	_ = m.CreateStream(ctx, listNotesStreamQuery{}) // want "MDTR07: use the generic mediator.CreateStream function"
	_, _ = s.Send(ctx, getNoteQuery{})              // want "MDTR07"
	_, _ = d.Send(ctx, getNoteQuery{})              // want "MDTR07"

	_, _ = mediator.Send[string](ctx, m, getNoteQuery{})
	_ = mediator.CreateStream[string](ctx, m, listNotesStreamQuery{})
	_, _ = pipeline.SendAsync[string](ctx, m, getNoteQuery{})
	_ = pipeline.PublishAsync(ctx, m, noteCreatedEvent{})
}
