package mdtr08

import (
	"context"

	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

type getNoteQuery struct{ mediator.Returning[string] }

type listNotesStreamQuery struct{ mediator.Stream[string] }

type noteCreatedEvent struct{ mediator.Event }

func dispatch(ctx context.Context, m *mediator.Mediator) {
	_, _ = pipeline.SendAsync[string](context.Background(), m, getNoteQuery{})     // want "MDTR08: provide the caller's context"
	_, _ = pipeline.SendAsync[string](context.TODO(), m, getNoteQuery{})           // want "MDTR08"
	_ = pipeline.PublishAsync(nil, m, noteCreatedEvent{})                          // want "MDTR08"
	_, _ = m.Send(context.Background(), getNoteQuery{})                            // want "MDTR08"
	_ = mediator.CreateStream[string]((context.TODO()), m, listNotesStreamQuery{}) // want "MDTR08"

	_, _ = pipeline.SendAsync[string](ctx, m, getNoteQuery{})
	_, _ = pipeline.SendAsync[string](context.WithoutCancel(ctx), m, getNoteQuery{})
	_ = pipeline.PublishAsync(ctx, m, noteCreatedEvent{})
	_ = mediator.Register(mediator.NewServices(), mediator.Configuration{})
}
