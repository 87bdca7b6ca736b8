package classify

import (
	"context"
	"iter"

	"github.com/louisbranch/mediatr/mediator"
)

type createNoteCommand struct{ mediator.Command } // want "createNoteCommand=1"

type listNotesStreamQuery struct{ mediator.Stream[string] } // want "listNotesStreamQuery=10"

type noteCreatedEvent struct{ mediator.Event } // want "noteCreatedEvent=100"

type createNoteCommandHandler struct{} // want "createNoteCommandHandler=1000"

func (createNoteCommandHandler) Handle(ctx context.Context, c createNoteCommand) (mediator.Unit, error) {
	return mediator.Unit{}, nil
}

type listNotesStreamQueryHandler struct{} // want "listNotesStreamQueryHandler=10000"

func (*listNotesStreamQueryHandler) Handle(ctx context.Context, q listNotesStreamQuery) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

type noteCreatedEventHandler struct{} // want "noteCreatedEventHandler=100000"

func (noteCreatedEventHandler) Handle(ctx context.Context, e noteCreatedEvent) error { return nil }

// selfHandledCommand is a request that handles itself.
type selfHandledCommand struct{ mediator.Command } // want "selfHandledCommand=1001"

func (selfHandledCommand) Handle(ctx context.Context, c selfHandledCommand) (mediator.Unit, error) {
	return mediator.Unit{}, nil
}

type sender interface {
	Send(ctx context.Context, request any) (any, error)
}

type note struct{}
