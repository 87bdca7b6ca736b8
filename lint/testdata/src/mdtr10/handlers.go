package mdtr10

import (
	"context"
	"iter"

	"github.com/louisbranch/mediatr/mediator"
)

type createNoteCommand struct{ mediator.Command }

type listNotesStreamQuery struct{ mediator.Stream[string] }

type noteCreatedEvent struct{ mediator.Event }

type CreateNoteCommandHandler struct{} // want "MDTR10: handlers should not be exported"

func (CreateNoteCommandHandler) Handle(ctx context.Context, c createNoteCommand) (mediator.Unit, error) {
	return mediator.Unit{}, nil
}

type NoteCreatedEventHandler struct{} // want "MDTR10"

func (*NoteCreatedEventHandler) Handle(ctx context.Context, e noteCreatedEvent) error { return nil }

type ListNotesStreamQueryHandler struct{}

func (ListNotesStreamQueryHandler) Handle(ctx context.Context, q listNotesStreamQuery) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

type createNoteCommandHandler struct{}

func (createNoteCommandHandler) Handle(ctx context.Context, c createNoteCommand) (mediator.Unit, error) {
	return mediator.Unit{}, nil
}

type NoteService struct{}

func (NoteService) Handle(ctx context.Context, s string) error { return nil }
