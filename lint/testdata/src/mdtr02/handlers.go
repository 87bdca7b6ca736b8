package mdtr02

import (
	"context"

	"github.com/louisbranch/mediatr/mediator"
)

type createNoteCommand struct{ mediator.Command }

type getNoteQuery struct{ mediator.Returning[string] }

type createNoteCommandHandler struct{}

func (createNoteCommandHandler) Handle(ctx context.Context, c createNoteCommand) (mediator.Unit, error) {
	return mediator.Unit{}, nil
}

type getNoteQueryHandler struct{}

func (*getNoteQueryHandler) Handle(ctx context.Context, q getNoteQuery) (string, error) {
	return "", nil
}

type noteReader struct{} // want "MDTR02: name should end with 'CommandHandler' or 'QueryHandler'"

func (*noteReader) Handle(ctx context.Context, q getNoteQuery) (string, error) {
	return "", nil
}

type noteWriter struct{} // want "MDTR02"

func (noteWriter) Handle(ctx context.Context, c *createNoteCommand) (mediator.Unit, error) {
	return mediator.Unit{}, nil
}

type stringHandler struct{}

func (stringHandler) Handle(ctx context.Context, s string) (string, error) {
	return s, nil
}

type mismatchedHandler struct{}

func (mismatchedHandler) Handle(ctx context.Context, q getNoteQuery) (int, error) {
	return 0, nil
}
