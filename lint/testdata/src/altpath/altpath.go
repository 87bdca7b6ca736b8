package altpath

import (
	"context"

	"example.com/forked/mediator"
)

type archiveNoteCommand struct{ mediator.Command } // want "archiveNoteCommand=1"

type archiveNoteCommandHandler struct{} // want "archiveNoteCommandHandler=1000"

func (archiveNoteCommandHandler) Handle(ctx context.Context, c archiveNoteCommand) (mediator.Unit, error) {
	return mediator.Unit{}, nil
}
