package app

import (
	"strings"

	"github.com/louisbranch/mediatr/internal/services/notes/storage"
	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

const defaultPage = 50

type createNoteCommand struct {
	mediator.Returning[storage.Note]

	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"max=10000"`
}

// Validate rejects titles made only of whitespace, which the required tag
// accepts.
func (c createNoteCommand) Validate() error {
	if c.Title != "" && strings.TrimSpace(c.Title) == "" {
		return &pipeline.FieldError{
			Members: []string{"Title"},
			Message: "The Title field must not be blank.",
		}
	}
	return nil
}

type getNoteQuery struct {
	mediator.Returning[storage.Note]

	ID string `validate:"required,uuid"`
}

type listNotesStreamQuery struct {
	mediator.Stream[storage.Note]

	PageSize int `validate:"min=0,max=500"`
}

type noteCreatedEvent struct {
	mediator.Event

	Note storage.Note
}

type findNotesByTitleQuery struct {
	mediator.Returning[[]string]

	Title string `validate:"required"`
}
