package mdtr09

import (
	"context"
	"iter"

	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

type createNoteCommand struct{ mediator.Command }

type archiveNoteCommand struct{ mediator.Command }

type getNoteQuery struct{ mediator.Returning[string] }

type listNotesStreamQuery struct{ mediator.Stream[string] }

type noteCreatedEvent struct{ mediator.Event }

type createNoteCommandHandler struct {
	m *mediator.Mediator
}

func (h createNoteCommandHandler) Handle(ctx context.Context, c createNoteCommand) (mediator.Unit, error) {
	if _, err := pipeline.SendAsync[string](ctx, h.m, getNoteQuery{}); err != nil {
		return mediator.Unit{}, err
	}
	_, _ = h.m.Send(ctx, getNoteQuery{})
	_, _ = pipeline.SendAsync[mediator.Unit](ctx, h.m, archiveNoteCommand{}) // want "MDTR09: request handlers should not send other requests"
	_, _ = h.m.Send(ctx, &archiveNoteCommand{})                             // want "MDTR09"
	_ = pipeline.PublishAsync(ctx, h.m, noteCreatedEvent{})
	return mediator.Unit{}, nil
}

type getNoteQueryHandler struct {
	m *mediator.Mediator
}

func (h *getNoteQueryHandler) Handle(ctx context.Context, q getNoteQuery) (string, error) {
	_, err := mediator.Send[string](ctx, h.m, getNoteQuery{}) // want "MDTR09"
	return "", err
}

func (h *getNoteQueryHandler) refresh(ctx context.Context) {
	go func() {
		_, _ = pipeline.SendAsync[mediator.Unit](ctx, h.m, archiveNoteCommand{}) // want "MDTR09"
	}()
}

type listNotesStreamQueryHandler struct {
	m *mediator.Mediator
}

func (h listNotesStreamQueryHandler) Handle(ctx context.Context, q listNotesStreamQuery) iter.Seq2[string, error] {
	_, _ = pipeline.SendAsync[mediator.Unit](ctx, h.m, archiveNoteCommand{})
	return func(func(string, error) bool) {}
}

type noteCreatedEventHandler struct {
	m *mediator.Mediator
}

func (h noteCreatedEventHandler) Handle(ctx context.Context, e noteCreatedEvent) error {
	_, err := pipeline.SendAsync[mediator.Unit](ctx, h.m, archiveNoteCommand{})
	return err
}

type notesService struct {
	m *mediator.Mediator
}

func (s notesService) Create(ctx context.Context) error {
	_, err := pipeline.SendAsync[mediator.Unit](ctx, s.m, createNoteCommand{})
	return err
}
