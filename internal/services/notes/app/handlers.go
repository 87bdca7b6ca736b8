package app

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/louisbranch/mediatr/internal/services/notes/storage"
	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

type createNoteCommandHandler struct {
	store  storage.NoteStore
	events mediator.Publisher
	newID  func() string
	now    func() time.Time
}

func (h createNoteCommandHandler) Handle(ctx context.Context, command createNoteCommand) (storage.Note, error) {
	note := storage.Note{
		ID:        h.newID(),
		Title:     strings.TrimSpace(command.Title),
		Body:      command.Body,
		CreatedAt: h.now().UTC(),
	}
	if err := h.store.CreateNote(ctx, note); err != nil {
		return storage.Note{}, err
	}
	if err := pipeline.PublishAsync[noteCreatedEvent](ctx, h.events, noteCreatedEvent{Note: note}); err != nil {
		return storage.Note{}, err
	}
	return note, nil
}

type getNoteQueryHandler struct {
	store storage.NoteStore
}

func (h getNoteQueryHandler) Handle(ctx context.Context, query getNoteQuery) (storage.Note, error) {
	return h.store.GetNote(ctx, query.ID)
}

type listNotesStreamQueryHandler struct {
	store storage.NoteStore
}

// Handle walks the store page by page until it runs out of notes or the
// consumer stops.
func (h listNotesStreamQueryHandler) Handle(ctx context.Context, query listNotesStreamQuery) iter.Seq2[storage.Note, error] {
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultPage
	}
	return func(yield func(storage.Note, error) bool) {
		token := ""
		for {
			page, err := h.store.ListNotes(ctx, pageSize, token)
			if err != nil {
				yield(storage.Note{}, err)
				return
			}
			for _, note := range page.Notes {
				if !yield(note, nil) {
					return
				}
			}
			if page.NextPageToken == "" {
				return
			}
			token = page.NextPageToken
		}
	}
}

type noteCreatedEventHandler struct {
	logger *slog.Logger
}

func (h noteCreatedEventHandler) Handle(ctx context.Context, event noteCreatedEvent) error {
	h.logger.InfoContext(ctx, "note created",
		slog.String("note_id", event.Note.ID),
		slog.Int("title_length", len(event.Note.Title)),
	)
	return nil
}

// titleIndexEventHandler keeps a lowercase title to id index of the notes
// created by this process.
type titleIndexEventHandler struct {
	index *titleIndex
}

func (h titleIndexEventHandler) Handle(_ context.Context, event noteCreatedEvent) error {
	h.index.add(event.Note)
	return nil
}

type findNotesByTitleQueryHandler struct {
	index *titleIndex
}

func (h findNotesByTitleQueryHandler) Handle(_ context.Context, query findNotesByTitleQuery) ([]string, error) {
	return h.index.lookup(query.Title), nil
}
