// Package storage defines persistence contracts for notes service state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested note is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a note with the same id already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// Note stores one note.
type Note struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
}

// NotePage stores one page of notes ordered by id.
type NotePage struct {
	Notes         []Note
	NextPageToken string
}

// NoteStore persists notes.
type NoteStore interface {
	CreateNote(ctx context.Context, note Note) error
	GetNote(ctx context.Context, id string) (Note, error)
	ListNotes(ctx context.Context, pageSize int, pageToken string) (NotePage, error)
}
