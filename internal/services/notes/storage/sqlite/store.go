// Package sqlite provides a SQLite-backed notes storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/mediatr/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/mediatr/internal/services/notes/storage"
	"github.com/louisbranch/mediatr/internal/services/notes/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists notes in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite notes store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateNote inserts one note.
func (s *Store) CreateNote(ctx context.Context, note storage.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(note.ID)
	title := strings.TrimSpace(note.Title)
	if id == "" {
		return fmt.Errorf("note id is required")
	}
	if title == "" {
		return fmt.Errorf("title is required")
	}
	createdAt := note.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO notes (id, title, body, created_at) VALUES (?, ?, ?, ?)`,
		id,
		title,
		note.Body,
		toMillis(createdAt),
	)
	if err != nil {
		if isNoteUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// GetNote returns one note by id.
func (s *Store) GetNote(ctx context.Context, id string) (storage.Note, error) {
	if err := ctx.Err(); err != nil {
		return storage.Note{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Note{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Note{}, fmt.Errorf("note id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, body, created_at FROM notes WHERE id = ?`,
		id,
	)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Note{}, storage.ErrNotFound
		}
		return storage.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

// ListNotes returns one page of notes ordered by id.
func (s *Store) ListNotes(ctx context.Context, pageSize int, pageToken string) (storage.NotePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.NotePage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.NotePage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.NotePage{}, fmt.Errorf("page size must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, title, body, created_at
		   FROM notes
		  WHERE id > ?
		  ORDER BY id ASC
		  LIMIT ?`,
		strings.TrimSpace(pageToken),
		pageSize+1,
	)
	if err != nil {
		return storage.NotePage{}, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	page := storage.NotePage{Notes: make([]storage.Note, 0, pageSize)}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return storage.NotePage{}, fmt.Errorf("list notes: %w", err)
		}
		page.Notes = append(page.Notes, note)
	}
	if err := rows.Err(); err != nil {
		return storage.NotePage{}, fmt.Errorf("list notes: %w", err)
	}
	if len(page.Notes) > pageSize {
		page.NextPageToken = page.Notes[pageSize-1].ID
		page.Notes = page.Notes[:pageSize]
	}
	return page, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (storage.Note, error) {
	var note storage.Note
	var createdAt int64
	if err := row.Scan(&note.ID, &note.Title, &note.Body, &createdAt); err != nil {
		return storage.Note{}, err
	}
	note.CreatedAt = fromMillis(createdAt)
	return note, nil
}

func isNoteUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed: notes.id")
}

var _ storage.NoteStore = (*Store)(nil)
