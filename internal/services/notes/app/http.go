package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/mediatr/internal/platform/requestctx"
	"github.com/louisbranch/mediatr/internal/services/notes/storage"
	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

const maxRequestBody = 1 << 20

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type errorResponse struct {
	Error    string   `json:"error"`
	Failures []string `json:"failures,omitempty"`
}

type api struct {
	mediator mediator.Dispatcher
	logger   *slog.Logger
	timeout  time.Duration
}

// NewHandler serves the notes API backed by d. A positive timeout bounds each
// dispatch.
func NewHandler(d mediator.Dispatcher, logger *slog.Logger, timeout time.Duration) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	a := &api{mediator: d, logger: logger, timeout: timeout}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /notes", a.createNote)
	mux.HandleFunc("GET /notes/{id}", a.getNote)
	mux.HandleFunc("GET /notes", a.listNotes)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return withRequestID(mux)
}

// withRequestID reuses the caller's request id or assigns a new one, and
// echoes it on the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestctx.HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(requestctx.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), id)))
	})
}

func (a *api) context(r *http.Request) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), a.timeout)
}

func (a *api) createNote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.context(r)
	defer cancel()

	var command createNoteCommand
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&command); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	note, err := pipeline.SendAsync[storage.Note](ctx, a.mediator, command)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/notes/"+note.ID)
	a.writeJSON(w, http.StatusCreated, toResponse(note))
}

func (a *api) getNote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.context(r)
	defer cancel()

	note, err := pipeline.SendAsync[storage.Note](ctx, a.mediator, getNoteQuery{ID: r.PathValue("id")})
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, toResponse(note))
}

// listNotes streams notes as newline-delimited JSON. With a title parameter
// it answers the ids of the notes created with that title instead.
func (a *api) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.context(r)
	defer cancel()

	if title := r.URL.Query().Get("title"); title != "" {
		ids, err := pipeline.SendAsync[[]string](ctx, a.mediator, findNotesByTitleQuery{Title: title})
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		if ids == nil {
			ids = []string{}
		}
		a.writeJSON(w, http.StatusOK, ids)
		return
	}

	query := listNotesStreamQuery{}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page_size must be an integer"})
			return
		}
		query.PageSize = size
	}

	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	started := false
	for note, err := range mediator.CreateStream[storage.Note](ctx, a.mediator, query) {
		if err != nil {
			if !started {
				a.writeError(w, r, err)
				return
			}
			a.logger.ErrorContext(ctx, "list notes interrupted", slog.Any("error", err))
			return
		}
		if !started {
			w.Header().Set("Content-Type", "application/x-ndjson")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if err := enc.Encode(toResponse(note)); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	if !started {
		w.Header().Set("Content-Type", "application/x-ndjson")
		w.WriteHeader(http.StatusOK)
	}
}

func (a *api) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *pipeline.ValidationError
	switch {
	case errors.As(err, &verr):
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Failures: verr.Failures})
	case errors.Is(err, storage.ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, errorResponse{Error: "note not found"})
	case errors.Is(err, storage.ErrAlreadyExists):
		a.writeJSON(w, http.StatusConflict, errorResponse{Error: "note already exists"})
	case errors.Is(err, context.DeadlineExceeded):
		a.writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "request timed out"})
	default:
		a.logger.ErrorContext(r.Context(), "notes request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		a.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (a *api) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Error("encode response", slog.Any("error", err))
	}
}

func toResponse(note storage.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}
}
