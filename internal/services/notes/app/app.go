// Package app wires the notes handlers into a mediator and serves them over
// HTTP.
package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/mediatr/internal/services/notes/storage"
	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
	"github.com/louisbranch/mediatr/pipeline/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// Options configures New.
type Options struct {
	Store          storage.NoteStore
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	// Telemetry, when set, records one dependency per dispatched request.
	Telemetry telemetry.Client
	// MaxConcurrentPublish bounds the event handlers run at once.
	MaxConcurrentPublish int

	NewID func() string
	Now   func() time.Time
}

// publisherRef lets handlers publish through the mediator they are
// registered on, which only exists once the container is built.
type publisherRef struct {
	*mediator.Mediator
}

// New builds the notes mediator.
func New(opts Options) (*mediator.Mediator, error) {
	if opts.Store == nil {
		return nil, errors.New("notes store is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	events := &publisherRef{}
	builder, err := pipeline.AddMediator(mediator.NewServices(), func(cfg *pipeline.Config) {
		cfg.Logger = opts.Logger
		cfg.TracerProvider = opts.TracerProvider
		cfg.PublishStrategy = mediator.PublishConcurrent
		cfg.MaxConcurrentPublish = opts.MaxConcurrentPublish
	}, module(opts, events))
	if err != nil {
		return nil, err
	}
	if opts.Telemetry != nil {
		if builder, err = telemetry.AddTelemetry(builder, opts.Telemetry); err != nil {
			return nil, err
		}
	}

	m := builder.Build()
	events.Mediator = m
	return m, nil
}

func module(opts Options, events mediator.Publisher) mediator.Module {
	index := newTitleIndex()
	return func(s *mediator.Services) error {
		return errors.Join(
			mediator.RegisterRequestHandler[createNoteCommand, storage.Note](s, createNoteCommandHandler{
				store:  opts.Store,
				events: events,
				newID:  opts.NewID,
				now:    opts.Now,
			}),
			mediator.RegisterRequestHandler[getNoteQuery, storage.Note](s, getNoteQueryHandler{store: opts.Store}),
			mediator.RegisterRequestHandler[findNotesByTitleQuery, []string](s, findNotesByTitleQueryHandler{index: index}),
			mediator.RegisterStreamHandler[listNotesStreamQuery, storage.Note](s, listNotesStreamQueryHandler{store: opts.Store}),
			mediator.RegisterNotificationHandler[noteCreatedEvent](s, noteCreatedEventHandler{logger: opts.Logger}),
			mediator.RegisterNotificationHandler[noteCreatedEvent](s, titleIndexEventHandler{index: index}),
		)
	}
}
