package mediator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"
	"reflect"

	"golang.org/x/sync/errgroup"
)

// Sender dispatches a request to its handler.
type Sender interface {
	Send(ctx context.Context, request any) (any, error)
}

// Publisher dispatches a notification to its handlers.
type Publisher interface {
	Publish(ctx context.Context, notification any) error
}

// StreamSender dispatches a stream request to its handler.
type StreamSender interface {
	CreateStream(ctx context.Context, request any) iter.Seq2[any, error]
}

// Dispatcher is everything a Mediator does.
type Dispatcher interface {
	Sender
	Publisher
	StreamSender
}

var _ Dispatcher = (*Mediator)(nil)

// Mediator dispatches messages to the handlers of the container it was built
// from. It is immutable and safe for concurrent use.
type Mediator struct {
	requests        map[reflect.Type]requestFunc
	streams         map[reflect.Type]streamFunc
	notifications   map[reflect.Type][]notificationFunc
	pre             map[reflect.Type][]preFunc
	post            map[reflect.Type][]postFunc
	behaviors       []PipelineBehavior
	streamBehaviors []StreamPipelineBehavior
	publish         PublishStrategy
	maxConcurrent   int
}

// New snapshots s into a Mediator. Later changes to s are not observed.
func New(s *Services) *Mediator {
	if s == nil {
		s = NewServices()
	}
	m := &Mediator{
		requests:      maps.Clone(s.requests),
		streams:       maps.Clone(s.streams),
		notifications: make(map[reflect.Type][]notificationFunc, len(s.notifications)),
		pre:           make(map[reflect.Type][]preFunc, len(s.pre)),
		post:          make(map[reflect.Type][]postFunc, len(s.post)),
		publish:       s.publish,
		maxConcurrent: s.maxConcurrent,
	}
	for key, handlers := range s.notifications {
		m.notifications[key] = append([]notificationFunc(nil), handlers...)
	}
	for key, processors := range s.pre {
		m.pre[key] = append([]preFunc(nil), processors...)
	}
	for key, processors := range s.post {
		m.post[key] = append([]postFunc(nil), processors...)
	}
	for _, d := range s.behaviors {
		if d.IsStream() {
			m.streamBehaviors = append(m.streamBehaviors, d.Stream)
		} else if d.Request != nil {
			m.behaviors = append(m.behaviors, d.Request)
		}
	}
	return m
}

// Send dispatches request through the behavior chain to its handler.
func (m *Mediator) Send(ctx context.Context, request any) (any, error) {
	if isNil(request) {
		return nil, ErrNilRequest
	}
	if ctx == nil {
		ctx = context.Background()
	}
	key := reflect.TypeOf(request)
	handler, ok := m.requests[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHandlerNotFound, key)
	}
	pre, post := m.pre[key], m.post[key]

	next := NextFunc(func(ctx context.Context) (any, error) {
		for _, process := range pre {
			if err := process(ctx, request); err != nil {
				return nil, err
			}
		}
		response, err := handler(ctx, request)
		if err != nil {
			return nil, err
		}
		for _, process := range post {
			if err := process(ctx, request, response); err != nil {
				return nil, err
			}
		}
		return response, nil
	})
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		behavior, inner := m.behaviors[i], next
		next = func(ctx context.Context) (any, error) {
			return behavior(ctx, request, inner)
		}
	}
	return next(ctx)
}

// CreateStream dispatches request through the stream behavior chain to its
// handler. Lookup failures are yielded as the first error of the sequence.
func (m *Mediator) CreateStream(ctx context.Context, request any) iter.Seq2[any, error] {
	if isNil(request) {
		return failedStream(ErrNilRequest)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	key := reflect.TypeOf(request)
	handler, ok := m.streams[key]
	if !ok {
		return failedStream(fmt.Errorf("%w: %s", ErrHandlerNotFound, key))
	}

	next := StreamNextFunc(func(ctx context.Context) iter.Seq2[any, error] {
		return handler(ctx, request)
	})
	for i := len(m.streamBehaviors) - 1; i >= 0; i-- {
		behavior, inner := m.streamBehaviors[i], next
		next = func(ctx context.Context) iter.Seq2[any, error] {
			return behavior(ctx, request, inner)
		}
	}
	return next(ctx)
}

// Publish dispatches notification to every handler of its type. With no
// handler registered it does nothing.
func (m *Mediator) Publish(ctx context.Context, notification any) error {
	if isNil(notification) {
		return ErrNilRequest
	}
	if ctx == nil {
		ctx = context.Background()
	}
	handlers := m.notifications[reflect.TypeOf(notification)]
	if m.publish == PublishConcurrent && len(handlers) > 1 {
		return m.publishConcurrent(ctx, notification, handlers)
	}
	for _, handle := range handlers {
		if err := handle(ctx, notification); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mediator) publishConcurrent(ctx context.Context, notification any, handlers []notificationFunc) error {
	var g errgroup.Group
	if m.maxConcurrent > 0 {
		g.SetLimit(m.maxConcurrent)
	}
	errs := make([]error, len(handlers))
	for i, handle := range handlers {
		g.Go(func() error {
			errs[i] = handle(ctx, notification)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

func failedStream(err error) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		yield(nil, err)
	}
}

// isNil reports whether v is nil or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
