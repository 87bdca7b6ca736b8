package mediator

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// NextFunc continues a request pipeline.
type NextFunc func(ctx context.Context) (any, error)

// StreamNextFunc continues a stream request pipeline.
type StreamNextFunc func(ctx context.Context) iter.Seq2[any, error]

// PipelineBehavior wraps the dispatch of a request. It must call next to
// continue the chain unless it deliberately short-circuits.
type PipelineBehavior func(ctx context.Context, request any, next NextFunc) (any, error)

// StreamPipelineBehavior wraps the dispatch of a stream request.
type StreamPipelineBehavior func(ctx context.Context, request any, next StreamNextFunc) iter.Seq2[any, error]

// BehaviorDescriptor is one entry of the container's behavior list. Name is
// the identity used to find an entry; exactly one of Request and Stream is set.
type BehaviorDescriptor struct {
	Name    string
	Request PipelineBehavior
	Stream  StreamPipelineBehavior
}

// RequestBehavior describes a request behavior.
func RequestBehavior(name string, behavior PipelineBehavior) BehaviorDescriptor {
	return BehaviorDescriptor{Name: name, Request: behavior}
}

// StreamBehavior describes a stream request behavior.
func StreamBehavior(name string, behavior StreamPipelineBehavior) BehaviorDescriptor {
	return BehaviorDescriptor{Name: name, Stream: behavior}
}

// IsStream reports whether the descriptor carries a stream behavior.
func (d BehaviorDescriptor) IsStream() bool {
	return d.Stream != nil
}

func (d BehaviorDescriptor) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBehavior)
	}
	if (d.Request == nil) == (d.Stream == nil) {
		return fmt.Errorf("%w: %s must carry exactly one behavior", ErrInvalidBehavior, d.Name)
	}
	return nil
}

// PublishStrategy selects how notifications fan out to their handlers.
type PublishStrategy int

const (
	// PublishSequential calls handlers one after the other and stops at the
	// first error.
	PublishSequential PublishStrategy = iota
	// PublishConcurrent calls every handler concurrently and joins the errors.
	PublishConcurrent
)

// Services is the container a Mediator is built from. It is populated once at
// startup and is not safe for concurrent mutation.
type Services struct {
	requests      map[reflect.Type]requestFunc
	streams       map[reflect.Type]streamFunc
	notifications map[reflect.Type][]notificationFunc
	pre           map[reflect.Type][]preFunc
	post          map[reflect.Type][]postFunc
	behaviors     []BehaviorDescriptor

	publish       PublishStrategy
	maxConcurrent int
}

// NewServices returns an empty container.
func NewServices() *Services {
	return &Services{
		requests:      make(map[reflect.Type]requestFunc),
		streams:       make(map[reflect.Type]streamFunc),
		notifications: make(map[reflect.Type][]notificationFunc),
		pre:           make(map[reflect.Type][]preFunc),
		post:          make(map[reflect.Type][]postFunc),
	}
}

// Behaviors returns a copy of the behavior list in pipeline order.
func (s *Services) Behaviors() []BehaviorDescriptor {
	out := make([]BehaviorDescriptor, len(s.behaviors))
	copy(out, s.behaviors)
	return out
}

// IndexOfBehavior returns the position of the first behavior named name, or -1.
func (s *Services) IndexOfBehavior(name string) int {
	for i, d := range s.behaviors {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// HasBehavior reports whether a behavior named name is registered.
func (s *Services) HasBehavior(name string) bool {
	return s.IndexOfBehavior(name) != -1
}

// AddBehavior appends a behavior at the innermost position.
func (s *Services) AddBehavior(d BehaviorDescriptor) error {
	if err := d.validate(); err != nil {
		return err
	}
	s.behaviors = append(s.behaviors, d)
	return nil
}

// InsertBehavior inserts a behavior at index, shifting later entries inward.
func (s *Services) InsertBehavior(index int, d BehaviorDescriptor) error {
	if err := d.validate(); err != nil {
		return err
	}
	if index < 0 || index > len(s.behaviors) {
		return fmt.Errorf("mediator: behavior index %d out of range [0,%d]", index, len(s.behaviors))
	}
	s.behaviors = append(s.behaviors, BehaviorDescriptor{})
	copy(s.behaviors[index+1:], s.behaviors[index:])
	s.behaviors[index] = d
	return nil
}

// Configuration drives Register.
type Configuration struct {
	// Modules register handlers and processors.
	Modules []Module
	// Behaviors are appended to the behavior list in order.
	Behaviors []BehaviorDescriptor
	// PublishStrategy selects the notification fan-out.
	PublishStrategy PublishStrategy
	// MaxConcurrentPublish bounds concurrent notification handlers; zero or
	// less means unbounded.
	MaxConcurrentPublish int
}

// Register applies cfg to the container. It does not guard against being
// called twice: behaviors from a second call are appended again. On error s
// is left as it was before the call.
func Register(s *Services, cfg Configuration) error {
	if s == nil {
		return ErrNilServices
	}
	for _, d := range cfg.Behaviors {
		if err := d.validate(); err != nil {
			return err
		}
	}
	staged := s.clone()
	for i, module := range cfg.Modules {
		if module == nil {
			return fmt.Errorf("mediator: module %d is nil", i)
		}
		if err := module(staged); err != nil {
			return fmt.Errorf("mediator: register module %d: %w", i, err)
		}
	}
	staged.behaviors = append(staged.behaviors, cfg.Behaviors...)
	staged.publish = cfg.PublishStrategy
	staged.maxConcurrent = cfg.MaxConcurrentPublish
	*s = *staged
	return nil
}

func (s *Services) clone() *Services {
	c := NewServices()
	maps.Copy(c.requests, s.requests)
	maps.Copy(c.streams, s.streams)
	for k, v := range s.notifications {
		c.notifications[k] = slices.Clone(v)
	}
	for k, v := range s.pre {
		c.pre[k] = slices.Clone(v)
	}
	for k, v := range s.post {
		c.post[k] = slices.Clone(v)
	}
	c.behaviors = slices.Clone(s.behaviors)
	c.publish = s.publish
	c.maxConcurrent = s.maxConcurrent
	return c
}
