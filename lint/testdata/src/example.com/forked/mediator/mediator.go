package mediator

import (
	"context"
	"iter"
)

type Unit struct{}

type BaseRequest interface{ isRequest() }

type Request[TResponse any] interface {
	BaseRequest
	response() TResponse
}

type BaseStreamRequest interface{ isStreamRequest() }

type StreamRequest[TResponse any] interface {
	BaseStreamRequest
	item() TResponse
}

type Notification interface{ isNotification() }

type Command struct{}

func (Command) isRequest()         {}
func (Command) response() (u Unit) { return u }

type Returning[TResponse any] struct{}

func (Returning[TResponse]) isRequest()              {}
func (Returning[TResponse]) response() (r TResponse) { return r }

type Stream[TResponse any] struct{}

func (Stream[TResponse]) isStreamRequest()    {}
func (Stream[TResponse]) item() (r TResponse) { return r }

type Event struct{}

func (Event) isNotification() {}

type RequestHandler[TRequest Request[TResponse], TResponse any] interface {
	Handle(ctx context.Context, request TRequest) (TResponse, error)
}

type StreamRequestHandler[TRequest StreamRequest[TResponse], TResponse any] interface {
	Handle(ctx context.Context, request TRequest) iter.Seq2[TResponse, error]
}

type NotificationHandler[TNotification Notification] interface {
	Handle(ctx context.Context, notification TNotification) error
}

type Sender interface {
	Send(ctx context.Context, request any) (any, error)
}

type Publisher interface {
	Publish(ctx context.Context, notification any) error
}

type StreamSender interface {
	CreateStream(ctx context.Context, request any) iter.Seq2[any, error]
}

type Dispatcher interface {
	Sender
	Publisher
	StreamSender
}

type Mediator struct{}

func (m *Mediator) Send(ctx context.Context, request any) (any, error) { return nil, nil }

func (m *Mediator) Publish(ctx context.Context, notification any) error { return nil }

func (m *Mediator) CreateStream(ctx context.Context, request any) iter.Seq2[any, error] {
	return func(func(any, error) bool) {}
}

type Services struct{}

func NewServices() *Services { return &Services{} }

type Module func(*Services) error

type Configuration struct {
	Modules []Module
}

func Register(s *Services, cfg Configuration) error { return nil }

func New(s *Services) *Mediator { return &Mediator{} }

func Send[TResponse any](ctx context.Context, sender Sender, request Request[TResponse]) (TResponse, error) {
	var zero TResponse
	_, err := sender.Send(ctx, request)
	return zero, err
}

func Publish[TNotification Notification](ctx context.Context, publisher Publisher, notification TNotification) error {
	return publisher.Publish(ctx, notification)
}

func CreateStream[TResponse any](ctx context.Context, sender StreamSender, request StreamRequest[TResponse]) iter.Seq2[TResponse, error] {
	return func(func(TResponse, error) bool) {}
}
