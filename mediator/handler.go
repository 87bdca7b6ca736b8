package mediator

import (
	"context"
	"fmt"
	"iter"
	"reflect"
)

// RequestHandler handles one request type.
type RequestHandler[TRequest Request[TResponse], TResponse any] interface {
	Handle(ctx context.Context, request TRequest) (TResponse, error)
}

// StreamRequestHandler handles one stream request type. Errors are yielded
// as the second value of the sequence; the handler stops after yielding one.
type StreamRequestHandler[TRequest StreamRequest[TResponse], TResponse any] interface {
	Handle(ctx context.Context, request TRequest) iter.Seq2[TResponse, error]
}

// NotificationHandler handles one notification type.
type NotificationHandler[TNotification Notification] interface {
	Handle(ctx context.Context, notification TNotification) error
}

// RequestPreProcessor runs before the handler of TRequest. An error aborts
// the request before the handler is called.
type RequestPreProcessor[TRequest BaseRequest] interface {
	Process(ctx context.Context, request TRequest) error
}

// RequestPostProcessor runs after the handler of TRequest succeeded.
type RequestPostProcessor[TRequest Request[TResponse], TResponse any] interface {
	Process(ctx context.Context, request TRequest, response TResponse) error
}

// Module registers a group of handlers on a container.
type Module func(*Services) error

type (
	requestFunc      func(ctx context.Context, request any) (any, error)
	streamFunc       func(ctx context.Context, request any) iter.Seq2[any, error]
	notificationFunc func(ctx context.Context, notification any) error
	preFunc          func(ctx context.Context, request any) error
	postFunc         func(ctx context.Context, request, response any) error
)

// RegisterRequestHandler registers the handler of TRequest. TRequest must be
// the concrete type that is sent, a pointer type when requests are sent by
// pointer.
func RegisterRequestHandler[TRequest Request[TResponse], TResponse any](s *Services, handler RequestHandler[TRequest, TResponse]) error {
	if s == nil {
		return ErrNilServices
	}
	if handler == nil {
		return fmt.Errorf("mediator: nil handler for %s", reflect.TypeFor[TRequest]())
	}
	key := reflect.TypeFor[TRequest]()
	if _, ok := s.requests[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, key)
	}
	s.requests[key] = func(ctx context.Context, request any) (any, error) {
		return handler.Handle(ctx, request.(TRequest))
	}
	return nil
}

// RegisterStreamHandler registers the handler of the stream request TRequest.
func RegisterStreamHandler[TRequest StreamRequest[TResponse], TResponse any](s *Services, handler StreamRequestHandler[TRequest, TResponse]) error {
	if s == nil {
		return ErrNilServices
	}
	if handler == nil {
		return fmt.Errorf("mediator: nil stream handler for %s", reflect.TypeFor[TRequest]())
	}
	key := reflect.TypeFor[TRequest]()
	if _, ok := s.streams[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, key)
	}
	s.streams[key] = func(ctx context.Context, request any) iter.Seq2[any, error] {
		return func(yield func(any, error) bool) {
			for item, err := range handler.Handle(ctx, request.(TRequest)) {
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(item, nil) {
					return
				}
			}
		}
	}
	return nil
}

// RegisterNotificationHandler adds a handler of TNotification. Handlers run
// in registration order when publishing sequentially.
func RegisterNotificationHandler[TNotification Notification](s *Services, handler NotificationHandler[TNotification]) error {
	if s == nil {
		return ErrNilServices
	}
	if handler == nil {
		return fmt.Errorf("mediator: nil notification handler for %s", reflect.TypeFor[TNotification]())
	}
	key := reflect.TypeFor[TNotification]()
	s.notifications[key] = append(s.notifications[key], func(ctx context.Context, notification any) error {
		return handler.Handle(ctx, notification.(TNotification))
	})
	return nil
}

// RegisterPreProcessor adds a pre processor of TRequest.
func RegisterPreProcessor[TRequest BaseRequest](s *Services, processor RequestPreProcessor[TRequest]) error {
	if s == nil {
		return ErrNilServices
	}
	if processor == nil {
		return fmt.Errorf("mediator: nil pre processor for %s", reflect.TypeFor[TRequest]())
	}
	key := reflect.TypeFor[TRequest]()
	s.pre[key] = append(s.pre[key], func(ctx context.Context, request any) error {
		return processor.Process(ctx, request.(TRequest))
	})
	return nil
}

// RegisterPostProcessor adds a post processor of TRequest.
func RegisterPostProcessor[TRequest Request[TResponse], TResponse any](s *Services, processor RequestPostProcessor[TRequest, TResponse]) error {
	if s == nil {
		return ErrNilServices
	}
	if processor == nil {
		return fmt.Errorf("mediator: nil post processor for %s", reflect.TypeFor[TRequest]())
	}
	key := reflect.TypeFor[TRequest]()
	s.post[key] = append(s.post[key], func(ctx context.Context, request, response any) error {
		typed, _ := response.(TResponse)
		return processor.Process(ctx, request.(TRequest), typed)
	})
	return nil
}
