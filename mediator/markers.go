package mediator

import "reflect"

// Unit is the response of requests that produce no value.
type Unit struct{}

// BaseRequest is implemented by every request, whatever its response type.
type BaseRequest interface {
	isRequest()
}

// Request is a unicast message answered with a TResponse.
type Request[TResponse any] interface {
	BaseRequest
	response() TResponse
}

// BaseStreamRequest is implemented by every stream request.
type BaseStreamRequest interface {
	isStreamRequest()
}

// StreamRequest is a unicast message answered with a sequence of TResponse.
type StreamRequest[TResponse any] interface {
	BaseStreamRequest
	item() TResponse
}

// Notification is a broadcast message with any number of handlers.
type Notification interface {
	isNotification()
}

// Command marks a request without a response. Embed it in the request struct.
type Command struct{}

func (Command) isRequest() {}

func (Command) response() (u Unit) { return u }

// Returning marks a request answered with a TResponse.
type Returning[TResponse any] struct{}

func (Returning[TResponse]) isRequest() {}

func (Returning[TResponse]) response() (r TResponse) { return r }

// Stream marks a stream request yielding TResponse values.
type Stream[TResponse any] struct{}

func (Stream[TResponse]) isStreamRequest() {}

func (Stream[TResponse]) item() (r TResponse) { return r }

// Event marks a notification.
type Event struct{}

func (Event) isNotification() {}

// RequestName returns the bare type name of a message, without its package
// path or pointer indirections. Behaviors use it to name logs and spans.
func RequestName(message any) string {
	t := reflect.TypeOf(message)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
