package mediator

import "errors"

var (
	// ErrNilServices is returned when a registration targets a nil container.
	ErrNilServices = errors.New("mediator: services is nil")

	// ErrNilRequest is returned when a nil request or notification is dispatched.
	ErrNilRequest = errors.New("mediator: request is nil")

	// ErrHandlerNotFound is returned when no handler is registered for the
	// dispatched request type.
	ErrHandlerNotFound = errors.New("mediator: handler not found")

	// ErrDuplicateHandler is returned when a second request or stream handler
	// is registered for the same request type.
	ErrDuplicateHandler = errors.New("mediator: handler already registered")

	// ErrUnexpectedResponse is returned by the typed helpers when a handler
	// produced a value of another type than the request declares.
	ErrUnexpectedResponse = errors.New("mediator: unexpected response type")

	// ErrInvalidBehavior is returned when a behavior descriptor has no name or
	// does not carry exactly one behavior.
	ErrInvalidBehavior = errors.New("mediator: invalid behavior descriptor")
)
