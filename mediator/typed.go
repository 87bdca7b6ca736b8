package mediator

import (
	"context"
	"fmt"
	"iter"
	"reflect"
)

// Send dispatches request and returns its typed response.
func Send[TResponse any](ctx context.Context, sender Sender, request Request[TResponse]) (TResponse, error) {
	var zero TResponse
	if request == nil {
		return zero, ErrNilRequest
	}
	response, err := sender.Send(ctx, request)
	if err != nil {
		return zero, err
	}
	return typedResponse[TResponse](response)
}

// Publish dispatches notification to its handlers.
func Publish[TNotification Notification](ctx context.Context, publisher Publisher, notification TNotification) error {
	return publisher.Publish(ctx, notification)
}

// CreateStream dispatches request and returns its typed sequence. The
// dispatch happens when the sequence is first iterated.
func CreateStream[TResponse any](ctx context.Context, sender StreamSender, request StreamRequest[TResponse]) iter.Seq2[TResponse, error] {
	return func(yield func(TResponse, error) bool) {
		var zero TResponse
		if request == nil {
			yield(zero, ErrNilRequest)
			return
		}
		for item, err := range sender.CreateStream(ctx, request) {
			if err != nil {
				yield(zero, err)
				return
			}
			typed, err := typedResponse[TResponse](item)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(typed, nil) {
				return
			}
		}
	}
}

func typedResponse[TResponse any](response any) (TResponse, error) {
	var zero TResponse
	if response == nil {
		return zero, nil
	}
	typed, ok := response.(TResponse)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %s", ErrUnexpectedResponse, response, reflect.TypeFor[TResponse]())
	}
	return typed, nil
}
