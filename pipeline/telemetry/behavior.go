package telemetry

import (
	"context"
	"errors"
	"iter"
	"reflect"
	"time"

	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
	"go.opentelemetry.io/otel/trace"
)

// ErrNilBuilder is returned by AddTelemetry for a nil or empty builder.
var ErrNilBuilder = errors.New("telemetry: builder is nil")

// Behavior names registered by AddTelemetry.
const (
	BehaviorName       = "pipeline.telemetry"
	StreamBehaviorName = "pipeline.stream_telemetry"
)

// AddTelemetry inserts the telemetry behaviors right after the tracing
// behaviors registered by pipeline.AddMediator. It does nothing when the
// behaviors are already present or when a tracing behavior is missing. A nil
// client, typed or not, registers pass-through behaviors.
func AddTelemetry(builder *pipeline.Builder, client Client) (*pipeline.Builder, error) {
	if builder == nil || builder.Services() == nil {
		return nil, ErrNilBuilder
	}
	if isNilClient(client) {
		client = nil
	}
	services := builder.Services()
	if services.HasBehavior(BehaviorName) || services.HasBehavior(StreamBehaviorName) {
		return builder, nil
	}

	requestIdx := services.IndexOfBehavior(pipeline.TracingBehaviorName)
	streamIdx := services.IndexOfBehavior(pipeline.StreamTracingBehaviorName)
	if requestIdx != -1 {
		if err := services.InsertBehavior(requestIdx+1, mediator.RequestBehavior(BehaviorName, requestTelemetry(client))); err != nil {
			return nil, err
		}
		if streamIdx > requestIdx {
			streamIdx++
		}
	}
	if streamIdx != -1 {
		if err := services.InsertBehavior(streamIdx+1, mediator.StreamBehavior(StreamBehaviorName, streamTelemetry(client))); err != nil {
			return nil, err
		}
	}
	return builder, nil
}

func isNilClient(client Client) bool {
	if client == nil {
		return true
	}
	v := reflect.ValueOf(client)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func requestTelemetry(client Client) mediator.PipelineBehavior {
	if client == nil {
		return func(ctx context.Context, _ any, next mediator.NextFunc) (any, error) {
			return next(ctx)
		}
	}
	return func(ctx context.Context, request any, next mediator.NextFunc) (any, error) {
		op := start(ctx, request)
		response, err := next(ctx)
		op.finish(ctx, client, err)
		return response, err
	}
}

func streamTelemetry(client Client) mediator.StreamPipelineBehavior {
	if client == nil {
		return func(ctx context.Context, _ any, next mediator.StreamNextFunc) iter.Seq2[any, error] {
			return next(ctx)
		}
	}
	return func(ctx context.Context, request any, next mediator.StreamNextFunc) iter.Seq2[any, error] {
		return func(yield func(any, error) bool) {
			op := start(ctx, request)
			for item, err := range next(ctx) {
				if err != nil {
					op.finish(ctx, client, err)
					yield(nil, err)
					return
				}
				if !yield(item, nil) {
					op.finish(ctx, client, nil)
					return
				}
			}
			op.finish(ctx, client, nil)
		}
	}
}

type operation struct {
	dependency Dependency
}

func start(ctx context.Context, request any) *operation {
	return &operation{dependency: Dependency{
		Name:        mediator.RequestName(request),
		Type:        DependencyType,
		Start:       time.Now(),
		Properties:  map[string]string{},
		SpanContext: trace.SpanContextFromContext(ctx),
	}}
}

func (o *operation) finish(ctx context.Context, client Client, err error) {
	o.dependency.Duration = time.Since(o.dependency.Start)
	o.dependency.Success = err == nil
	if err != nil {
		o.dependency.Properties[PropertyException] = err.Error()
	}
	client.TrackDependency(ctx, o.dependency)
}
