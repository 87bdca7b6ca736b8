package pipeline

import (
	"context"
	"iter"

	"github.com/louisbranch/mediatr/mediator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func tracing(tracer trace.Tracer) mediator.PipelineBehavior {
	return func(ctx context.Context, request any, next mediator.NextFunc) (any, error) {
		ctx, span := startSpan(ctx, tracer, request)
		defer span.End()

		response, err := next(ctx)
		if err != nil {
			markFailed(span, err)
			return nil, err
		}
		span.SetStatus(codes.Ok, "")
		return response, nil
	}
}

// streamTracing opens the span when iteration starts. A consumer stopping
// early ends it without a status.
func streamTracing(tracer trace.Tracer) mediator.StreamPipelineBehavior {
	return func(ctx context.Context, request any, next mediator.StreamNextFunc) iter.Seq2[any, error] {
		return func(yield func(any, error) bool) {
			ctx, span := startSpan(ctx, tracer, request)
			defer span.End()

			for item, err := range next(ctx) {
				if err != nil {
					markFailed(span, err)
					yield(nil, err)
					return
				}
				if !yield(item, nil) {
					return
				}
			}
			span.SetStatus(codes.Ok, "")
		}
	}
}

func startSpan(ctx context.Context, tracer trace.Tracer, request any) (context.Context, trace.Span) {
	return tracer.Start(ctx, mediator.RequestName(request),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("mediator.request.name", mediator.RequestName(request))),
	)
}

func markFailed(span trace.Span, err error) {
	span.RecordError(err, trace.WithStackTrace(true))
	span.SetStatus(codes.Error, err.Error())
}
