package pipeline

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/louisbranch/mediatr/mediator"
)

func logging(logger *slog.Logger) mediator.PipelineBehavior {
	return func(ctx context.Context, request any, next mediator.NextFunc) (any, error) {
		name := mediator.RequestName(request)
		logger.DebugContext(ctx, "request started", slog.String("request_name", name))

		start := time.Now()
		response, err := next(ctx)
		elapsed := time.Since(start).Seconds()

		if err != nil {
			logger.DebugContext(ctx, "request failed",
				slog.String("request_name", name),
				slog.Float64("duration_seconds", elapsed),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		logger.DebugContext(ctx, "request succeeded",
			slog.String("request_name", name),
			slog.Float64("duration_seconds", elapsed),
		)
		return response, nil
	}
}

func streamLogging(logger *slog.Logger) mediator.StreamPipelineBehavior {
	return func(ctx context.Context, request any, next mediator.StreamNextFunc) iter.Seq2[any, error] {
		return func(yield func(any, error) bool) {
			name := mediator.RequestName(request)
			logger.DebugContext(ctx, "stream request started", slog.String("request_name", name))

			start := time.Now()
			for item, err := range next(ctx) {
				if err != nil {
					logger.DebugContext(ctx, "stream request failed",
						slog.String("request_name", name),
						slog.Float64("duration_seconds", time.Since(start).Seconds()),
						slog.String("error", err.Error()),
					)
					yield(nil, err)
					return
				}
				if !yield(item, nil) {
					return
				}
			}
			logger.DebugContext(ctx, "stream request succeeded",
				slog.String("request_name", name),
				slog.Float64("duration_seconds", time.Since(start).Seconds()),
			)
		}
	}
}
