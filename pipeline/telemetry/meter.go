package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/louisbranch/mediatr/pipeline/telemetry"

// MeterClient records dependencies as OpenTelemetry metrics.
//
// Instruments:
//   - mediator.request.duration (Float64Histogram): seconds spent in the
//     pipeline, with attributes mediator.request.name and success
//   - mediator.request.count (Int64Counter): dispatched requests, with the
//     same attributes
type MeterClient struct {
	duration metric.Float64Histogram
	count    metric.Int64Counter
}

// NewGlobalMeterClient returns a MeterClient using the global MeterProvider.
func NewGlobalMeterClient() (*MeterClient, error) {
	return NewMeterClient(otel.Meter(meterName))
}

// NewMeterClient returns a MeterClient creating its instruments on meter.
func NewMeterClient(meter metric.Meter) (*MeterClient, error) {
	duration, err := meter.Float64Histogram(
		"mediator.request.duration",
		metric.WithDescription("Duration of mediator requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	count, err := meter.Int64Counter(
		"mediator.request.count",
		metric.WithDescription("Number of mediator requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	return &MeterClient{duration: duration, count: count}, nil
}

// TrackDependency records d.
func (c *MeterClient) TrackDependency(ctx context.Context, d Dependency) {
	attrs := metric.WithAttributes(
		attribute.String("mediator.request.name", d.Name),
		attribute.Bool("success", d.Success),
	)
	c.duration.Record(ctx, d.Duration.Seconds(), attrs)
	c.count.Add(ctx, 1, attrs)
}
