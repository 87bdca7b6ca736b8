// Package telemetry tracks every request dispatched through a pipeline as a
// dependency call of the application.
//
// AddTelemetry inserts the behaviors right after the tracing ones so that
// the tracked dependency is attached to the request span and observes the
// validation failures as well as the handler ones.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const (
	// DependencyType is the type of every tracked dependency.
	DependencyType = "Mediator"
	// PropertyException holds the error text of a failed dependency.
	PropertyException = "exception"
)

// Dependency is one dispatched request as seen by telemetry.
type Dependency struct {
	Name        string
	Type        string
	Start       time.Time
	Duration    time.Duration
	Success     bool
	Properties  map[string]string
	SpanContext trace.SpanContext
}

// Client receives tracked dependencies.
type Client interface {
	TrackDependency(ctx context.Context, dependency Dependency)
}

// ClientFunc adapts a function to a Client.
type ClientFunc func(ctx context.Context, dependency Dependency)

// TrackDependency calls f.
func (f ClientFunc) TrackDependency(ctx context.Context, dependency Dependency) {
	f(ctx, dependency)
}
