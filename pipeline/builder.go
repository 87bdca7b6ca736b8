package pipeline

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/louisbranch/mediatr/mediator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Behavior names registered by AddMediator.
const (
	TracingBehaviorName          = "pipeline.tracing"
	StreamTracingBehaviorName    = "pipeline.stream_tracing"
	LoggingBehaviorName          = "pipeline.logging"
	StreamLoggingBehaviorName    = "pipeline.stream_logging"
	ValidationBehaviorName       = "pipeline.validation"
	StreamValidationBehaviorName = "pipeline.stream_validation"
)

// instrumentationName is the scope name of the tracer used by the behaviors.
const instrumentationName = "github.com/louisbranch/mediatr/pipeline"

// ErrAddMediatorCalledTwice is returned when AddMediator targets a container
// it already configured.
var ErrAddMediatorCalledTwice = errors.New("pipeline: AddMediator cannot be called multiple times")

// Config is handed to the AddMediator callback. Behaviors added to the
// embedded Configuration run inside the default ones.
type Config struct {
	mediator.Configuration

	// Logger receives the request logs. Defaults to slog.Default().
	Logger *slog.Logger
	// TracerProvider creates the request spans. Defaults to the global provider.
	TracerProvider trace.TracerProvider
	// Validator checks struct tags. Defaults to a validator with required
	// struct validation enabled.
	Validator *validator.Validate
}

// Builder is returned by AddMediator to chain further registrations.
type Builder struct {
	services *mediator.Services
}

// Services returns the container the builder configures.
func (b *Builder) Services() *mediator.Services {
	return b.services
}

// Build snapshots the container into a Mediator.
func (b *Builder) Build() *mediator.Mediator {
	return mediator.New(b.services)
}

// AddMediator registers modules and the default behaviors on services, then
// applies configure. A second call on the same container returns
// ErrAddMediatorCalledTwice. services is left untouched on any error.
func AddMediator(services *mediator.Services, configure func(*Config), modules ...mediator.Module) (*Builder, error) {
	if services == nil {
		return nil, mediator.ErrNilServices
	}
	if services.HasBehavior(TracingBehaviorName) {
		return nil, ErrAddMediatorCalledTwice
	}

	cfg := &Config{}
	cfg.Modules = append(cfg.Modules, modules...)
	if configure != nil {
		configure(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}
	if cfg.Validator == nil {
		cfg.Validator = validator.New(validator.WithRequiredStructEnabled())
	}

	tracer := cfg.TracerProvider.Tracer(instrumentationName)
	defaults := []mediator.BehaviorDescriptor{
		mediator.RequestBehavior(TracingBehaviorName, tracing(tracer)),
		mediator.StreamBehavior(StreamTracingBehaviorName, streamTracing(tracer)),
		mediator.RequestBehavior(LoggingBehaviorName, logging(cfg.Logger)),
		mediator.StreamBehavior(StreamLoggingBehaviorName, streamLogging(cfg.Logger)),
		mediator.RequestBehavior(ValidationBehaviorName, validation(cfg.Validator)),
		mediator.StreamBehavior(StreamValidationBehaviorName, streamValidation(cfg.Validator)),
	}
	registration := cfg.Configuration
	registration.Behaviors = append(defaults, cfg.Behaviors...)

	if err := mediator.Register(services, registration); err != nil {
		return nil, err
	}
	return &Builder{services: services}, nil
}
