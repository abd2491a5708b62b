package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type Telemetry struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

var active Telemetry

func (t Telemetry) Shutdown(ctx context.Context) error {
	errlist := []error{}
	if t.TracerProvider != nil {
		err := t.TracerProvider.Shutdown(ctx)
		if err != nil {
			errlist = append(errlist, err)
		}
	}
	if t.MeterProvider != nil {
		err := t.MeterProvider.Shutdown(ctx)
		if err != nil {
			errlist = append(errlist, err)
		}
	}
	return errors.Join(errlist...)
}

// Shutdown flushes and tears down the providers installed by Setup.
func Shutdown(ctx context.Context) error {
	return active.Shutdown(ctx)
}

// Tracer returns a tracer from the globally installed provider.
// Packages should declare this once at the top level:
//
//	var tracer = telemetry.Tracer("noteboard.lib.scrapers.noteboard")
func Tracer(name string) oteltrace.Tracer {
	return otel.Tracer(name)
}

func Setup(ctx context.Context, serviceName string, config Config) (Telemetry, error) {
	r, err := newResource(serviceName)
	if err != nil {
		return Telemetry{}, err
	}

	tracerProvider, err := newTraceProvider(ctx, r, config)
	if err != nil {
		return Telemetry{}, err
	}
	otel.SetTracerProvider(tracerProvider)

	meterProvider, err := newMetricProvider(ctx, r, config)
	if err != nil {
		return Telemetry{}, err
	}
	otel.SetMeterProvider(meterProvider)

	active = Telemetry{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
	}
	return active, nil
}
