// Package otel builds the trace, metric and log providers of the footprint server and exposes
// the tracer, emission metrics and event emitter the services consume.
package otel

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	"carbon-footprint/backend/internal/logging"
	"carbon-footprint/backend/internal/telemetry"
)

const metricInterval = 10 * time.Second

// Providers holds the footprint server's providers. Shutdown flushes and stops all three.
type Providers struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *metric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	Shutdown       func(context.Context) error
}

// NewProviders exports spans, emission metrics and footprint events over OTLP gRPC to endpoint.
// An empty endpoint yields in-process providers with nothing attached. insecure forces plaintext
// even for https endpoints.
func NewProviders(ctx context.Context, endpoint, serviceName string, insecure bool) (*Providers, error) {
	if strings.TrimSpace(endpoint) == "" {
		return &Providers{
			TracerProvider: sdktrace.NewTracerProvider(),
			MeterProvider:  metric.NewMeterProvider(),
			LoggerProvider: sdklog.NewLoggerProvider(),
			Shutdown:       func(context.Context) error { return nil },
		}, nil
	}
	target, plaintext, err := collectorTarget(endpoint)
	if err != nil {
		return nil, err
	}
	plaintext = plaintext || insecure

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	))
	if err != nil {
		return nil, err
	}

	traceOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(target)}
	metricOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(target)}
	logOpts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(target)}
	if plaintext {
		traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
		metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
		logOpts = append(logOpts, otlploggrpc.WithInsecure())
	}

	spans, err := otlptracegrpc.New(ctx, traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("otel: trace exporter: %w", err)
	}
	measurements, err := otlpmetricgrpc.New(ctx, metricOpts...)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("otel: metric exporter: %w", err)
	}
	events, err := otlploggrpc.New(ctx, logOpts...)
	if err != nil {
		_ = spans.Shutdown(ctx)
		_ = measurements.Shutdown(ctx)
		return nil, fmt.Errorf("otel: log exporter: %w", err)
	}

	p := &Providers{
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		MeterProvider: metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(measurements, metric.WithInterval(metricInterval))),
		),
		LoggerProvider: sdklog.NewLoggerProvider(sdklog.WithResource(res), sdklog.WithProcessor(sdklog.NewBatchProcessor(events))),
	}
	p.Shutdown = p.shutdown
	return p, nil
}

// shutdown stops the log provider first so footprint events emitted during the drain still flush.
func (p *Providers) shutdown(ctx context.Context) error {
	err := errors.Join(
		p.LoggerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
		p.TracerProvider.Shutdown(ctx),
	)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("component", "telemetry").Msg("shutdown")
	}
	return err
}

// collectorTarget reduces endpoint to the host:port the gRPC exporters dial. A bare host:port is
// plaintext; only the https scheme selects TLS.
func collectorTarget(endpoint string) (target string, plaintext bool, err error) {
	endpoint = strings.TrimSpace(endpoint)
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("invalid OTLP endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("invalid OTLP endpoint %q: missing host", endpoint)
	}
	return u.Host, u.Scheme != "https", nil
}

// SetGlobal installs the tracer and meter providers as the process-wide defaults.
func (p *Providers) SetGlobal() {
	if p.TracerProvider != nil {
		otel.SetTracerProvider(p.TracerProvider)
	}
	if p.MeterProvider != nil {
		otel.SetMeterProvider(p.MeterProvider)
	}
}

// Tracer returns the tracer used around aggregation and HTTP requests.
func (p *Providers) Tracer() trace.Tracer {
	return p.TracerProvider.Tracer(instrumentationName)
}

// Metrics registers the footprint instruments on the MeterProvider.
func (p *Providers) Metrics() (*telemetry.Metrics, error) {
	return telemetry.NewMetrics(p.MeterProvider.Meter(instrumentationName))
}

// EventEmitter returns an emitter backed by the LoggerProvider.
func (p *Providers) EventEmitter() telemetry.EventEmitter {
	return NewEventEmitter(p.LoggerProvider)
}
