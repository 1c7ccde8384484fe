package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/shadowreader/logger"
)

// InitMeter initializes the OpenTelemetry meter provider. Returns a
// MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, cfg Config, serviceName, version, environment string) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(serviceName, version, environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", serviceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the app's metric instruments.
type Metrics struct {
	synthesisTotal    metric.Int64Counter
	synthesisDuration metric.Float64Histogram
	translationTotal  metric.Int64Counter
	cacheHits         metric.Int64Counter
	cacheMisses       metric.Int64Counter
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	synthesisTotal, err := meter.Int64Counter("tts.synthesis.total",
		metric.WithDescription("Total speech syntheses by provider and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tts.synthesis.total counter: %w", err)
	}

	synthesisDuration, err := meter.Float64Histogram("tts.synthesis.duration",
		metric.WithDescription("Duration of speech syntheses in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tts.synthesis.duration histogram: %w", err)
	}

	translationTotal, err := meter.Int64Counter("translate.total",
		metric.WithDescription("Total translations by provider and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating translate.total counter: %w", err)
	}

	cacheHits, err := meter.Int64Counter("tts.cache.hits",
		metric.WithDescription("Audio cache hits"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tts.cache.hits counter: %w", err)
	}

	cacheMisses, err := meter.Int64Counter("tts.cache.misses",
		metric.WithDescription("Audio cache misses"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tts.cache.misses counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by code and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		synthesisTotal:    synthesisTotal,
		synthesisDuration: synthesisDuration,
		translationTotal:  translationTotal,
		cacheHits:         cacheHits,
		cacheMisses:       cacheMisses,
		errorTotal:        errorTotal,
	}, nil
}

// RecordSynthesis records a completed synthesis call.
func (m *Metrics) RecordSynthesis(ctx context.Context, provider, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("status", status),
	)
	m.synthesisTotal.Add(ctx, 1, attrs)
	m.synthesisDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
	))
}

// RecordTranslation records a completed translation call.
func (m *Metrics) RecordTranslation(ctx context.Context, provider, status string) {
	m.translationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("status", status),
	))
}

// RecordCache records an audio cache lookup.
func (m *Metrics) RecordCache(ctx context.Context, hit bool) {
	if hit {
		m.cacheHits.Add(ctx, 1)
	} else {
		m.cacheMisses.Add(ctx, 1)
	}
}

// RecordError records an error by code and component.
func (m *Metrics) RecordError(ctx context.Context, code, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}
