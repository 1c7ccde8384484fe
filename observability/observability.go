package observability

import (
	"context"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider bundles the initialized trace and metric providers.
type Provider struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	// Metrics is nil when observability is disabled.
	Metrics *Metrics
}

// Init sets up tracing and metrics per the config. When disabled it
// returns an inert provider whose Shutdown is a no-op and whose Metrics
// is nil; callers treat a nil Metrics as "don't record".
func Init(ctx context.Context, cfg Config, serviceName, version, environment string) (*Provider, error) {
	cfg.ApplyDefaults()
	if !cfg.Enabled {
		return &Provider{}, nil
	}

	tp, err := InitTracer(ctx, cfg, serviceName, version, environment)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, cfg, serviceName, version, environment)
	if err != nil {
		return nil, err
	}
	metrics, err := NewMetrics(mp.Meter(serviceName))
	if err != nil {
		return nil, err
	}

	return &Provider{
		tracerProvider: tp,
		meterProvider:  mp,
		Metrics:        metrics,
	}, nil
}

// Shutdown flushes and stops the providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	var firstErr error
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
