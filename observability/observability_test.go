package observability

import (
	"context"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Endpoint != "localhost:4318" {
		t.Fatalf("unexpected default endpoint: %s", cfg.Endpoint)
	}
	if !cfg.Insecure {
		t.Fatal("default local endpoint must be insecure")
	}
	if cfg.SampleRate != 1.0 {
		t.Fatalf("unexpected default sample rate: %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Fatalf("unexpected default interval: %v", cfg.Interval)
	}
}

func TestInit_DisabledIsInert(t *testing.T) {
	p, err := Init(context.Background(), Config{Enabled: false}, "shadowreader", "test", "development")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if p.Metrics != nil {
		t.Fatal("disabled provider must not create metrics")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown of inert provider must be a no-op: %v", err)
	}
}

func TestSpanHelpers_NoopWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), SpanSynthesize)
	defer span.End()

	// Without an installed provider these must not panic.
	SetSpanAttribute(ctx, AttrVoiceID, "v1")
	SetSpanAttribute(ctx, AttrSegments, 3)
	SetSpanAttribute(ctx, AttrCacheHit, true)
	SetSpanError(ctx, context.Canceled)
}
