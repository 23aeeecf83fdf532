package observe_test

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/ordervox/ordervox/internal/observe"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			t.Errorf("shutting down meter provider: %v", err)
		}
	})

	m, err := observe.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	if m.ResolveDuration == nil || m.DecomposeDuration == nil {
		t.Error("histogram instruments not initialised")
	}
	if m.Resolutions == nil || m.Corrections == nil || m.OrderLines == nil || m.PhoneNormalizations == nil {
		t.Error("counter instruments not initialised")
	}
}

func TestDefaultMetrics_ReturnsSameInstance(t *testing.T) {
	t.Parallel()

	if observe.DefaultMetrics() != observe.DefaultMetrics() {
		t.Error("DefaultMetrics returned different instances")
	}
}

func TestLogger_WithoutSpan(t *testing.T) {
	t.Parallel()

	if observe.Logger(context.Background()) == nil {
		t.Error("Logger returned nil")
	}
}

func TestStartSpan(t *testing.T) {
	t.Parallel()

	ctx, span := observe.StartSpan(context.Background(), "test.op")
	if ctx == nil || span == nil {
		t.Fatal("StartSpan returned nil context or span")
	}
	span.End()
}
