package telemetry

import (
	"context"
	"errors"

	"github.com/propertyhub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Telemetry bundles the providers the server starts and stops together.
type Telemetry struct {
	Tracer   *TracerProvider
	Meter    *MeterProvider
	Logs     *LoggerProvider
	Profiler *Profiler
	Metrics  *DomainMetrics
}

// Setup starts tracing, metrics and profiling and registers the domain counters.
// logs may be nil when log export was not set up before the logger.
func Setup(ctx context.Context, cfg config.TelemetryConfig, logs *LoggerProvider, logger *zap.Logger) (*Telemetry, error) {
	tp, err := NewTracerProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	mp, err := NewMeterProvider(ctx, cfg, logger)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	metrics, err := NewDomainMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	profiler, err := NewProfiler(cfg, logger)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, err
	}
	if profiler.IsEnabled() {
		tp.EnableSpanProfiles()
	}

	if logs == nil {
		logs = &LoggerProvider{}
	}
	return &Telemetry{Tracer: tp, Meter: mp, Logs: logs, Profiler: profiler, Metrics: metrics}, nil
}

// Shutdown flushes and stops every provider, returning all failures joined
func (t *Telemetry) Shutdown(ctx context.Context) error {
	return errors.Join(
		t.Profiler.Stop(),
		t.Tracer.Shutdown(ctx),
		t.Meter.Shutdown(ctx),
		t.Logs.Shutdown(ctx),
	)
}
