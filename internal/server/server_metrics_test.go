package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/shot-chart-service/internal/config"
	"github.com/preston-bernstein/shot-chart-service/internal/metrics"
	"github.com/preston-bernstein/shot-chart-service/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig()
	cfg.Metrics.Enabled = true

	srv, err := newServerWithMetrics(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	srv, err := newServerWithMetrics(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
	srv.gracefulShutdown()
}

func TestNewServerWithMetricsEnabledBuildsServer(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	var gotCfg metrics.TelemetryConfig
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		gotCfg = cfg
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "9091", ServiceName: "chart"}

	srv, err := newServerWithMetrics(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metricsServer == nil || srv.metricsServer.Addr() != ":9091" {
		t.Fatalf("expected metrics server on :9091")
	}
	if gotCfg.ServiceName != "chart" {
		t.Fatalf("expected service name passthrough, got %q", gotCfg.ServiceName)
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()

	srv, err := newServerWithMetrics(testConfig(), nil, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no metrics stop for injected recorder")
	}
	if rec.Redraws() != 1 {
		t.Fatalf("expected initial league selection to redraw once, got %d", rec.Redraws())
	}
	_ = shutdown
}
