package testutil

import (
	"fmt"
	"testing"

	appchart "github.com/preston-bernstein/shot-chart-service/internal/app/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
	"github.com/preston-bernstein/shot-chart-service/internal/metrics"
	"github.com/preston-bernstein/shot-chart-service/internal/store"
)

// NewChartService builds a chart service with deterministic marker ids and, when key is
// non-empty, that league already selected.
func NewChartService(t testing.TB, key string, recorder *metrics.Recorder) *appchart.Service {
	t.Helper()
	n := 0
	engine := chart.New(store.NewMarkerRegistry(), chart.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("marker-%d", n)
	}))
	svc := appchart.NewService(engine, recorder, nil)
	if key != "" {
		if _, err := svc.SelectLeague(key); err != nil {
			t.Fatalf("select league %s: %v", key, err)
		}
	}
	return svc
}

// SampleMarkers returns n circle markers spaced one foot apart along the free throw line.
func SampleMarkers(n int) []markers.Marker {
	out := make([]markers.Marker, n)
	for i := range out {
		out[i] = markers.Marker{
			ID:       fmt.Sprintf("sample-%d", i),
			Position: court.Point{X: 17 + float64(i), Y: 14.75},
			Symbol:   markers.Symbol{Kind: markers.SymbolCircle},
		}
	}
	return out
}
