package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appchart "github.com/preston-bernstein/shot-chart-service/internal/app/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/http/handlers"
	"github.com/preston-bernstein/shot-chart-service/internal/league"
	"github.com/preston-bernstein/shot-chart-service/internal/store"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := appchart.NewService(chart.New(store.NewMarkerRegistry()), nil, nil)
	if _, err := svc.SelectLeague(league.KeyNBA); err != nil {
		t.Fatalf("select league: %v", err)
	}
	return NewRouter(handlers.NewHandler(svc, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter(t)

	cases := map[string]int{
		"/health":        http.StatusOK,
		"/ready":         http.StatusOK,
		"/leagues":       http.StatusOK,
		"/league":        http.StatusOK,
		"/court":         http.StatusOK,
		"/court.svg":     http.StatusOK,
		"/court.geojson": http.StatusOK,
		"/court.wkt":     http.StatusOK,
		"/markers":       http.StatusOK,
		"/markers/foo":   http.StatusNotFound, // known route with missing marker
		"/classify":      http.StatusMethodNotAllowed,
		"/ws":            http.StatusNotFound, // notifications not wired
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
