package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/shot-chart-service/internal/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
	"github.com/preston-bernstein/shot-chart-service/internal/league"
	"github.com/preston-bernstein/shot-chart-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", league.ErrInvalidLeague), http.StatusBadRequest},
		{markers.ErrInvalidSymbol, http.StatusBadRequest},
		{chart.ErrMissingMarkerID, http.StatusBadRequest},
		{errEmptyBody, http.StatusBadRequest},
		{errInvalidJSON, http.StatusBadRequest},
		{chart.ErrMissingSettings, http.StatusConflict},
		{chart.ErrPreconditionViolation, http.StatusConflict},
		{fmt.Errorf("%w: %q", chart.ErrUnknownMarker, "x"), http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("statusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWriteServiceErrorHidesInternalErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/court", nil)

	writeServiceError(rr, req, errors.New("secret detail"), logger)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if strings.Contains(rr.Body.String(), "secret detail") {
		t.Fatalf("internal error detail leaked: %s", rr.Body.String())
	}
	if !strings.Contains(buf.String(), "secret detail") {
		t.Fatalf("expected internal error to be logged")
	}
}

func TestDecodeJSON(t *testing.T) {
	var dest markerRequest

	req := httptest.NewRequest(http.MethodPost, "/markers", strings.NewReader(""))
	if err := decodeJSON(httptest.NewRecorder(), req, &dest); !errors.Is(err, errEmptyBody) {
		t.Fatalf("expected errEmptyBody, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/markers", strings.NewReader("{"))
	if err := decodeJSON(httptest.NewRecorder(), req, &dest); !errors.Is(err, errInvalidJSON) {
		t.Fatalf("expected errInvalidJSON, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/markers", strings.NewReader(`{"symbol":{"kind":"hexagon"}}`))
	if err := decodeJSON(httptest.NewRecorder(), req, &dest); !errors.Is(err, markers.ErrInvalidSymbol) {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}
}
