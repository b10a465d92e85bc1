package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/shot-chart-service/internal/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
	"github.com/preston-bernstein/shot-chart-service/internal/http/middleware"
	"github.com/preston-bernstein/shot-chart-service/internal/league"
	"github.com/preston-bernstein/shot-chart-service/internal/logging"
)

const maxBodyBytes = 1 << 20

var (
	errEmptyBody   = errors.New("request body required")
	errInvalidJSON = errors.New("invalid JSON body")
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "request failed", err)
		writeError(w, r, status, "internal error", logger)
		return
	}
	writeError(w, r, status, err.Error(), logger)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, league.ErrInvalidLeague),
		errors.Is(err, markers.ErrInvalidSymbol),
		errors.Is(err, chart.ErrMissingMarkerID),
		errors.Is(err, errEmptyBody),
		errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest
	case errors.Is(err, chart.ErrMissingSettings),
		errors.Is(err, chart.ErrPreconditionViolation):
		return http.StatusConflict
	case errors.Is(err, chart.ErrUnknownMarker):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a bounded JSON body into dest. Unknown symbol kinds keep their sentinel.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return errEmptyBody
		case errors.Is(err, markers.ErrInvalidSymbol):
			return err
		default:
			return fmt.Errorf("%w: %v", errInvalidJSON, err)
		}
	}
	return nil
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

func requireMethod(w http.ResponseWriter, r *http.Request, logger *slog.Logger, allowed ...string) bool {
	for _, m := range allowed {
		if r.Method == m {
			return true
		}
	}
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func writeBody(w http.ResponseWriter, r *http.Request, contentType string, body []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.Warn(loggerFromContext(r, logger), "failed to write response", "error", err)
	}
}
