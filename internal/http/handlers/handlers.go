package handlers

import (
	"log/slog"
	nethttp "net/http"

	appchart "github.com/preston-bernstein/shot-chart-service/internal/app/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/league"
	"github.com/preston-bernstein/shot-chart-service/internal/render"
)

// Handler wires HTTP routes to the chart service.
type Handler struct {
	svc    *appchart.Service
	ws     nethttp.Handler
	logger *slog.Logger
	style  render.Options
}

// NewHandler constructs a Handler. ws serves WebSocket subscriptions and may be nil.
func NewHandler(svc *appchart.Service, ws nethttp.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		ws:     ws,
		logger: logger,
		style:  render.DefaultOptions(),
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness once a league has been selected.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	if _, ok := h.svc.ActiveLeague(); !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "no league selected", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

type leagueEntry struct {
	Key   string            `json:"key"`
	Rules court.LeagueRules `json:"rules"`
}

// Leagues lists the supported leagues with their rules.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	rules := h.svc.Leagues()
	entries := make([]leagueEntry, 0, len(rules))
	for _, key := range league.Keys() {
		if lr, ok := rules[key]; ok {
			entries = append(entries, leagueEntry{Key: key, Rules: lr})
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"leagues": entries}, h.logger)
}

type selectLeagueRequest struct {
	League string `json:"league"`
}

type leagueResponse struct {
	League string       `json:"league"`
	Court  *court.Court `json:"court,omitempty"`
}

// League reads (GET) or selects (PUT) the active league.
func (h *Handler) League(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet, nethttp.MethodPut) {
		return
	}
	if r.Method == nethttp.MethodGet {
		key, ok := h.svc.ActiveLeague()
		if !ok {
			writeError(w, r, nethttp.StatusConflict, "no league selected", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, leagueResponse{League: key}, h.logger)
		return
	}

	var req selectLeagueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	c, err := h.svc.SelectLeague(req.League)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	key, _ := league.KeyFor(c.League)
	writeJSON(w, nethttp.StatusOK, leagueResponse{League: key, Court: &c}, h.logger)
}

// WebSocket upgrades the request to a notification subscription.
func (h *Handler) WebSocket(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	if h.ws == nil {
		writeError(w, r, nethttp.StatusNotFound, "notifications disabled", h.logger)
		return
	}
	h.ws.ServeHTTP(w, r)
}
