package handlers

import (
	"bytes"
	nethttp "net/http"
	"strconv"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/export"
	"github.com/preston-bernstein/shot-chart-service/internal/logging"
	"github.com/preston-bernstein/shot-chart-service/internal/render"
)

// Court returns court geometry. With ?league= it generates that league without changing the active one.
func (h *Handler) Court(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	var (
		c   court.Court
		err error
	)
	if key := r.URL.Query().Get("league"); key != "" {
		c, err = h.svc.CourtFor(key)
	} else {
		c, err = h.svc.Court()
	}
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, c, h.logger)
}

// CourtSVG renders the active court and every marker.
func (h *Handler) CourtSVG(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	snap, err := h.svc.Snapshot()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	opts := h.style
	q := r.URL.Query()
	if bg := q.Get("background"); bg != "" {
		opts.Background = bg
	}
	if stroke := q.Get("stroke"); stroke != "" {
		opts.LineStroke = stroke
	}
	if raw := q.Get("strokeWidth"); raw != "" {
		width, perr := strconv.ParseFloat(raw, 64)
		if perr != nil || width <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid strokeWidth", h.logger)
			return
		}
		opts.LineStrokeWidth = width
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, snap.Court, snap.Markers, opts); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeBody(w, r, "image/svg+xml", buf.Bytes(), h.logger)
}

// CourtGeoJSON exports the active court lines and markers as a FeatureCollection.
func (h *Handler) CourtGeoJSON(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	snap, err := h.svc.Snapshot()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	var buf bytes.Buffer
	if err := export.GeoJSON(&buf, snap.Court, snap.Markers); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeBody(w, r, "application/geo+json", buf.Bytes(), h.logger)
}

// CourtWKT exports each active court line as well-known text.
func (h *Handler) CourtWKT(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	c, err := h.svc.Court()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	var buf bytes.Buffer
	if err := export.WKT(&buf, c); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeBody(w, r, "text/plain; charset=utf-8", buf.Bytes(), h.logger)
}

type classifyRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type classifyResponse struct {
	court.ShotClassification
	Points int `json:"points"`
}

// Classify measures a shot location against the active court.
func (h *Handler) Classify(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodPost) {
		return
	}
	var req classifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if req.X == nil || req.Y == nil {
		writeError(w, r, nethttp.StatusBadRequest, "x and y are required", h.logger)
		return
	}
	result, err := h.svc.Classify(*req.X, *req.Y)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "shot classified", logging.FieldPoints, result.Points())
	writeJSON(w, nethttp.StatusOK, classifyResponse{ShotClassification: result, Points: result.Points()}, h.logger)
}
