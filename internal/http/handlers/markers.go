package handlers

import (
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
	"github.com/preston-bernstein/shot-chart-service/internal/http/requestutil"
)

const (
	markersPrefix = "/markers/"
	clickSuffix   = "/click"
)

type markerRequest struct {
	ID       string         `json:"id"`
	Position *court.Point   `json:"position"`
	Symbol   markers.Symbol `json:"symbol"`
}

type bulkRequest struct {
	Markers []markerRequest `json:"markers"`
}

type markersResponse struct {
	Markers []markers.Marker `json:"markers"`
}

// Markers handles the marker collection: list, place, bulk place and clear.
func (h *Handler) Markers(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, markersResponse{Markers: h.svc.Markers()}, h.logger)
	case nethttp.MethodPost:
		var req markerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		if req.Position == nil {
			writeError(w, r, nethttp.StatusBadRequest, "position is required", h.logger)
			return
		}
		if !addressable(req.ID) {
			writeError(w, r, nethttp.StatusBadRequest, "invalid marker id", h.logger)
			return
		}
		id, err := h.svc.PlaceMarker(*req.Position, req.Symbol, req.ID)
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		h.writeMarker(w, r, nethttp.StatusCreated, id)
	case nethttp.MethodPut:
		var req bulkRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		list := make([]markers.Marker, 0, len(req.Markers))
		for _, m := range req.Markers {
			if m.Position == nil {
				writeError(w, r, nethttp.StatusBadRequest, "position is required", h.logger)
				return
			}
			if !addressable(m.ID) {
				writeError(w, r, nethttp.StatusBadRequest, "invalid marker id", h.logger)
				return
			}
			list = append(list, markers.Marker{ID: m.ID, Position: *m.Position, Symbol: m.Symbol})
		}
		ids, err := h.svc.BulkPlaceMarkers(list)
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, map[string][]string{"ids": ids}, h.logger)
	case nethttp.MethodDelete:
		h.svc.ClearMarkers()
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// MarkerByID handles a single marker and its click forwarding.
func (h *Handler) MarkerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	path := r.URL.EscapedPath()
	if strings.HasSuffix(path, clickSuffix) {
		h.clickMarker(w, r)
		return
	}
	id, ok := requestutil.PathID(path, markersPrefix, "")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid marker id", h.logger)
		return
	}

	switch r.Method {
	case nethttp.MethodGet:
		m, found := h.svc.Marker(id)
		if !found {
			writeError(w, r, nethttp.StatusNotFound, "marker not found", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, m, h.logger)
	case nethttp.MethodPut:
		var req markerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		if req.Position == nil {
			writeError(w, r, nethttp.StatusBadRequest, "position is required", h.logger)
			return
		}
		if err := h.svc.UpdateMarker(id, *req.Position, req.Symbol); err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		h.writeMarker(w, r, nethttp.StatusOK, id)
	case nethttp.MethodDelete:
		// Removing an unknown id is a no-op.
		h.svc.RemoveMarker(id)
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) clickMarker(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodPost) {
		return
	}
	id, ok := requestutil.PathID(r.URL.EscapedPath(), markersPrefix, clickSuffix)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid marker id", h.logger)
		return
	}
	if err := h.svc.ClickMarker(id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusAccepted, map[string]string{"id": id, "status": "forwarded"}, h.logger)
}

func (h *Handler) writeMarker(w nethttp.ResponseWriter, r *nethttp.Request, status int, id string) {
	m, ok := h.svc.Marker(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "marker not found", h.logger)
		return
	}
	writeJSON(w, status, m, h.logger)
}

// addressable reports whether a caller-supplied id can be reached through the by-id routes.
// Empty ids are generated by the engine.
func addressable(id string) bool {
	if id == "" {
		return true
	}
	return requestutil.ValidSegment(id) && "/"+id != clickSuffix
}
