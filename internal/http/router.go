package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/shot-chart-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/leagues", handler.Leagues)
	mux.HandleFunc("/league", handler.League)
	mux.HandleFunc("/court", handler.Court)
	mux.HandleFunc("/court.svg", handler.CourtSVG)
	mux.HandleFunc("/court.geojson", handler.CourtGeoJSON)
	mux.HandleFunc("/court.wkt", handler.CourtWKT)
	mux.HandleFunc("/classify", handler.Classify)
	mux.HandleFunc("/markers", handler.Markers)
	mux.HandleFunc("/markers/", handler.MarkerByID)
	mux.HandleFunc("/ws", handler.WebSocket)
	return mux
}
