package chart

import (
	"fmt"
	"log/slog"
	"sync"

	enginepkg "github.com/preston-bernstein/shot-chart-service/internal/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
	"github.com/preston-bernstein/shot-chart-service/internal/geometry"
	"github.com/preston-bernstein/shot-chart-service/internal/league"
	"github.com/preston-bernstein/shot-chart-service/internal/logging"
	"github.com/preston-bernstein/shot-chart-service/internal/metrics"
)

// Mutation op labels recorded for marker changes.
const (
	OpPlace  = "place"
	OpUpdate = "update"
	OpBulk   = "bulk"
	OpRemove = "remove"
	OpClear  = "clear"
)

// Service serializes access to one Engine for concurrent callers.
type Service struct {
	mu       sync.Mutex
	engine   *enginepkg.Engine
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService wraps engine. A nil engine gets a fresh one with an in-memory registry.
func NewService(engine *enginepkg.Engine, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if engine == nil {
		engine = enginepkg.New(nil)
	}
	s := &Service{engine: engine, recorder: recorder, logger: logger}
	engine.OnRedraw(func(r enginepkg.Redraw) {
		s.recorder.RecordRedraw(len(r.Markers))
	})
	return s
}

// Leagues lists the supported league keys with their rules.
func (s *Service) Leagues() map[string]court.LeagueRules {
	return league.All()
}

// SelectLeague activates the league and redraws the chart for it.
func (s *Service) SelectLeague(key string) (court.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.engine.SelectLeague(key); err != nil {
		logging.Warn(s.logger, "league selection rejected", logging.FieldLeague, key, "error", err)
		return court.Court{}, err
	}
	r, err := s.engine.Redraw()
	if err != nil {
		return court.Court{}, err
	}
	logging.Info(s.logger, "league selected",
		logging.FieldLeague, string(r.Court.League),
		logging.FieldCount, len(r.Markers),
	)
	return r.Court, nil
}

// ActiveLeague returns the key of the selected league.
func (s *Service) ActiveLeague() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, ok := s.engine.Settings()
	if !ok {
		return "", false
	}
	return league.KeyFor(settings.League.ID)
}

// Court returns the active court geometry, generating it when only settings exist.
func (s *Service) Court() (court.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCourtLocked()
}

// CourtFor generates geometry for a league without touching the active chart.
func (s *Service) CourtFor(key string) (court.Court, error) {
	settings, err := league.Settings(key)
	if err != nil {
		return court.Court{}, err
	}
	return geometry.Generate(&settings)
}

// Classify measures a shot against the active court.
func (s *Service) Classify(x, y float64) (court.ShotClassification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.engine.Classify(x, y)
	if err != nil {
		return court.ShotClassification{}, err
	}
	settings, _ := s.engine.Settings()
	s.recorder.RecordClassification(string(settings.League.ID), result.IsThreePointer)
	return result, nil
}

// PlaceMarker inserts or replaces one marker.
func (s *Service) PlaceMarker(pos court.Point, sym markers.Symbol, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	placed, err := s.engine.PlaceMarker(pos, sym, id)
	if err != nil {
		return "", err
	}
	s.recorder.RecordMarkerMutation(OpPlace)
	logging.Info(s.logger, "marker placed", logging.FieldMarkerID, placed)
	return placed, nil
}

// UpdateMarker replaces an existing marker. Unknown ids fail without inserting.
func (s *Service) UpdateMarker(id string, pos court.Point, sym markers.Symbol) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.engine.Marker(id); !ok {
		return unknownMarker(id)
	}
	if err := s.engine.UpdateMarker(id, pos, sym); err != nil {
		return err
	}
	s.recorder.RecordMarkerMutation(OpUpdate)
	logging.Info(s.logger, "marker updated", logging.FieldMarkerID, id)
	return nil
}

// BulkPlaceMarkers places every marker in one redraw.
func (s *Service) BulkPlaceMarkers(list []markers.Marker) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.engine.BulkPlaceMarkers(list)
	if err != nil {
		return nil, err
	}
	s.recorder.RecordMarkerMutation(OpBulk)
	logging.Info(s.logger, "markers placed", logging.FieldCount, len(ids))
	return ids, nil
}

// RemoveMarker deletes one marker and reports whether it existed.
func (s *Service) RemoveMarker(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.engine.RemoveMarker(id)
	if removed {
		s.recorder.RecordMarkerMutation(OpRemove)
		logging.Info(s.logger, "marker removed", logging.FieldMarkerID, id)
	}
	return removed
}

// ClearMarkers removes every marker.
func (s *Service) ClearMarkers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.ClearMarkers()
	s.recorder.RecordMarkerMutation(OpClear)
	logging.Info(s.logger, "markers cleared")
}

// Markers lists placed markers ordered by id.
func (s *Service) Markers() []markers.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Markers()
}

// Marker returns one placed marker.
func (s *Service) Marker(id string) (markers.Marker, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Marker(id)
}

// ClickMarker forwards a marker interaction to click subscribers.
func (s *Service) ClickMarker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ClickMarker(id)
}

// Snapshot returns the active court with every marker, ready for rendering.
func (s *Service) Snapshot() (enginepkg.Redraw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.activeCourtLocked()
	if err != nil {
		return enginepkg.Redraw{}, err
	}
	return enginepkg.Redraw{Court: c, Markers: s.engine.Markers()}, nil
}

// OnRedraw subscribes to redraw notifications. Handlers run while the service lock is held
// and must not call back into the service.
func (s *Service) OnRedraw(h enginepkg.RedrawHandler) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	unsubscribe := s.engine.OnRedraw(h)
	return s.locked(unsubscribe)
}

// OnMarkerClick subscribes to marker click notifications under the same rules as OnRedraw.
func (s *Service) OnMarkerClick(h enginepkg.MarkerClickHandler) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	unsubscribe := s.engine.OnMarkerClick(h)
	return s.locked(unsubscribe)
}

func (s *Service) locked(fn func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			fn()
		})
	}
}

func (s *Service) activeCourtLocked() (court.Court, error) {
	if c, ok := s.engine.Court(); ok {
		return c, nil
	}
	settings, ok := s.engine.Settings()
	if !ok {
		return court.Court{}, enginepkg.ErrMissingSettings
	}
	return s.engine.GenerateGeometry(&settings)
}

func unknownMarker(id string) error {
	return fmt.Errorf("%w: %q", enginepkg.ErrUnknownMarker, id)
}
