package chart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
	"github.com/preston-bernstein/shot-chart-service/internal/geometry"
	"github.com/preston-bernstein/shot-chart-service/internal/league"
	"github.com/preston-bernstein/shot-chart-service/internal/shot"
	"github.com/preston-bernstein/shot-chart-service/internal/store"
)

// Registry is the marker ownership map the engine mutates.
type Registry interface {
	Put(m markers.Marker) string
	PutAll(list []markers.Marker)
	Get(id string) (markers.Marker, bool)
	Remove(id string) bool
	Clear()
	List() []markers.Marker
}

// Option customizes an Engine.
type Option func(*Engine)

// WithIDGenerator replaces the random marker id source.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// Engine composes league settings, court geometry, shot classification and
// the marker registry. It is not safe for concurrent use.
type Engine struct {
	registry Registry
	newID    func() string

	settings *court.Settings
	court    *court.Court

	redraws handlerList[Redraw]
	clicks  handlerList[MarkerClick]
}

// New constructs an Engine around registry. A nil registry gets a fresh in-memory one.
func New(registry Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = store.NewMarkerRegistry()
	}
	e := &Engine{
		registry: registry,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SelectLeague makes the league's settings active. The previous court is
// discarded, so geometry must be generated again before classifying.
func (e *Engine) SelectLeague(key string) (court.Settings, error) {
	s, err := league.Settings(key)
	if err != nil {
		return court.Settings{}, err
	}
	e.settings = &s
	e.court = nil
	return s, nil
}

// Settings returns the active settings.
func (e *Engine) Settings() (court.Settings, bool) {
	if e.settings == nil {
		return court.Settings{}, false
	}
	return *e.settings, true
}

// Court returns the most recently generated court.
func (e *Engine) Court() (court.Court, bool) {
	if e.court == nil {
		return court.Court{}, false
	}
	return *e.court, true
}

// GenerateGeometry computes the court for s and makes s the active settings.
func (e *Engine) GenerateGeometry(s *court.Settings) (court.Court, error) {
	c, err := geometry.Generate(s)
	if err != nil {
		return court.Court{}, err
	}
	active := *s
	e.settings = &active
	e.court = &c
	return c, nil
}

// Redraw regenerates the active court and notifies redraw handlers with every marker.
func (e *Engine) Redraw() (Redraw, error) {
	if e.settings == nil {
		return Redraw{}, ErrMissingSettings
	}
	return e.redraw(), nil
}

// redraw requires active settings.
func (e *Engine) redraw() Redraw {
	c := geometry.Build(*e.settings)
	e.court = &c
	r := Redraw{Court: c, Markers: e.registry.List()}
	e.redraws.emit(r)
	return r
}

// Classify measures a point against the hoop of the last generated court.
func (e *Engine) Classify(x, y float64) (court.ShotClassification, error) {
	if e.settings == nil {
		return court.ShotClassification{}, ErrMissingSettings
	}
	if e.court == nil {
		return court.ShotClassification{}, ErrPreconditionViolation
	}
	return shot.Classify(x, y, e.court.Hoop, e.court.Settings.League), nil
}

// PlaceMarker inserts or replaces a marker. An empty id gets a generated one.
func (e *Engine) PlaceMarker(pos court.Point, sym markers.Symbol, id string) (string, error) {
	sym, err := normalizeSymbol(sym)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = e.newID()
	}
	e.registry.Put(markers.Marker{ID: id, Position: pos, Symbol: sym})
	e.notify()
	return id, nil
}

// UpdateMarker replaces the position and symbol of the marker with id.
func (e *Engine) UpdateMarker(id string, pos court.Point, sym markers.Symbol) error {
	if id == "" {
		return ErrMissingMarkerID
	}
	_, err := e.PlaceMarker(pos, sym, id)
	return err
}

// BulkPlaceMarkers places every marker in order; later duplicates win.
// Entries without an id get a generated one. Nothing is placed if any symbol is invalid.
func (e *Engine) BulkPlaceMarkers(list []markers.Marker) ([]string, error) {
	placed := make([]markers.Marker, len(list))
	ids := make([]string, len(list))
	for i, m := range list {
		sym, err := normalizeSymbol(m.Symbol)
		if err != nil {
			return nil, fmt.Errorf("marker %d: %w", i, err)
		}
		m.Symbol = sym
		if m.ID == "" {
			m.ID = e.newID()
		}
		placed[i] = m
		ids[i] = m.ID
	}
	e.registry.PutAll(placed)
	e.notify()
	return ids, nil
}

// RemoveMarker deletes a marker if present; removing an unknown id is a no-op.
func (e *Engine) RemoveMarker(id string) bool {
	removed := e.registry.Remove(id)
	e.notify()
	return removed
}

// ClearMarkers empties the registry.
func (e *Engine) ClearMarkers() {
	e.registry.Clear()
	e.notify()
}

// Markers returns every placed marker.
func (e *Engine) Markers() []markers.Marker {
	return e.registry.List()
}

// Marker returns one placed marker.
func (e *Engine) Marker(id string) (markers.Marker, bool) {
	return e.registry.Get(id)
}

// ClickMarker forwards an interaction with a placed marker to click handlers.
func (e *Engine) ClickMarker(id string) error {
	m, ok := e.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMarker, id)
	}
	e.clicks.emit(MarkerClick{ID: id, Marker: m})
	return nil
}

// OnRedraw registers a redraw handler and returns its unsubscribe func.
func (e *Engine) OnRedraw(h RedrawHandler) func() {
	return e.redraws.add(h)
}

// OnMarkerClick registers a marker click handler and returns its unsubscribe func.
func (e *Engine) OnMarkerClick(h MarkerClickHandler) func() {
	return e.clicks.add(h)
}

// notify redraws after a mutation. Without a selected league there is nothing to draw.
func (e *Engine) notify() {
	if e.settings == nil {
		return
	}
	e.redraw()
}

func normalizeSymbol(sym markers.Symbol) (markers.Symbol, error) {
	if sym.Kind != "" {
		kind, err := markers.ParseSymbolKind(string(sym.Kind))
		if err != nil {
			return markers.Symbol{}, err
		}
		sym.Kind = kind
	}
	return sym.WithDefaults(), nil
}
