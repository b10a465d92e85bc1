package store

import (
	"sort"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
)

// MarkerRegistry owns the placed markers keyed by id.
// It is not safe for concurrent use; callers serialize access.
type MarkerRegistry struct {
	markers map[string]markers.Marker
}

// NewMarkerRegistry constructs an empty MarkerRegistry.
func NewMarkerRegistry() *MarkerRegistry {
	return &MarkerRegistry{
		markers: make(map[string]markers.Marker),
	}
}

// Put inserts a marker or replaces the one with the same id.
func (r *MarkerRegistry) Put(m markers.Marker) string {
	r.markers[m.ID] = m
	return m.ID
}

// PutAll applies Put for every marker in order, so later duplicates win.
func (r *MarkerRegistry) PutAll(list []markers.Marker) {
	for _, m := range list {
		r.Put(m)
	}
}

// Get retrieves a marker by id.
func (r *MarkerRegistry) Get(id string) (markers.Marker, bool) {
	m, ok := r.markers[id]
	return m, ok
}

// Remove deletes a marker if present and reports whether it existed.
func (r *MarkerRegistry) Remove(id string) bool {
	if _, ok := r.markers[id]; !ok {
		return false
	}
	delete(r.markers, id)
	return true
}

// Clear empties the registry.
func (r *MarkerRegistry) Clear() {
	r.markers = make(map[string]markers.Marker)
}

// Len reports the number of markers.
func (r *MarkerRegistry) Len() int {
	return len(r.markers)
}

// List returns a copy of all markers sorted by id. Order carries no meaning;
// sorting keeps responses stable.
func (r *MarkerRegistry) List() []markers.Marker {
	result := make([]markers.Marker, 0, len(r.markers))
	for _, m := range r.markers {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
