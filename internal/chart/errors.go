package chart

import (
	"errors"

	"github.com/preston-bernstein/shot-chart-service/internal/geometry"
)

var (
	// ErrMissingSettings is returned when geometry or classification is requested with no league selected.
	ErrMissingSettings = geometry.ErrMissingSettings
	// ErrPreconditionViolation is returned when classification runs before any court geometry exists.
	ErrPreconditionViolation = errors.New("classification requires generated court geometry")
	// ErrUnknownMarker is returned when an operation names a marker that is not placed.
	ErrUnknownMarker = errors.New("unknown marker")
	// ErrMissingMarkerID is returned when an update omits the marker id.
	ErrMissingMarkerID = errors.New("marker id required")
)
