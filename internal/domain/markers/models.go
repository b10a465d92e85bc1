package markers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
)

// ErrInvalidSymbol is returned for shape kinds outside the supported set.
var ErrInvalidSymbol = errors.New("invalid symbol kind")

// SymbolKind is the shape drawn for a marker.
type SymbolKind string

const (
	SymbolCircle   SymbolKind = "circle"
	SymbolX        SymbolKind = "x"
	SymbolCross    SymbolKind = "cross"
	SymbolDiamond  SymbolKind = "diamond"
	SymbolSquare   SymbolKind = "square"
	SymbolStar     SymbolKind = "star"
	SymbolTriangle SymbolKind = "triangle"
	SymbolWye      SymbolKind = "wye"
	SymbolAsterisk SymbolKind = "asterisk"
)

// Defaults applied to zero-valued symbol fields.
const (
	DefaultSize        = 0.2
	DefaultStroke      = "black"
	DefaultStrokeWidth = 0.1
	DefaultFill        = "currentColor"
)

var kinds = []SymbolKind{
	SymbolCircle,
	SymbolX,
	SymbolCross,
	SymbolDiamond,
	SymbolSquare,
	SymbolStar,
	SymbolTriangle,
	SymbolWye,
	SymbolAsterisk,
}

// Kinds lists every supported shape kind.
func Kinds() []SymbolKind {
	out := make([]SymbolKind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseSymbolKind resolves a shape name case-insensitively.
func ParseSymbolKind(raw string) (SymbolKind, error) {
	name := SymbolKind(strings.ToLower(strings.TrimSpace(raw)))
	for _, k := range kinds {
		if k == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, raw)
}

// UnmarshalJSON rejects unknown shape names.
func (k *SymbolKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*k = ""
		return nil
	}
	parsed, err := ParseSymbolKind(raw)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Symbol is the visual descriptor stored with a marker. Non-positive Size and
// StrokeWidth mean "use the default".
type Symbol struct {
	Kind        SymbolKind `json:"kind"`
	Size        float64    `json:"size"`
	Stroke      string     `json:"stroke"`
	StrokeWidth float64    `json:"strokeWidth"`
	Fill        string     `json:"fill"`
}

// WithDefaults fills zero-valued fields. Size and StrokeWidth are always
// positive afterwards; a marker without an outline uses Stroke "none".
func (s Symbol) WithDefaults() Symbol {
	if s.Kind == "" {
		s.Kind = SymbolCircle
	}
	if s.Size <= 0 {
		s.Size = DefaultSize
	}
	if s.Stroke == "" {
		s.Stroke = DefaultStroke
	}
	if s.StrokeWidth <= 0 {
		s.StrokeWidth = DefaultStrokeWidth
	}
	if s.Fill == "" {
		s.Fill = DefaultFill
	}
	return s
}

// Marker is a placed, identified shot symbol.
type Marker struct {
	ID       string      `json:"id"`
	Position court.Point `json:"position"`
	Symbol   Symbol      `json:"symbol"`
}
