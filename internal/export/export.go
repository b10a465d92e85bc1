// Package export converts generated courts into GIS formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
)

// Feature kinds stored in the "kind" property.
const (
	KindLine   = "line"
	KindMarker = "marker"
)

// Line is one court line as a linestring.
type Line struct {
	Key    string
	Geom   geom.LineString
	Length float64
}

// Lines converts every court line into a linestring ordered by key.
// Lines with fewer than two points are skipped.
func Lines(c court.Court) ([]Line, error) {
	keys := make([]string, 0, len(c.Lines))
	for k := range c.Lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Line, 0, len(keys))
	for _, key := range keys {
		pts := c.Lines[key]
		if len(pts) < 2 {
			continue
		}
		ls, err := lineString(pts)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", key, err)
		}
		out = append(out, Line{Key: key, Geom: ls, Length: ls.Length()})
	}
	return out, nil
}

// FeatureCollection builds a collection with every court line followed by every marker.
func FeatureCollection(c court.Court, ms []markers.Marker) (geom.GeoJSONFeatureCollection, error) {
	lines, err := Lines(c)
	if err != nil {
		return nil, err
	}
	fc := make(geom.GeoJSONFeatureCollection, 0, len(lines)+len(ms))
	for _, l := range lines {
		fc = append(fc, geom.GeoJSONFeature{
			Geometry: l.Geom.AsGeometry(),
			ID:       l.Key,
			Properties: map[string]interface{}{
				"kind":   KindLine,
				"league": string(c.League),
				"length": l.Length,
			},
		})
	}
	for _, m := range ms {
		sym := m.Symbol.WithDefaults()
		pt, err := geom.NewPoint(geom.Coordinates{XY: geom.XY{X: m.Position.X, Y: m.Position.Y}})
		if err != nil {
			return nil, fmt.Errorf("marker %s: %w", m.ID, err)
		}
		fc = append(fc, geom.GeoJSONFeature{
			Geometry: pt.AsGeometry(),
			ID:       m.ID,
			Properties: map[string]interface{}{
				"kind":        KindMarker,
				"symbol":      string(sym.Kind),
				"size":        sym.Size,
				"fill":        sym.Fill,
				"stroke":      sym.Stroke,
				"strokeWidth": sym.StrokeWidth,
			},
		})
	}
	return fc, nil
}

// GeoJSON writes the feature collection for c and ms.
func GeoJSON(w io.Writer, c court.Court, ms []markers.Marker) error {
	fc, err := FeatureCollection(c, ms)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(fc)
}

// WKT writes one "key<TAB>wkt" row per court line.
func WKT(w io.Writer, c court.Court) error {
	lines, err := Lines(c)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := io.WriteString(w, l.Key+"\t"+l.Geom.AsText()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func lineString(pts []court.Point) (geom.LineString, error) {
	coords := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		coords = append(coords, p.X, p.Y)
	}
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}
