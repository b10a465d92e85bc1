package render

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
	"github.com/preston-bernstein/shot-chart-service/internal/geometry"
	"github.com/preston-bernstein/shot-chart-service/internal/league"
)

func nbaCourt(t *testing.T) court.Court {
	t.Helper()
	s, err := league.Settings(league.KeyNBA)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	c, err := geometry.Generate(&s)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return c
}

func TestSymbolPathCircle(t *testing.T) {
	got := SymbolPath(markers.SymbolCircle, math.Pi)
	want := "M1,0A1,1,0,1,1,-1,0A1,1,0,1,1,1,0Z"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestSymbolPathSquare(t *testing.T) {
	got := SymbolPath(markers.SymbolSquare, 4)
	want := "M-1,-1L1,-1L1,1L-1,1Z"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestSymbolPathEveryKind(t *testing.T) {
	seen := map[string]markers.SymbolKind{}
	for _, kind := range markers.Kinds() {
		d := SymbolPath(kind, 0.2)
		if !strings.HasPrefix(d, "M") {
			t.Fatalf("%s: path must start with a move, got %s", kind, d)
		}
		if other, ok := seen[d]; ok {
			t.Fatalf("%s and %s produced the same path", kind, other)
		}
		seen[d] = kind

		closed := strings.HasSuffix(d, "Z")
		if StrokeOnly(kind) == closed {
			t.Fatalf("%s: unexpected closure in %s", kind, d)
		}
	}
}

func TestSymbolPathDefaultsSize(t *testing.T) {
	if SymbolPath(markers.SymbolStar, 0) != SymbolPath(markers.SymbolStar, markers.DefaultSize) {
		t.Fatalf("expected zero size to fall back to the default")
	}
}

func TestLineClass(t *testing.T) {
	cases := map[string]string{
		"baseline":           "baseline",
		"threePointArc":      "three-point-arc",
		"keyMarkLeft0":       "key-mark-left-0",
		"keyMarkRight12":     "key-mark-right-12",
		"freeThrowCircleTop": "free-throw-circle-top",
	}
	for in, want := range cases {
		if got := LineClass(in); got != want {
			t.Fatalf("LineClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSVGRendersCourtAndMarkers(t *testing.T) {
	c := nbaCourt(t)
	ms := []markers.Marker{
		{ID: "a", Position: court.Point{X: 25, Y: 10}, Symbol: markers.Symbol{Kind: markers.SymbolStar, Fill: "red"}},
		{ID: "b<script>", Position: court.Point{X: 5, Y: 30}, Symbol: markers.Symbol{Kind: markers.SymbolX}},
	}

	var buf bytes.Buffer
	if err := SVG(&buf, c, ms, DefaultOptions()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `viewBox="0 0 50 33.75"`) {
		t.Fatalf("unexpected viewBox in %s", out[:120])
	}
	if got := strings.Count(out, "<polyline"); got != len(c.Lines) {
		t.Fatalf("expected %d polylines, got %d", len(c.Lines), got)
	}
	if !strings.Contains(out, `class="line three-point-arc"`) {
		t.Fatalf("expected three point arc polyline")
	}
	if !strings.Contains(out, `data-id="a" transform="translate(25,10)"`) {
		t.Fatalf("expected translated marker a")
	}
	if !strings.Contains(out, `fill="red"`) {
		t.Fatalf("expected marker fill to be kept")
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("marker ids must be escaped")
	}
	if !strings.Contains(out, `class="marker marker-x"`) || !strings.Contains(out, `fill="none"`) {
		t.Fatalf("expected stroke only x marker")
	}
}

func TestSVGMarkerWithoutOutline(t *testing.T) {
	ms := []markers.Marker{{ID: "bare", Position: court.Point{X: 1, Y: 2}, Symbol: markers.Symbol{Stroke: "none"}}}
	var buf bytes.Buffer
	if err := SVG(&buf, nbaCourt(t), ms, DefaultOptions()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `fill="currentColor" stroke="none" stroke-width="0.1"`) {
		t.Fatalf("expected marker drawn without outline")
	}
}

func TestSVGBackground(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Background: "#f5deb3"}
	if err := SVG(&buf, nbaCourt(t), nil, opts); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `class="court-background"`) {
		t.Fatalf("expected background rect")
	}
	if !strings.Contains(buf.String(), `stroke="black" stroke-width="0.1"`) {
		t.Fatalf("expected default line style")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSVGPropagatesWriteError(t *testing.T) {
	if err := SVG(failingWriter{}, nbaCourt(t), nil, DefaultOptions()); err == nil {
		t.Fatalf("expected write error")
	}
}
