package render

import (
	"bufio"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
)

// Options controls court line styling.
type Options struct {
	LineStroke      string
	LineStrokeWidth float64
	Background      string
}

// DefaultOptions draws thin black lines on a transparent background.
func DefaultOptions() Options {
	return Options{LineStroke: "black", LineStrokeWidth: 0.1}
}

// SVG writes the court lines and markers as a standalone SVG document.
func SVG(w io.Writer, c court.Court, ms []markers.Marker, opts Options) error {
	if opts.LineStroke == "" {
		opts.LineStroke = "black"
	}
	if opts.LineStrokeWidth <= 0 {
		opts.LineStrokeWidth = 0.1
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" class="shot-chart" data-league="`)
	bw.WriteString(attr(string(c.League)))
	bw.WriteString(`" viewBox="0 0 `)
	bw.WriteString(num(c.Viewport.Width))
	bw.WriteByte(' ')
	bw.WriteString(num(c.Viewport.Height))
	bw.WriteString("\">\n")

	if opts.Background != "" {
		bw.WriteString(`<rect class="court-background" x="0" y="0" width="`)
		bw.WriteString(num(c.Viewport.Width))
		bw.WriteString(`" height="`)
		bw.WriteString(num(c.Viewport.Height))
		bw.WriteString(`" fill="`)
		bw.WriteString(attr(opts.Background))
		bw.WriteString("\"/>\n")
	}

	bw.WriteString(`<g class="court-lines" fill="none" stroke="`)
	bw.WriteString(attr(opts.LineStroke))
	bw.WriteString(`" stroke-width="`)
	bw.WriteString(num(opts.LineStrokeWidth))
	bw.WriteString("\">\n")
	for _, key := range sortedKeys(c.Lines) {
		writeLine(bw, key, c.Lines[key])
	}
	bw.WriteString("</g>\n")

	bw.WriteString("<g class=\"markers\">\n")
	for _, m := range ms {
		writeMarker(bw, m)
	}
	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

// LineClass converts a line key into its CSS class, e.g. threePointArc to three-point-arc.
func LineClass(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			if i > 0 && !isDigit(key[i-1]) {
				b.WriteByte('-')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func writeLine(bw *bufio.Writer, key string, pts []court.Point) {
	if len(pts) < 2 {
		return
	}
	bw.WriteString(`<polyline class="line `)
	bw.WriteString(LineClass(key))
	bw.WriteString(`" points="`)
	for i, p := range pts {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(num(p.X))
		bw.WriteByte(',')
		bw.WriteString(num(p.Y))
	}
	bw.WriteString("\"/>\n")
}

func writeMarker(bw *bufio.Writer, m markers.Marker) {
	sym := m.Symbol.WithDefaults()
	fill := sym.Fill
	if StrokeOnly(sym.Kind) {
		fill = "none"
	}
	bw.WriteString(`<path class="marker marker-`)
	bw.WriteString(attr(string(sym.Kind)))
	bw.WriteString(`" data-id="`)
	bw.WriteString(attr(m.ID))
	bw.WriteString(`" transform="translate(`)
	bw.WriteString(num(m.Position.X))
	bw.WriteByte(',')
	bw.WriteString(num(m.Position.Y))
	bw.WriteString(`)" d="`)
	bw.WriteString(SymbolPath(sym.Kind, sym.Size))
	bw.WriteString(`" fill="`)
	bw.WriteString(attr(fill))
	bw.WriteString(`" stroke="`)
	bw.WriteString(attr(sym.Stroke))
	bw.WriteString(`" stroke-width="`)
	bw.WriteString(num(sym.StrokeWidth))
	bw.WriteString("\"/>\n")
}

func sortedKeys(lines court.LineSet) []string {
	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func attr(v string) string {
	return html.EscapeString(v)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
