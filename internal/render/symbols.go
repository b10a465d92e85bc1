package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
)

var (
	sqrt3   = math.Sqrt(3)
	tan30   = math.Sqrt(1.0 / 3)
	starKA  = 0.89081309152928522810
	starKR  = math.Sin(math.Pi/10) / math.Sin(7*math.Pi/10)
	starKX  = math.Sin(2*math.Pi/10) * starKR
	starKY  = -math.Cos(2*math.Pi/10) * starKR
	wyeK    = 1 / math.Sqrt(12)
	wyeArea = (wyeK/2 + 1) * 3
)

// SymbolPath returns SVG path data for a symbol centered on the origin.
// Size is the approximate area of the shape in square court units.
func SymbolPath(kind markers.SymbolKind, size float64) string {
	if size <= 0 {
		size = markers.DefaultSize
	}
	p := &pathBuilder{}
	switch kind {
	case markers.SymbolCross:
		r := math.Sqrt(size/5) / 2
		p.move(-3*r, -r)
		p.line(-r, -r)
		p.line(-r, -3*r)
		p.line(r, -3*r)
		p.line(r, -r)
		p.line(3*r, -r)
		p.line(3*r, r)
		p.line(r, r)
		p.line(r, 3*r)
		p.line(-r, 3*r)
		p.line(-r, r)
		p.line(-3*r, r)
		p.close()
	case markers.SymbolDiamond:
		y := math.Sqrt(size / (2 * tan30))
		x := y * tan30
		p.move(0, -y)
		p.line(x, 0)
		p.line(0, y)
		p.line(-x, 0)
		p.close()
	case markers.SymbolSquare:
		w := math.Sqrt(size)
		x := -w / 2
		p.move(x, x)
		p.line(x+w, x)
		p.line(x+w, x+w)
		p.line(x, x+w)
		p.close()
	case markers.SymbolStar:
		r := math.Sqrt(size * starKA)
		x := starKX * r
		y := starKY * r
		p.move(0, -r)
		p.line(x, y)
		for i := 1; i < 5; i++ {
			a := 2 * math.Pi * float64(i) / 5
			c, s := math.Cos(a), math.Sin(a)
			p.line(s*r, -c*r)
			p.line(c*x-s*y, s*x+c*y)
		}
		p.close()
	case markers.SymbolTriangle:
		y := -math.Sqrt(size / (sqrt3 * 3))
		p.move(0, 2*y)
		p.line(-sqrt3*y, -y)
		p.line(sqrt3*y, -y)
		p.close()
	case markers.SymbolWye:
		c, s := -0.5, sqrt3/2
		r := math.Sqrt(size / wyeArea)
		x0, y0 := r/2, r*wyeK
		x1, y1 := x0, r*wyeK+r
		x2, y2 := -x1, y1
		p.move(x0, y0)
		p.line(x1, y1)
		p.line(x2, y2)
		p.line(c*x0-s*y0, s*x0+c*y0)
		p.line(c*x1-s*y1, s*x1+c*y1)
		p.line(c*x2-s*y2, s*x2+c*y2)
		p.line(c*x0+s*y0, c*y0-s*x0)
		p.line(c*x1+s*y1, c*y1-s*x1)
		p.line(c*x2+s*y2, c*y2-s*x2)
		p.close()
	case markers.SymbolX:
		r := math.Sqrt(size-math.Min(size/6, 1.7)) * 0.6189
		p.move(-r, -r)
		p.line(r, r)
		p.move(-r, r)
		p.line(r, -r)
	case markers.SymbolAsterisk:
		r := math.Sqrt(size+math.Min(size/28, 0.75)) * 0.59436
		t := r / 2
		u := t * sqrt3
		p.move(0, r)
		p.line(0, -r)
		p.move(-u, -t)
		p.line(u, t)
		p.move(-u, t)
		p.line(u, -t)
	default:
		r := math.Sqrt(size / math.Pi)
		p.move(r, 0)
		p.arc(r, -r, 0)
		p.arc(r, r, 0)
		p.close()
	}
	return p.String()
}

// StrokeOnly reports whether a kind is drawn with lines rather than a filled outline.
func StrokeOnly(kind markers.SymbolKind) bool {
	return kind == markers.SymbolX || kind == markers.SymbolAsterisk
}

type pathBuilder struct {
	b strings.Builder
}

func (p *pathBuilder) move(x, y float64) {
	p.b.WriteByte('M')
	p.pair(x, y)
}

func (p *pathBuilder) line(x, y float64) {
	p.b.WriteByte('L')
	p.pair(x, y)
}

// arc draws a half circle of radius r ending at (x, y).
func (p *pathBuilder) arc(r, x, y float64) {
	p.b.WriteByte('A')
	p.b.WriteString(num(r))
	p.b.WriteByte(',')
	p.b.WriteString(num(r))
	p.b.WriteString(",0,1,1,")
	p.pair(x, y)
}

func (p *pathBuilder) close() {
	p.b.WriteByte('Z')
}

func (p *pathBuilder) pair(x, y float64) {
	p.b.WriteString(num(x))
	p.b.WriteByte(',')
	p.b.WriteString(num(y))
}

func (p *pathBuilder) String() string {
	return p.b.String()
}

func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
