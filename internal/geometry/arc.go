package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
)

// ArcResolution is the number of points sampled along every arc.
const ArcResolution = 1500

// Arc is a circular arc around Origin. Angles are in radians measured from
// vertical, so angle 0 points away from the baseline.
type Arc struct {
	Radius float64
	Start  float64
	End    float64
	Origin court.Point
}

// Sample returns ArcResolution points spaced uniformly in angle from Start to End.
func (a Arc) Sample() []court.Point {
	angles := floats.Span(make([]float64, ArcResolution), a.Start, a.End)
	points := make([]court.Point, len(angles))
	for i, angle := range angles {
		points[i] = a.At(angle)
	}
	return points
}

// At returns the point on the arc's circle at the given angle.
func (a Arc) At(angle float64) court.Point {
	return court.Point{
		X: a.Origin.X + a.Radius*math.Cos(angle-math.Pi/2),
		Y: a.Origin.Y + a.Radius*math.Sin(angle-math.Pi/2),
	}
}

// ThreePointSpan is the half-angle, in radians from vertical, at which the
// three point arc meets the straight corner segments.
func ThreePointSpan(s court.Settings) float64 {
	return math.Atan(s.League.ThreePointSideDistance /
		(s.League.ThreePointCutOffLength - s.BasketProtrusionLength - s.BasketDiameter/2))
}
