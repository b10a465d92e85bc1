package shot

import (
	"math"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
)

// FeetToMeters converts court units to meters.
const FeetToMeters = 0.3048

// Classify measures a point against the hoop and decides whether it is a
// three point attempt under the given league rules.
func Classify(x, y float64, hoop court.Point, rules court.LeagueRules) court.ShotClassification {
	distance := Distance(x, y, hoop.X, hoop.Y)
	angle := Angle(hoop.X, hoop.Y, x, y)
	return court.ShotClassification{
		X:              x,
		Y:              y,
		DistanceFeet:   distance,
		DistanceMeters: distance * FeetToMeters,
		AngleDegrees:   angle,
		IsThreePointer: IsThreePointer(distance, angle, rules),
	}
}

// IsThreePointer applies the arc test inside the arc angles and the straight
// corner test outside them. Angles equal to a boundary use the arc test.
func IsThreePointer(distance, angle float64, rules court.LeagueRules) bool {
	low, high := rules.ThreePointArcAngles[0], rules.ThreePointArcAngles[1]
	if angle >= low && angle <= high {
		return math.Abs(distance) > math.Abs(rules.ThreePointRadius)
	}
	// Distance from the hoop to the straight segment along the shot's angle.
	hypotenuse := rules.ThreePointSideDistance / math.Cos(degreesToRadians(angle))
	return math.Abs(distance) > math.Abs(hypotenuse)
}

// Distance is the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(math.Pow(x1-x2, 2) + math.Pow(y1-y2, 2))
}

// Angle returns the angle in degrees, in (-180, 180], of the vector from the
// second point to the first.
func Angle(x1, y1, x2, y2 float64) float64 {
	return radiansToDegrees(math.Atan2(y1-y2, x1-x2))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func radiansToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}
