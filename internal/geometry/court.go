package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
)

// ErrMissingSettings is returned when geometry is requested without settings.
var ErrMissingSettings = errors.New("no court settings provided")

// Stable line keys.
const (
	LineBaseline              = "baseline"
	LineBackboard             = "backboard"
	LineKey                   = "key"
	LineThreePointArc         = "threePointArc"
	LineThreePointCornerLeft  = "threePointCornerLeft"
	LineThreePointCornerRight = "threePointCornerRight"
	LineRestrictedArea        = "restrictedArea"
	LineFreeThrowCircleTop    = "freeThrowCircleTop"
	LineFreeThrowCircleBottom = "freeThrowCircleBottom"
	LineKeyBlockLeft          = "keyBlockLeft"
	LineKeyBlockRight         = "keyBlockRight"
	LineRim                   = "rim"
)

// College lane blocks sit this far from the baseline and are one foot tall.
const (
	keyBlockDistance = 7
	keyBlockHeight   = 1
)

// KeyMarkLine returns the key of the n-th key mark tick on one side of the lane.
func KeyMarkLine(left bool, n int) string {
	if left {
		return fmt.Sprintf("keyMarkLeft%d", n)
	}
	return fmt.Sprintf("keyMarkRight%d", n)
}

// Generate computes every court line for the given settings.
func Generate(s *court.Settings) (court.Court, error) {
	if s == nil {
		return court.Court{}, ErrMissingSettings
	}
	return Build(*s), nil
}

// Build computes every court line for s.
func Build(s court.Settings) court.Court {
	rules := s.League
	width := rules.CourtWidth
	centerX := width / 2
	baseY := s.VisibleCourtLength
	hoop := s.HoopCenter()
	laneLeft := centerX - rules.KeyWidth/2
	laneRight := centerX + rules.KeyWidth/2
	freeThrowY := baseY - s.FreeThrowLineLength

	lines := court.LineSet{
		LineBaseline:  segment(0, baseY, width, baseY),
		LineKey:       rect(laneLeft, freeThrowY, rules.KeyWidth, s.FreeThrowLineLength),
		LineBackboard: segment(centerX-s.BasketWidth/2, baseY-s.BasketProtrusionLength, centerX+s.BasketWidth/2, baseY-s.BasketProtrusionLength),
	}

	span := ThreePointSpan(s)
	lines[LineThreePointArc] = Arc{Radius: rules.ThreePointRadius, Start: -span, End: span, Origin: hoop}.Sample()
	cornerTop := baseY - rules.ThreePointCutOffLength
	lines[LineThreePointCornerLeft] = segment(centerX-rules.ThreePointSideDistance, cornerTop, centerX-rules.ThreePointSideDistance, baseY)
	lines[LineThreePointCornerRight] = segment(centerX+rules.ThreePointSideDistance, cornerTop, centerX+rules.ThreePointSideDistance, baseY)

	lines[LineRestrictedArea] = Arc{Radius: s.RestrictedCircleRadius, Start: -math.Pi / 2, End: math.Pi / 2, Origin: hoop}.Sample()

	freeThrowCenter := court.Point{X: centerX, Y: freeThrowY}
	lines[LineFreeThrowCircleTop] = Arc{Radius: s.FreeThrowCircleRadius, Start: -math.Pi / 2, End: math.Pi / 2, Origin: freeThrowCenter}.Sample()
	switch rules.ID {
	case court.LeagueNCAA:
		lines[LineKeyBlockLeft] = rect(laneLeft-s.KeyMarkWidth, baseY-keyBlockDistance, s.KeyMarkWidth, keyBlockHeight)
		lines[LineKeyBlockRight] = rect(laneRight, baseY-keyBlockDistance, s.KeyMarkWidth, keyBlockHeight)
	default:
		lines[LineFreeThrowCircleBottom] = Arc{Radius: s.FreeThrowCircleRadius, Start: math.Pi / 2, End: 1.5 * math.Pi, Origin: freeThrowCenter}.Sample()
	}

	for i, mark := range rules.KeyMarks {
		y := baseY - mark
		lines[KeyMarkLine(true, i)] = segment(laneLeft-s.KeyMarkWidth, y, laneLeft, y)
		lines[KeyMarkLine(false, i)] = segment(laneRight+s.KeyMarkWidth, y, laneRight, y)
	}

	lines[LineRim] = Arc{Radius: s.BasketDiameter / 2, Start: 0, End: 2 * math.Pi, Origin: hoop}.Sample()

	return court.Court{
		League:   rules.ID,
		Settings: s,
		Lines:    lines,
		Viewport: court.Viewport{Width: width, Height: baseY},
		Hoop:     hoop,
	}
}

func segment(x1, y1, x2, y2 float64) []court.Point {
	return []court.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}
}

// rect returns a closed outline of the rectangle with top-left corner (x, y).
func rect(x, y, w, h float64) []court.Point {
	return []court.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
		{X: x, Y: y},
	}
}
