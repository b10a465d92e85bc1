package league

import "github.com/preston-bernstein/shot-chart-service/internal/domain/court"

// Court constants shared by every league, in feet.
const (
	basketDiameter         = 1.5
	basketProtrusionLength = 4
	basketWidth            = 6
	courtLength            = 94
	freeThrowLineLength    = 19
	freeThrowCircleRadius  = 6
	keyMarkWidth           = 0.66
	restrictedCircleRadius = 4

	// Margin past the three point arc kept visible above the top of the arc.
	visibleMargin = 10
)

// Angle from the hoop center to the point where the three point arc meets
// the straight corner segment, in degrees.
const (
	fibaAngleHoopThree = 12.101492031823499
	ncaaAngleHoopThree = 12.02699541075422
	nbaAngleHoopThree  = 22.059310299049454
)

// Inside reference points are stored in a 500 unit wide frame centered at 250.
func insidePoint(x, y float64) court.Point {
	return court.Point{X: (x + 250) / 10, Y: y / 10}
}

func arcAngles(angle float64) [2]float64 {
	return [2]float64{angle, 180 - angle}
}

var nbaRules = court.LeagueRules{
	ID:                     court.LeagueNBA,
	KeyWidth:               16,
	CourtWidth:             50,
	KeyMarks:               []float64{7, 8, 11, 14},
	ThreePointCutOffLength: 13.9,
	ThreePointRadius:       23.75,
	ThreePointSideDistance: 21.91,
	LeftThreeInside:        insidePoint(-120.94543, 251.89778),
	RightThreeInside:       insidePoint(-120.94543, 251.89778),
	ThreePointArcAngles:    arcAngles(nbaAngleHoopThree),
}

var fibaRules = court.LeagueRules{
	ID:                     court.LeagueFIBA,
	KeyWidth:               16.08,
	CourtWidth:             49.21,
	KeyMarks:               []float64{5.74147, 9.350394, 12.7953, 15.58399},
	ThreePointCutOffLength: 9.47,
	ThreePointRadius:       22.14567,
	ThreePointSideDistance: 21.653544,
	LeftThreeInside:        insidePoint(-112.77716, 238.0934),
	RightThreeInside:       insidePoint(-112.77716, 238.0934),
	ThreePointArcAngles:    arcAngles(fibaAngleHoopThree),
}

var ncaaRules = court.LeagueRules{
	ID:                     court.LeagueNCAA,
	KeyWidth:               12,
	CourtWidth:             50,
	KeyMarks:               []float64{11, 14, 17},
	ThreePointCutOffLength: 9.865,
	ThreePointRadius:       22.146,
	ThreePointSideDistance: 21.55,
	LeftThreeInside:        insidePoint(-112.77716, 238.0934),
	RightThreeInside:       insidePoint(-112.77716, 238.0934),
	ThreePointArcAngles:    arcAngles(ncaaAngleHoopThree),
}
