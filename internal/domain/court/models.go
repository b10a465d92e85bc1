package court

// LeagueID identifies the rule set a court is drawn for.
type LeagueID string

const (
	LeagueNBA  LeagueID = "NBA"
	LeagueFIBA LeagueID = "FIBA"
	LeagueNCAA LeagueID = "COLL"
)

// Point is a court coordinate in feet. The x axis runs along the baseline and
// y grows toward the baseline.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LeagueRules holds the per-league constants that shape the half court.
type LeagueRules struct {
	ID                     LeagueID   `json:"leagueId"`
	KeyWidth               float64    `json:"keyWidth"`
	KeyMarks               []float64  `json:"keyMarks"`
	CourtWidth             float64    `json:"courtWidth"`
	ThreePointCutOffLength float64    `json:"threePointCutOffLength"`
	ThreePointRadius       float64    `json:"threePointRadius"`
	ThreePointSideDistance float64    `json:"threePointSideDistance"`
	LeftThreeInside        Point      `json:"leftThreeInside"`
	RightThreeInside       Point      `json:"rightThreeInside"`
	ThreePointArcAngles    [2]float64 `json:"threePointArcAngles"`
}

// Settings combines league-independent court constants with one league's rules.
type Settings struct {
	BasketDiameter              float64     `json:"basketDiameter"`
	BasketProtrusionLength      float64     `json:"basketProtrusionLength"`
	BasketWidth                 float64     `json:"basketWidth"`
	CourtLength                 float64     `json:"courtLength"`
	FreeThrowLineLength         float64     `json:"freeThrowLineLength"`
	FreeThrowCircleRadius       float64     `json:"freeThrowCircleRadius"`
	KeyMarkWidth                float64     `json:"keyMarkWidth"`
	RestrictedCircleRadius      float64     `json:"restrictedCircleRadius"`
	League                      LeagueRules `json:"leagueSettings"`
	LeftBaselineMidrangeInside  Point       `json:"leftBaselineMidrangeInside"`
	RightBaselineMidrangeInside Point       `json:"rightBaselineMidrangeInside"`
	LeftWingMidrangeInside      Point       `json:"leftWingMidrangeInside"`
	RightWingMidrangeInside     Point       `json:"rightWingMidrangeInside"`
	LeftFloaterInside           Point       `json:"leftFloaterInside"`
	RightFloaterInside          Point       `json:"rightFloaterInside"`
	VisibleCourtLength          float64     `json:"visibleCourtLength"`
}

// HoopCenter returns the center of the rim in court coordinates.
func (s Settings) HoopCenter() Point {
	return Point{
		X: s.League.CourtWidth / 2,
		Y: s.VisibleCourtLength - s.BasketProtrusionLength - s.BasketDiameter/2,
	}
}

// LineSet maps a stable line key to its ordered points.
type LineSet map[string][]Point

// Viewport is the drawable extent of a court, anchored at the origin.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Court is the generated geometry for one set of settings.
type Court struct {
	League   LeagueID `json:"league"`
	Settings Settings `json:"settings"`
	Lines    LineSet  `json:"lines"`
	Viewport Viewport `json:"viewport"`
	Hoop     Point    `json:"hoop"`
}

// ShotClassification describes a point relative to the hoop.
type ShotClassification struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	DistanceFeet   float64 `json:"distanceFeet"`
	DistanceMeters float64 `json:"distanceMeters"`
	AngleDegrees   float64 `json:"angleDegrees"`
	IsThreePointer bool    `json:"isThreePointer"`
}

// Points returns the point value of the attempt.
func (c ShotClassification) Points() int {
	if c.IsThreePointer {
		return 3
	}
	return 2
}
