package league

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
)

// ErrInvalidLeague is returned for league keys outside the supported set.
var ErrInvalidLeague = errors.New("invalid league")

// Supported league keys.
const (
	KeyNBA  = "nba"
	KeyFIBA = "fiba"
	KeyNCAA = "ncaa"
)

var table = map[string]court.LeagueRules{
	KeyNBA:  nbaRules,
	KeyFIBA: fibaRules,
	KeyNCAA: ncaaRules,
}

// Keys returns the supported league keys in a stable order.
func Keys() []string {
	return []string{KeyNBA, KeyFIBA, KeyNCAA}
}

// All returns copies of every league's rules keyed by league key.
func All() map[string]court.LeagueRules {
	out := make(map[string]court.LeagueRules, len(table))
	for key, rules := range table {
		out[key] = cloneRules(rules)
	}
	return out
}

// Normalize trims and lowercases a league key.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Lookup returns a copy of the rules for a league key.
func Lookup(key string) (court.LeagueRules, error) {
	rules, ok := table[Normalize(key)]
	if !ok {
		return court.LeagueRules{}, fmt.Errorf("%w: %q", ErrInvalidLeague, key)
	}
	return cloneRules(rules), nil
}

// KeyFor maps a league id back to its lookup key.
func KeyFor(id court.LeagueID) (string, bool) {
	for _, k := range Keys() {
		if table[k].ID == id {
			return k, true
		}
	}
	return "", false
}

// BuildSettings expands league rules into the full court settings.
func BuildSettings(rules court.LeagueRules) court.Settings {
	return court.Settings{
		BasketDiameter:              basketDiameter,
		BasketProtrusionLength:      basketProtrusionLength,
		BasketWidth:                 basketWidth,
		CourtLength:                 courtLength,
		FreeThrowLineLength:         freeThrowLineLength,
		FreeThrowCircleRadius:       freeThrowCircleRadius,
		KeyMarkWidth:                keyMarkWidth,
		RestrictedCircleRadius:      restrictedCircleRadius,
		League:                      cloneRules(rules),
		LeftBaselineMidrangeInside:  insidePoint(145.99621, 81.94051),
		RightBaselineMidrangeInside: insidePoint(-145.99621, 81.94051),
		RightWingMidrangeInside:     insidePoint(68.29851, 172.92448),
		LeftWingMidrangeInside:      insidePoint(-68.29851, 172.92448),
		RightFloaterInside:          insidePoint(25.4622, 90.53112),
		LeftFloaterInside:           insidePoint(-25.4622, 90.53112),
		VisibleCourtLength:          rules.ThreePointRadius + visibleMargin,
	}
}

// Settings looks up a league and builds its settings in one step.
func Settings(key string) (court.Settings, error) {
	rules, err := Lookup(key)
	if err != nil {
		return court.Settings{}, err
	}
	return BuildSettings(rules), nil
}

func cloneRules(r court.LeagueRules) court.LeagueRules {
	if r.KeyMarks != nil {
		marks := make([]float64, len(r.KeyMarks))
		copy(marks, r.KeyMarks)
		r.KeyMarks = marks
	}
	return r
}
