package metrics

import (
	"sync"
	"time"
)

type leagueStats struct {
	classified int
	threes     int
}

// Recorder captures lightweight, in-memory metrics about chart activity and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	leagues   map[string]*leagueStats
	mutations map[string]int
	redraws   int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		leagues:   make(map[string]*leagueStats),
		mutations: make(map[string]int),
		otel:      otel,
	}
}

// RecordClassification counts a classified shot for a league.
func (r *Recorder) RecordClassification(league string, threePointer bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.leagues[league]
	if !ok {
		stats = &leagueStats{}
		r.leagues[league] = stats
	}
	stats.classified++
	if threePointer {
		stats.threes++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordClassification(league, threePointer)
	}
}

// RecordMarkerMutation counts a registry mutation by operation name.
func (r *Recorder) RecordMarkerMutation(op string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.mutations[op]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMutation(op)
	}
}

// RecordRedraw counts a full redraw and the markers it carried.
func (r *Recorder) RecordRedraw(markerCount int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.redraws++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRedraw(markerCount)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the stats for one league.
type Snapshot struct {
	Classified int
	Threes     int
}

// Snapshot returns a copy of the current stats for the league.
func (r *Recorder) Snapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.leagues[league]; ok && stats != nil {
		return Snapshot{Classified: stats.classified, Threes: stats.threes}
	}
	return Snapshot{}
}

// MarkerMutations returns how many times op was recorded.
func (r *Recorder) MarkerMutations(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutations[op]
}

// Redraws returns the number of redraws recorded.
func (r *Recorder) Redraws() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redraws
}
