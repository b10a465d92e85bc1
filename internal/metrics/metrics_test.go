package metrics

import (
	"testing"
	"time"
)

func TestRecorderTracksClassifications(t *testing.T) {
	rec := NewRecorder()
	rec.RecordClassification("NBA", true)
	rec.RecordClassification("NBA", false)
	rec.RecordClassification("FIBA", true)

	snap := rec.Snapshot("NBA")
	if snap.Classified != 2 || snap.Threes != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if got := rec.Snapshot("FIBA").Threes; got != 1 {
		t.Fatalf("expected 1 FIBA three, got %d", got)
	}
	if got := rec.Snapshot("COLL"); got != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for unseen league, got %+v", got)
	}
}

func TestRecorderTracksMutationsAndRedraws(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMarkerMutation("place")
	rec.RecordMarkerMutation("place")
	rec.RecordMarkerMutation("clear")
	rec.RecordRedraw(3)

	if got := rec.MarkerMutations("place"); got != 2 {
		t.Fatalf("expected 2 place mutations, got %d", got)
	}
	if got := rec.MarkerMutations("clear"); got != 1 {
		t.Fatalf("expected 1 clear mutation, got %d", got)
	}
	if got := rec.Redraws(); got != 1 {
		t.Fatalf("expected 1 redraw, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordClassification("NBA", true)
	rec.RecordMarkerMutation("place")
	rec.RecordRedraw(1)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if rec.Snapshot("NBA") != (Snapshot{}) || rec.Redraws() != 0 || rec.MarkerMutations("place") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
