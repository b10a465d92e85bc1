package store

import (
	"testing"

	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
)

func marker(id string, x, y float64) markers.Marker {
	return markers.Marker{ID: id, Position: court.Point{X: x, Y: y}, Symbol: markers.Symbol{Kind: markers.SymbolCircle}}
}

func TestMarkerRegistryPutAndGet(t *testing.T) {
	r := NewMarkerRegistry()

	if id := r.Put(marker("a", 1, 2)); id != "a" {
		t.Fatalf("expected id a, got %s", id)
	}
	got, ok := r.Get("a")
	if !ok {
		t.Fatalf("expected marker a to be present")
	}
	if got.Position.X != 1 || got.Position.Y != 2 {
		t.Fatalf("unexpected position %+v", got.Position)
	}
}

func TestMarkerRegistryLastWriteWins(t *testing.T) {
	r := NewMarkerRegistry()
	r.Put(marker("same", 1, 1))
	second := marker("same", 5, 6)
	second.Symbol.Kind = markers.SymbolStar
	r.Put(second)

	if r.Len() != 1 {
		t.Fatalf("expected 1 marker, got %d", r.Len())
	}
	got, _ := r.Get("same")
	if got.Position.X != 5 || got.Symbol.Kind != markers.SymbolStar {
		t.Fatalf("expected second marker to win, got %+v", got)
	}
}

func TestMarkerRegistryPutAllDuplicates(t *testing.T) {
	r := NewMarkerRegistry()
	r.PutAll([]markers.Marker{marker("dup", 1, 1), marker("dup", 2, 2), marker("other", 3, 3)})

	if r.Len() != 2 {
		t.Fatalf("expected 2 markers, got %d", r.Len())
	}
	got, _ := r.Get("dup")
	if got.Position.X != 2 {
		t.Fatalf("expected last duplicate to win, got %+v", got)
	}
}

func TestMarkerRegistryRemove(t *testing.T) {
	r := NewMarkerRegistry()
	r.Put(marker("a", 1, 1))

	if !r.Remove("a") {
		t.Fatalf("expected remove to report existing marker")
	}
	if r.Remove("a") {
		t.Fatalf("expected second remove to be a no-op")
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestMarkerRegistryClearIsIdempotent(t *testing.T) {
	r := NewMarkerRegistry()
	r.Put(marker("a", 1, 1))
	r.Put(marker("b", 1, 1))

	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("expected empty registry after clear, got %d", r.Len())
	}
	r.Clear()
	if got := len(r.List()); got != 0 {
		t.Fatalf("expected empty list after second clear, got %d", got)
	}
}

func TestMarkerRegistryListReturnsCopy(t *testing.T) {
	r := NewMarkerRegistry()
	r.Put(marker("b", 1, 1))
	r.Put(marker("a", 2, 2))

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("unexpected list %+v", list)
	}
	list[0].Position.X = 99

	got, _ := r.Get("a")
	if got.Position.X != 2 {
		t.Fatalf("expected registry unchanged, got %+v", got)
	}
}

func TestMarkerRegistryPutAllMatchesPut(t *testing.T) {
	bulk := NewMarkerRegistry()
	single := NewMarkerRegistry()
	bulk.Put(marker("keep", 9, 9))
	single.Put(marker("keep", 9, 9))

	list := []markers.Marker{marker("a", 1, 1), marker("keep", 2, 2), marker("a", 3, 3)}
	bulk.PutAll(list)
	for _, m := range list {
		single.Put(m)
	}

	got, want := bulk.List(), single.List()
	if len(got) != len(want) {
		t.Fatalf("expected %d markers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("marker %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
