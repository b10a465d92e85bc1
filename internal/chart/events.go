package chart

import (
	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
)

// Redraw carries everything a renderer needs to draw the chart from scratch.
type Redraw struct {
	Court   court.Court      `json:"court"`
	Markers []markers.Marker `json:"markers"`
}

// MarkerClick reports an interaction with a placed marker.
type MarkerClick struct {
	ID     string         `json:"id"`
	Marker markers.Marker `json:"marker"`
}

// RedrawHandler receives a notification after every successful mutation.
type RedrawHandler func(Redraw)

// MarkerClickHandler receives one notification per marker interaction.
type MarkerClickHandler func(MarkerClick)

type handlerList[T any] struct {
	next    int
	entries []handlerEntry[T]
}

type handlerEntry[T any] struct {
	id int
	fn func(T)
}

func (l *handlerList[T]) add(fn func(T)) func() {
	id := l.next
	l.next++
	l.entries = append(l.entries, handlerEntry[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *handlerList[T]) remove(id int) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *handlerList[T]) emit(v T) {
	for _, e := range l.entries {
		e.fn(v)
	}
}
