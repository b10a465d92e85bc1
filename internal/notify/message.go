package notify

import (
	"encoding/json"

	"github.com/preston-bernstein/shot-chart-service/internal/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/court"
	"github.com/preston-bernstein/shot-chart-service/internal/domain/markers"
)

// Message types exchanged with subscribers.
const (
	MsgRedraw      = "redraw"
	MsgMarkerClick = "markerClick"
)

// Message is the envelope written to every subscriber. Inbound messages
// use the same shape; only markerClick is acted on.
type Message struct {
	Type    string            `json:"type"`
	Court   *court.Court      `json:"court,omitempty"`
	Markers *[]markers.Marker `json:"markers,omitempty"`
	ID      string            `json:"id,omitempty"`
}

// RedrawMessage wraps a redraw for the wire.
func RedrawMessage(r chart.Redraw) Message {
	c := r.Court
	ms := r.Markers
	if ms == nil {
		ms = []markers.Marker{}
	}
	return Message{Type: MsgRedraw, Court: &c, Markers: &ms}
}

// ClickMessage wraps a marker click for the wire.
func ClickMessage(c chart.MarkerClick) Message {
	return Message{Type: MsgMarkerClick, ID: c.ID}
}

// Encode serializes a message.
func Encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
