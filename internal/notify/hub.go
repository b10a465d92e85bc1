// Package notify pushes chart redraws and marker clicks to WebSocket subscribers.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/preston-bernstein/shot-chart-service/internal/chart"
	"github.com/preston-bernstein/shot-chart-service/internal/logging"
)

const (
	defaultSendBuffer = 64
	readLimit         = 4096
)

// Subscriber is the notification source a hub attaches to.
type Subscriber interface {
	OnRedraw(chart.RedrawHandler) func()
	OnMarkerClick(chart.MarkerClickHandler) func()
}

// ClickFunc forwards a marker click received from a subscriber.
type ClickFunc func(id string) error

// Options configures a Hub.
type Options struct {
	OriginPatterns []string
	SendBuffer     int
	OnClick        ClickFunc
	Logger         *slog.Logger
}

// Stats is a snapshot of hub activity.
type Stats struct {
	Subscribers      int    `json:"subscribers"`
	TotalConnections uint64 `json:"totalConnections"`
	Dropped          uint64 `json:"dropped"`
}

// Hub fans messages out to every connected subscriber.
type Hub struct {
	mu    sync.Mutex
	conns map[string]*Conn

	nextID           atomic.Uint64
	totalConnections atomic.Uint64
	dropped          atomic.Uint64

	originPatterns []string
	sendBuffer     int
	onClick        ClickFunc
	logger         *slog.Logger
}

// NewHub constructs a Hub.
func NewHub(opts Options) *Hub {
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = defaultSendBuffer
	}
	return &Hub{
		conns:          make(map[string]*Conn),
		originPatterns: opts.OriginPatterns,
		sendBuffer:     opts.SendBuffer,
		onClick:        opts.OnClick,
		logger:         opts.Logger,
	}
}

// Attach subscribes the hub to src and returns a func that detaches it.
func (h *Hub) Attach(src Subscriber) func() {
	offRedraw := src.OnRedraw(func(r chart.Redraw) {
		h.Broadcast(RedrawMessage(r))
	})
	offClick := src.OnMarkerClick(func(c chart.MarkerClick) {
		h.Broadcast(ClickMessage(c))
	})
	return func() {
		offRedraw()
		offClick()
	}
}

// Broadcast encodes msg once and queues it on every subscriber without blocking.
func (h *Hub) Broadcast(msg Message) {
	data, err := Encode(msg)
	if err != nil {
		logging.Error(h.logger, "encode notification failed", err, "type", msg.Type)
		return
	}
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if !c.Send(data) {
			h.dropped.Add(1)
		}
	}
}

// Stats returns current counters.
func (h *Hub) Stats() Stats {
	h.mu.Lock()
	n := len(h.conns)
	h.mu.Unlock()
	return Stats{
		Subscribers:      n,
		TotalConnections: h.totalConnections.Load(),
		Dropped:          h.dropped.Load(),
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[string]*Conn)
	h.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}
}

// HandleWS upgrades the request and serves the subscriber until it disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)
	acceptOpts := &websocket.AcceptOptions{}
	if len(h.originPatterns) > 0 {
		acceptOpts.OriginPatterns = h.originPatterns
	}

	// Subscriptions outlive the server write timeout.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	ws, err := websocket.Accept(w, r, acceptOpts)
	if err != nil {
		logging.Warn(logger, "websocket accept failed", "error", err)
		return
	}
	ws.SetReadLimit(readLimit)

	h.totalConnections.Add(1)
	id := fmt.Sprintf("sub-%d", h.nextID.Add(1))
	conn := newConn(ws, id, h.sendBuffer, logger)
	h.register(conn)
	logging.Info(logger, "subscriber connected", "conn", id)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go conn.WriteLoop(ctx)

	conn.ReadLoop(ctx, func(msg Message) { h.handleInbound(conn, msg) })

	h.unregister(conn)
	logging.Info(logger, "subscriber disconnected", "conn", id)
}

func (h *Hub) handleInbound(conn *Conn, msg Message) {
	if msg.Type != MsgMarkerClick || h.onClick == nil {
		return
	}
	if err := h.onClick(msg.ID); err != nil {
		logging.Warn(conn.logger, "marker click rejected", logging.FieldMarkerID, msg.ID, "error", err)
	}
}

func (h *Hub) register(c *Conn) {
	h.mu.Lock()
	h.conns[c.ID] = c
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Conn) {
	h.mu.Lock()
	delete(h.conns, c.ID)
	h.mu.Unlock()
	c.Close()
}
