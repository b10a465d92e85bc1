package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/preston-bernstein/shot-chart-service/internal/logging"
)

const writeTimeout = 5 * time.Second

// Conn is one subscriber with a bounded outbound queue.
type Conn struct {
	ws     *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
	once   sync.Once
	ID     string
	logger *slog.Logger
}

func newConn(ws *websocket.Conn, id string, buffer int, logger *slog.Logger) *Conn {
	return &Conn{
		ws:     ws,
		sendCh: make(chan []byte, buffer),
		done:   make(chan struct{}),
		ID:     id,
		logger: logger,
	}
}

// Send queues data without blocking. It reports false when the message was dropped.
func (c *Conn) Send(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.sendCh <- data:
		return true
	default:
		logging.Warn(c.logger, "subscriber buffer full, dropping message", "conn", c.ID)
		return false
	}
}

// ReadLoop decodes inbound messages until the connection fails and hands them to fn.
func (c *Conn) ReadLoop(ctx context.Context, fn func(Message)) {
	for {
		var msg Message
		if err := wsjson.Read(ctx, c.ws, &msg); err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				logging.Warn(c.logger, "subscriber read failed", "conn", c.ID, "error", err)
			}
			c.Close()
			return
		}
		if fn != nil {
			fn(msg)
		}
	}
}

// WriteLoop drains the queue until the connection closes.
func (c *Conn) WriteLoop(ctx context.Context) {
	for {
		select {
		case data := <-c.sendCh:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.ws.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				logging.Warn(c.logger, "subscriber write failed", "conn", c.ID, "error", err)
				c.Close()
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close shuts the connection once.
func (c *Conn) Close() {
	c.once.Do(func() {
		close(c.done)
		c.ws.Close(websocket.StatusNormalClosure, "")
	})
}

// Done is closed when the connection ends.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}
