package game

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	pongWait       = time.Minute
	pingPeriod     = 30 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 64
)

// client pairs one websocket with its pumps. The read pump decodes inbound
// envelopes and hands them to the coordinator; the write pump drains the
// send channel the hub delivers into and keeps the connection alive with
// pings. A peer that stops answering pings blows its read deadline, which
// tears the connection down through the normal disconnect path and frees
// the player's name slot.
type client struct {
	id          string
	conn        *websocket.Conn
	send        chan OutEnvelope
	done        chan struct{}
	limiter     *rate.Limiter
	coordinator *Coordinator
	hub         *Hub
	logger      *slog.Logger
}

func newClient(id string, conn *websocket.Conn, coordinator *Coordinator, hub *Hub, logger *slog.Logger) *client {
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	return &client{
		id:          id,
		conn:        conn,
		send:        make(chan OutEnvelope, sendBufferSize),
		done:        make(chan struct{}),
		limiter:     rate.NewLimiter(5, 10),
		coordinator: coordinator,
		hub:         hub,
		logger:      logger,
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.Unregister(c.id)
		c.coordinator.HandleDisconnect(c.id)
		// The send channel is never closed: the hub may race one last
		// delivery into it. The done signal stops the write pump instead.
		close(c.done)
		c.conn.Close()
		c.logger.Info("connection closed", "connection_id", c.id)
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("read failed", "connection_id", c.id, "error", err)
			}
			return
		}

		if !c.limiter.Allow() {
			c.logger.Warn("rate limit exceeded, dropping event", "connection_id", c.id)
			continue
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.logger.Debug("discarding malformed envelope", "connection_id", c.id, "error", err)
			continue
		}
		c.coordinator.Dispatch(context.Background(), c.id, env)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case env := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(env); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
