package main

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// wsConn is the subset of *websocket.Conn the hub and pumps depend on, so
// tests can substitute a fake.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (messageType int, p []byte, err error)
	SetReadDeadline(t time.Time) error
	SetReadLimit(limit int64)
	SetPongHandler(h func(string) error)
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is one connected market-data subscriber.
type Client struct {
	ID   uint64
	conn wsConn
	send chan []byte
}

// writePump drains c.send to the socket and pings on idle, grounded on
// ndrandal-feed-simulator's internal/session write pump.
func writePump(c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer c.conn.Close()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump exists only to detect client disconnects and keep the
// read-deadline/pong machinery alive; this gateway has no client→server
// control protocol (single instrument, nothing to subscribe/unsubscribe).
func readPump(c *Client, mgr *Manager) {
	defer mgr.Unregister(c)

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("MDGW: client read error", "client_id", c.ID, "error", err)
			}
			return
		}
	}
}
