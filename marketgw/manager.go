package main

import "sync"

// Manager is the websocket client registry and broadcast hub, grounded on
// ndrandal-feed-simulator's internal/session.Manager, trimmed to this
// repo's single-instrument scope: every client receives every snapshot,
// there is no per-symbol subscription to manage.
type Manager struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	nextID  uint64
}

func NewManager() *Manager {
	return &Manager{clients: make(map[*Client]struct{})}
}

// Register adds a newly-upgraded connection and returns its Client handle.
func (m *Manager) Register(conn wsConn) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	c := &Client{ID: m.nextID, conn: conn, send: make(chan []byte, 16)}
	m.clients[c] = struct{}{}
	return c
}

// Unregister removes a client and closes its send channel.
func (m *Manager) Unregister(c *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[c]; ok {
		delete(m.clients, c)
		close(c.send)
	}
}

// Broadcast enqueues payload onto every connected client's send channel,
// dropping it for a client whose channel is full rather than blocking the
// caller — a slow reader must not stall snapshot delivery to the rest.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for c := range m.clients {
		select {
		case c.send <- payload:
		default:
		}
	}
}
