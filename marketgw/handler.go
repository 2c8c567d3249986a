package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler builds the HTTP handler that upgrades a connection to websocket
// and registers it with mgr, grounded on ndrandal-feed-simulator's
// internal/session.Handler.
func Handler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("MDGW: websocket upgrade error", "error", err)
			return
		}

		client := mgr.Register(conn)
		go writePump(client)
		go readPump(client, mgr)
	}
}
