package main

import (
	"encoding/json"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/matchcore/engine/engine"
	"github.com/matchcore/engine/orderbook"
)

// ingestHandler owns an Engine fed from the same ingest-chunk stream as
// feedgw (not a derived event feed — marketgw needs the real book, not an
// approximation reconstructed from observer snapshots), and broadcasts a
// snapshot on every dispatched message. The goroutine processing one
// partition's claim is the single writer for this Engine, satisfying
// spec.md §5's discipline even though the book itself is read only for
// market-data purposes here.
type ingestHandler struct {
	fifoCapacity uint64
	mgr          *Manager
}

func newIngestHandler(fifoCapacity uint64, mgr *Manager) *ingestHandler {
	return &ingestHandler{fifoCapacity: fifoCapacity, mgr: mgr}
}

func (h *ingestHandler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *ingestHandler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *ingestHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	eng := engine.New(h.fifoCapacity)
	eng.SetObserver(func(engine.EventKind, orderbook.Order) {
		h.broadcast(eng)
	})

	for msg := range claim.Messages() {
		if msg == nil {
			continue
		}
		eng.WriteChunk(msg.Value)
		eng.Process()
		session.MarkMessage(msg, "")
	}
	return nil
}

func (h *ingestHandler) broadcast(eng *engine.Engine) {
	payload, err := json.Marshal(buildSnapshot(eng))
	if err != nil {
		slog.Error("MDGW: failed to marshal snapshot", "error", err)
		return
	}
	h.mgr.Broadcast(payload)
}
