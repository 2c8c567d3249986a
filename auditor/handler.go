package main

import (
	"database/sql"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/matchcore/engine/model"
)

// auditHandler persists every decoded OrderEvent into the append-only
// order_events table. This is an audit trail, not book-state persistence —
// it is never read back by the engine.
type auditHandler struct {
	db *sql.DB
}

func (h *auditHandler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *auditHandler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *auditHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		event, err := model.DecodeEvent(msg.Value)
		if err != nil {
			slog.Error("AUDITOR: failed to decode order event",
				"error", err,
				"partition", claim.Partition(),
				"offset", msg.Offset,
			)
			session.MarkMessage(msg, "")
			continue
		}

		insertSQL := `
		INSERT INTO order_events (order_id, kind, sequence, side, price, quantity, active, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id, kind, sequence) DO NOTHING;`

		_, err = h.db.Exec(insertSQL,
			event.OrderID,
			string(rune(event.Kind)),
			event.Sequence,
			event.Side,
			event.Price,
			event.Quantity,
			event.Active,
			event.Timestamp,
		)

		if err != nil {
			slog.Error("AUDITOR: failed to insert order event", "error", err, "order_id", event.OrderID)
		} else {
			slog.Info("AUDITOR: persisted order event",
				"order_id", event.OrderID,
				"kind", string(rune(event.Kind)),
				"sequence", event.Sequence,
			)
			session.MarkMessage(msg, "")
		}
	}
	return nil
}
