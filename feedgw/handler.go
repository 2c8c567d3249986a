package main

import (
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/matchcore/engine/common/kafka"
	"github.com/matchcore/engine/engine"
	"github.com/matchcore/engine/model"
	"github.com/matchcore/engine/orderbook"
)

// ingestHandler drains raw ITCH chunks from Kafka into one Engine per
// claimed partition and republishes every observer event onto eventsTopic.
// A single partition is this deployment's single-writer boundary — matching
// more than one partition to this handler would violate spec.md §5.
type ingestHandler struct {
	fifoCapacity uint64
	eventsTopic  string
	producer     *kafka.ChunkProducer
}

func newIngestHandler(fifoCapacity uint64, eventsTopic string, producer *kafka.ChunkProducer) *ingestHandler {
	return &ingestHandler{fifoCapacity: fifoCapacity, eventsTopic: eventsTopic, producer: producer}
}

func (h *ingestHandler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *ingestHandler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *ingestHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	partition := claim.Partition()
	eng := engine.New(h.fifoCapacity)

	var sequence uint64
	eng.SetObserver(func(kind engine.EventKind, order orderbook.Order) {
		sequence++
		h.publish(kind, order, sequence)
	})

	for msg := range claim.Messages() {
		if msg == nil {
			continue
		}

		if !eng.WriteChunk(msg.Value) {
			slog.Warn("FEEDGW: chunk rejected by fifo, producer must retry",
				"partition", partition,
				"offset", msg.Offset,
				"fifo_depth", eng.FifoStats().DepthBytes(),
			)
			session.MarkMessage(msg, "")
			continue
		}

		eng.Process()

		if errs := eng.ErrorStats(); errs.UnknownMessageTypes > 0 || errs.BufferOverflows > 0 || errs.IncompleteMessages > 0 || errs.InvalidOperations > 0 {
			slog.Debug("FEEDGW: dispatch error counters",
				"partition", partition,
				"offset", msg.Offset,
				"unknown_message_types", errs.UnknownMessageTypes,
				"buffer_overflows", errs.BufferOverflows,
				"incomplete_messages", errs.IncompleteMessages,
				"invalid_operations", errs.InvalidOperations,
			)
		}

		session.MarkMessage(msg, "")
	}
	return nil
}

func (h *ingestHandler) publish(kind engine.EventKind, order orderbook.Order, sequence uint64) {
	side := uint32(0)
	if order.Side == orderbook.Ask {
		side = 1
	}

	event := model.OrderEvent{
		Kind:      byte(kind),
		OrderID:   order.OrderID,
		Sequence:  sequence,
		Side:      side,
		Price:     uint64(order.Price),
		Quantity:  uint64(order.Remaining),
		Active:    order.Active,
		Timestamp: order.Timestamp,
	}

	if err := h.producer.Send(h.eventsTopic, model.EncodeEvent(event)); err != nil {
		slog.Error("FEEDGW: failed to publish observer event",
			"error", err,
			"order_id", order.OrderID,
			"kind", string(rune(kind)),
		)
	}
}
