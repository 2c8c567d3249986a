package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

// ChunkProducer wraps sarama.SyncProducer to publish raw byte chunks — the
// ingest side of spec.md's Producer→Fifo arrow — onto a single, fixed
// partition so a consumer group sees them in the exact order they were
// sent.
type ChunkProducer struct {
	internal sarama.SyncProducer
}

// NewChunkProducer creates a wrapped producer using the single-partition
// factory defined in factory.go.
func NewChunkProducer() (*ChunkProducer, error) {
	p, err := NewSinglePartitionProducer()
	if err != nil {
		return nil, err
	}
	return &ChunkProducer{internal: p}, nil
}

func (p *ChunkProducer) Close() error {
	return p.internal.Close()
}

// Send publishes one byte chunk to topic, partition 0.
func (p *ChunkProducer) Send(topic string, chunk []byte) error {
	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Partition: 0,
		Value:     sarama.ByteEncoder(chunk),
	}
	_, _, err := p.internal.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to produce chunk to %s: %w", topic, err)
	}
	return nil
}
