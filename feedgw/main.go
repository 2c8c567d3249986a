package main

import (
	"log/slog"
	"os"

	"github.com/matchcore/engine/common"
	"github.com/matchcore/engine/common/kafka"
)

const (
	defaultChunksTopic = "ingest-chunks"
	defaultEventsTopic = "engine-events"
	defaultGroupID     = "feedgw-group"
	defaultFifoCap     = uint32(1 << 20) // 1 MiB
)

func main() {
	chunksTopic, _ := common.GetEnv("INGEST_TOPIC", defaultChunksTopic)
	eventsTopic, _ := common.GetEnv("EVENTS_TOPIC", defaultEventsTopic)
	groupID, _ := common.GetEnv("FEEDGW_GROUP_ID", defaultGroupID)
	fifoCap, _ := common.GetEnv("FIFO_CAPACITY_BYTES", defaultFifoCap)

	slog.Info("FEEDGW: starting", "chunks_topic", chunksTopic, "events_topic", eventsTopic, "fifo_capacity", fifoCap)

	eventsProducer, err := kafka.NewChunkProducer()
	if err != nil {
		slog.Error("FEEDGW: critical error creating events producer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := eventsProducer.Close(); err != nil {
			slog.Error("FEEDGW: error closing events producer", "error", err)
		}
	}()

	handler := newIngestHandler(uint64(fifoCap), eventsTopic, eventsProducer)

	if err := kafka.RunConsumerGroup(groupID, []string{chunksTopic}, handler); err != nil {
		slog.Error("FEEDGW: error running consumer group", "error", err)
		os.Exit(1)
	}
}
