package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/matchcore/engine/common"
	"github.com/matchcore/engine/common/kafka"
)

const (
	defaultChunksTopic = "ingest-chunks"
	defaultGroupID     = "marketgw-group"
	defaultListenAddr  = ":8081"
	defaultFifoCap     = uint32(1 << 20) // 1 MiB
)

func main() {
	chunksTopic, _ := common.GetEnv("INGEST_TOPIC", defaultChunksTopic)
	groupID, _ := common.GetEnv("MARKETGW_GROUP_ID", defaultGroupID)
	listenAddr, _ := common.GetEnv("MARKETGW_LISTEN_ADDR", defaultListenAddr)
	fifoCap, _ := common.GetEnv("FIFO_CAPACITY_BYTES", defaultFifoCap)

	slog.Info("MDGW: starting", "chunks_topic", chunksTopic, "listen_addr", listenAddr)

	mgr := NewManager()

	mux := http.NewServeMux()
	mux.HandleFunc("/stream", Handler(mgr))

	go func() {
		if err := http.ListenAndServe(listenAddr, mux); err != nil {
			slog.Error("MDGW: http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	handler := newIngestHandler(uint64(fifoCap), mgr)
	if err := kafka.RunConsumerGroup(groupID, []string{chunksTopic}, handler); err != nil {
		slog.Error("MDGW: error running consumer group", "error", err)
		os.Exit(1)
	}
}
