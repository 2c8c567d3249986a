// producer is a flag-driven CLI harness that builds ITCH wire messages and
// publishes them as raw chunks to the ingest topic, standing in for the
// FPGA/network soft-core spec.md treats as an external collaborator.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/matchcore/engine/common"
	"github.com/matchcore/engine/common/kafka"
)

var (
	kind      = flag.String("kind", "", "Message kind: add, cancel, execute, replace.")
	topic     = flag.String("topic", "", "Ingest topic override (defaults to INGEST_TOPIC env or ingest-chunks).")
	orderID   = flag.Uint64("order-id", 0, "order_id (add/cancel/execute), or original_order_id (replace).")
	newID     = flag.Uint64("new-id", 0, "new_order_id (replace only).")
	side      = flag.String("side", "B", "Side: B or S (add only).")
	price     = flag.Uint("price", 0, "Price in ticks (add/replace).")
	quantity  = flag.Uint("quantity", 0, "Quantity (add/cancel/execute/replace).")
	timestamp = flag.Uint64("timestamp", 0, "Origin timestamp, nanoseconds (add/replace).")
)

const defaultChunksTopic = "ingest-chunks"

// Example:
//
//	./producer --kind add --order-id 12345 --side B --price 10000 --quantity 50 --timestamp 1000000
func main() {
	flag.Parse()

	chunksTopic := *topic
	if chunksTopic == "" {
		chunksTopic, _ = common.GetEnv("INGEST_TOPIC", defaultChunksTopic)
	}

	msg, err := buildMessage()
	if err != nil {
		log.Fatalf("producer: %v", err)
	}

	chunkProducer, err := kafka.NewChunkProducer()
	if err != nil {
		log.Fatalf("producer: failed to create chunk producer: %v", err)
	}
	defer chunkProducer.Close()

	if err := chunkProducer.Send(chunksTopic, msg); err != nil {
		log.Fatalf("producer: failed to send message: %v", err)
	}

	log.Printf("producer: sent %s message (%d bytes) to %s", strings.ToLower(*kind), len(msg), chunksTopic)
}

func buildMessage() ([]byte, error) {
	switch strings.ToLower(*kind) {
	case "add":
		return encodeAdd(*timestamp, *orderID, []byte(strings.ToUpper(*side))[0], uint32(*quantity), uint32(*price)), nil
	case "cancel":
		return encodeCancel(*orderID, uint32(*quantity)), nil
	case "execute":
		return encodeExecute(*orderID, uint32(*quantity)), nil
	case "replace":
		return encodeReplace(*timestamp, *orderID, *newID, uint32(*quantity), uint32(*price)), nil
	default:
		log.Fatalf("producer: unrecognized --kind %q (want add, cancel, execute, or replace)", *kind)
		return nil, nil
	}
}
