// Package kafka wraps github.com/IBM/sarama with the connection-retry and
// single-partition-ordering conventions matchcore's daemons share.
package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/matchcore/engine/common"
)

const connectRetries = 10

// GetBrokers returns a list of Kafka brokers from the environment variable KAFKA_BROKER_ADDR.
func GetBrokers() []string {
	addr, _ := common.GetEnv("KAFKA_BROKER_ADDR", "localhost:9092")
	// Split on comma to allow for multiple brokers
	return strings.Split(addr, ",")
}

// NewSinglePartitionProducer builds a SyncProducer whose messages are all
// manually routed to partition 0. matchcore serializes one instrument
// through one engine (spec.md §5, single-writer discipline); pinning every
// message for a topic to the same partition is what gives a downstream
// consumer group the byte-order guarantee the engine itself relies on.
func NewSinglePartitionProducer() (sarama.SyncProducer, error) {
	brokers := GetBrokers()

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Partitioner = sarama.NewManualPartitioner

	var prod sarama.SyncProducer
	var err error
	for i := 0; i < connectRetries; i++ {
		prod, err = sarama.NewSyncProducer(brokers, config)
		if err == nil {
			return prod, nil
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("failed to start producer after retries: %w", err)
}

// NewConsumerGroup creates a Consumer Group with a retry mechanism and reliable offsets.
func NewConsumerGroup(groupID string) (sarama.ConsumerGroup, error) {
	brokers := GetBrokers()

	config := sarama.NewConfig()
	// The consumer returns errors to the Errors() channel.
	// Has to be handled, otherwise deadlocks may occur.
	config.Consumer.Return.Errors = true
	// OffsetOldest ensures we process messages sent while the consumer was down.
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	// For k8s efficiency, reduces partition movement.
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategySticky()

	var cg sarama.ConsumerGroup
	var err error

	for i := 0; i < connectRetries; i++ {
		cg, err = sarama.NewConsumerGroup(brokers, groupID, config)
		if err == nil {
			return cg, nil
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("failed to start consumer group after retries: %w", err)
}
