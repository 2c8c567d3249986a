package main

import (
	"log/slog"
	"os"

	"github.com/matchcore/engine/common"
	"github.com/matchcore/engine/common/database"
	"github.com/matchcore/engine/common/kafka"
)

const (
	defaultEventsTopic = "engine-events"
	defaultGroupID     = "auditor-consumer-group"
)

func main() {
	eventsTopic, _ := common.GetEnv("EVENTS_TOPIC", defaultEventsTopic)
	groupID, _ := common.GetEnv("AUDITOR_GROUP_ID", defaultGroupID)

	slog.Info("AUDITOR: starting", "events_topic", eventsTopic)

	db, err := database.ConnectWithRetries(database.GetConfigFromEnv())
	if err != nil {
		slog.Error("AUDITOR: critical error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureOrderEventsTable(db); err != nil {
		slog.Error("AUDITOR: critical error ensuring order_events table", "error", err)
		os.Exit(1)
	}

	handler := &auditHandler{db: db}

	if err := kafka.RunConsumerGroup(groupID, []string{eventsTopic}, handler); err != nil {
		slog.Error("AUDITOR: error running consumer group", "error", err)
		os.Exit(1)
	}
}
