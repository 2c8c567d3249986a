package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

const connectRetries = 10

// EnsureOrderEventsTable ensures the append-only audit table exists. It
// records the observer event stream (§4.5), never book state — the engine
// itself is never reconstructed from this table.
func EnsureOrderEventsTable(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS order_events (
		order_id   BIGINT NOT NULL,
		kind       CHAR(1) NOT NULL,
		sequence   BIGINT NOT NULL,
		side       SMALLINT NOT NULL,
		price      BIGINT NOT NULL,
		quantity   BIGINT NOT NULL,
		active     BOOLEAN NOT NULL,
		ts         BIGINT NOT NULL,
		recorded_at TIMESTAMP NOT NULL DEFAULT now(),
		PRIMARY KEY (order_id, kind, sequence)
	);`
	_, err := db.Exec(createTableSQL)
	if err == nil {
		slog.Info("database: table 'order_events' is ready")
	}
	return err
}

func ConnectWithRetries(cfg Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName,
	)

	var db *sql.DB
	var err error

	for i := 0; i < connectRetries; i++ {
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			slog.Info("database: successfully connected")
			return db, nil
		}

		slog.Warn("database: waiting for database...", "attempt", i+1, "error", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", connectRetries, err)
}
