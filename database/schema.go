package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         TEXT PRIMARY KEY,
	shop       TEXT NOT NULL,
	message    TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	row_count  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS snapshot_rows (
	snapshot_id         TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	position            INTEGER NOT NULL,
	item_name           TEXT NOT NULL,
	sales               REAL NOT NULL DEFAULT 0,
	stock               REAL NOT NULL DEFAULT 0,
	command             REAL NOT NULL DEFAULT 0,
	order_from_location TEXT NOT NULL DEFAULT '',
	available_qty       TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (snapshot_id, position)
);
`

// Open connects to the snapshot database and applies the schema. An
// in-memory DSN lives only as long as the process.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	// every new connection to :memory: would get its own empty database
	db.SetMaxOpenConns(1)

	if err := ApplySchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ApplySchema(db *sqlx.DB) error {
	log.Debug().Msg("applying database schema")
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
