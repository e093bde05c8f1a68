package database

import (
	"context"
	"fmt"
)

// editionsSchema is the single collection this application persists:
// one row per canonical IST calendar day. The primary key on date is what
// makes concurrent publishes for the same day collapse into one row.
const editionsSchema = `
CREATE TABLE IF NOT EXISTS editions (
	date        TEXT PRIMARY KEY,
	headline    TEXT NOT NULL,
	photo_image BYTEA NOT NULL,
	photo_label TEXT NOT NULL,
	poem        JSONB NOT NULL,
	joke        JSONB NOT NULL,
	activity    JSONB NOT NULL,
	cat_fact    JSONB NOT NULL,
	dog_fact    JSONB NOT NULL,
	trivia_fact JSONB NOT NULL,
	comic       JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
)`

// Migrate creates the schema if it does not exist yet. Run once at startup,
// after Connect.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	if _, err := db.Pool.Exec(ctx, editionsSchema); err != nil {
		return fmt.Errorf("failed to create editions table: %w", err)
	}
	return nil
}
