package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Schema creates the memes and bids tables. Bids reference memes and are never updated.
const Schema = `
CREATE TABLE IF NOT EXISTS memes (
    id            TEXT PRIMARY KEY,
    title         TEXT NOT NULL,
    image_url     TEXT NOT NULL,
    tags          TEXT[] NOT NULL DEFAULT '{}',
    upvotes       INTEGER NOT NULL DEFAULT 0 CHECK (upvotes >= 0),
    downvotes     INTEGER NOT NULL DEFAULT 0 CHECK (downvotes >= 0),
    owner_id      TEXT NOT NULL,
    owner_name    TEXT NOT NULL,
    price         INTEGER NOT NULL CHECK (price >= 1),
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    ai_caption    TEXT,
    vibe_analysis TEXT,
    version       BIGINT NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_memes_created_at ON memes (created_at DESC);

CREATE TABLE IF NOT EXISTS bids (
    id         TEXT PRIMARY KEY,
    meme_id    TEXT NOT NULL REFERENCES memes(id),
    user_id    TEXT NOT NULL,
    user_name  TEXT NOT NULL,
    amount     INTEGER NOT NULL CHECK (amount > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_bids_meme_amount ON bids (meme_id, amount DESC);
`

// InitPostgres opens a connection, checks it and applies Schema
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
