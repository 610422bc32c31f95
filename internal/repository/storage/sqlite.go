package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStorage{Connection: conn}, nil
}

// Init creates the schema. The games table caches the tail state of the
// append-only game_actions log; game_seats carries the turn order assigned
// once a game fills.
func (that *SQLiteStorage) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			user_type TEXT NOT NULL DEFAULT 'standard',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			board_rows INTEGER NOT NULL,
			board_columns INTEGER NOT NULL,
			player_count INTEGER NOT NULL,
			open_seats INTEGER NOT NULL,
			password TEXT NOT NULL DEFAULT '',
			is_mutual_follows_only INTEGER NOT NULL DEFAULT 0,
			complete_turns_count INTEGER NOT NULL DEFAULT 0,
			is_complete INTEGER NOT NULL DEFAULT 0,
			next_turn TEXT NOT NULL DEFAULT '',
			winner TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL REFERENCES players(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS game_seats (
			game_id TEXT NOT NULL REFERENCES games(id),
			player_id TEXT NOT NULL REFERENCES players(id),
			turn_order INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (game_id, player_id)
		)`,
		`CREATE TABLE IF NOT EXISTS game_actions (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL REFERENCES games(id),
			player_id TEXT NOT NULL REFERENCES players(id),
			turn_number INTEGER NOT NULL,
			action_number INTEGER NOT NULL DEFAULT 1,
			action INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (game_id, action)
		)`,
		`CREATE TABLE IF NOT EXISTS player_followings (
			player_id TEXT NOT NULL REFERENCES players(id),
			following_id TEXT NOT NULL REFERENCES players(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player_id, following_id)
		)`,
	}

	for _, query := range queries {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
