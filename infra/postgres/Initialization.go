package postgres

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	createRoomsTable = `
		CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY,
			code VARCHAR(4) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'waiting', -- 'waiting', 'active', 'matched'
			creator_id TEXT NOT NULL,
			media_type VARCHAR(10) NOT NULL,
			genre_ids BIGINT[] NOT NULL DEFAULT '{}',
			region VARCHAR(2),
			provider_ids BIGINT[] NOT NULL DEFAULT '{}',
			vote_limit INT NOT NULL DEFAULT 0,
			mode VARCHAR(10) NOT NULL DEFAULT 'first',
			random_seed DOUBLE PRECISION NOT NULL,
			server_config TEXT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	createRoomMembersTable = `
		CREATE TABLE IF NOT EXISTS room_members (
			id UUID PRIMARY KEY,
			room_id UUID REFERENCES rooms(id) ON DELETE CASCADE NOT NULL,
			session_id TEXT NOT NULL,
			name VARCHAR(50) NOT NULL,
			joined_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(room_id, session_id)
		);`

	createSwipesTable = `
		CREATE TABLE IF NOT EXISTS swipes (
			id UUID PRIMARY KEY,
			room_id UUID REFERENCES rooms(id) ON DELETE CASCADE NOT NULL,
			user_id UUID REFERENCES room_members(id) ON DELETE CASCADE NOT NULL,
			item_id BIGINT NOT NULL,
			direction VARCHAR(5) NOT NULL, -- 'left', 'right', 'super'
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(room_id, user_id, item_id)
		);`

	createMatchesTable = `
		CREATE TABLE IF NOT EXISTS matches (
			id UUID PRIMARY KEY,
			room_id UUID REFERENCES rooms(id) ON DELETE CASCADE NOT NULL,
			item_id BIGINT NOT NULL,
			matched_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(room_id, item_id)
		);`

	createIndexes = `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_code ON rooms(code);
		CREATE INDEX IF NOT EXISTS idx_rooms_updated_at ON rooms(updated_at);
		CREATE INDEX IF NOT EXISTS idx_swipes_room_item ON swipes(room_id, item_id);
		CREATE INDEX IF NOT EXISTS idx_matches_room_matched_at ON matches(room_id, matched_at);`
)

// initDB creates the tables and indexes if they are missing.
func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"rooms", createRoomsTable},
		{"room_members", createRoomMembersTable},
		{"swipes", createSwipesTable},
		{"matches", createMatchesTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
		zap.L().Debug("Table ready", zap.String("table", table.name))
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	zap.L().Info("Database initialized successfully with all tables and indexes")
	return nil
}
