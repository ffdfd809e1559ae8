package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swipe-service/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (r *Repository) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	query := `
		SELECT id, code, status, creator_id, media_type, genre_ids, region, provider_ids,
			vote_limit, mode, random_seed, server_config, created_at, updated_at
		FROM rooms WHERE id = $1`

	var (
		room         domain.Room
		region       sql.NullString
		serverConfig sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, roomID).Scan(
		&room.ID, &room.Code, &room.Status, &room.CreatorID, &room.MediaType,
		pq.Array(&room.GenreIDs), &region, pq.Array(&room.ProviderIDs),
		&room.Limit, &room.Mode, &room.RandomSeed, &serverConfig,
		&room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, storageErr("failed to query room", err)
	}

	room.Region = region.String
	room.ServerConfig = serverConfig.String
	room.GenreIDs = nonNil(room.GenreIDs)
	room.ProviderIDs = nonNil(room.ProviderIDs)
	return &room, nil
}
