package postgres

import (
	"context"
	"fmt"

	"swipe-service/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// CreateRoom persists a waiting room and its creator. A taken code yields domain.ErrConflict.
func (r *Repository) CreateRoom(ctx context.Context, room domain.Room, creatorName string) (domain.CreateRoomResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.CreateRoomResult{}, storageErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	roomID := uuid.New()
	roomQuery := `
		INSERT INTO rooms (id, code, status, creator_id, media_type, genre_ids, region, provider_ids,
			vote_limit, mode, random_seed, server_config)
		VALUES ($1, $2, 'waiting', $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, NULLIF($11, ''))
	`
	_, err = tx.ExecContext(ctx, roomQuery,
		roomID, room.Code, room.CreatorID, room.MediaType,
		pq.Array(nonNil(room.GenreIDs)), room.Region, pq.Array(nonNil(room.ProviderIDs)),
		room.Limit, room.Mode, room.RandomSeed, room.ServerConfig,
	)
	if err != nil {
		if r.isDuplicateKeyError(err) {
			return domain.CreateRoomResult{}, fmt.Errorf("%w: room code %s already in use", domain.ErrConflict, room.Code)
		}
		return domain.CreateRoomResult{}, storageErr("failed to create room", err)
	}

	userID := uuid.New()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO room_members (id, room_id, session_id, name) VALUES ($1, $2, $3, $4)`,
		userID, roomID, room.CreatorID, creatorName,
	)
	if err != nil {
		return domain.CreateRoomResult{}, storageErr("failed to add creator to room", err)
	}

	if err = tx.Commit(); err != nil {
		return domain.CreateRoomResult{}, storageErr("failed to commit transaction", err)
	}

	zap.L().Debug("Room created", zap.String("room_id", roomID.String()), zap.String("code", room.Code))
	return domain.CreateRoomResult{RoomID: roomID, Code: room.Code, UserID: userID}, nil
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
