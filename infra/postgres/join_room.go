package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swipe-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JoinRoom adds the session to the room with the given code. Rejoining returns the existing member.
func (r *Repository) JoinRoom(ctx context.Context, code, sessionID, name string) (domain.JoinRoomResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.JoinRoomResult{}, storageErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var roomID uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE code = $1 FOR UPDATE`, code).Scan(&roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JoinRoomResult{}, domain.ErrRoomNotFound
		}
		return domain.JoinRoomResult{}, storageErr("failed to query room", err)
	}

	var userID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM room_members WHERE room_id = $1 AND session_id = $2`,
		roomID, sessionID,
	).Scan(&userID)
	switch {
	case err == nil:
		return domain.JoinRoomResult{RoomID: roomID, UserID: userID}, nil
	case !errors.Is(err, sql.ErrNoRows):
		return domain.JoinRoomResult{}, storageErr("failed to query member", err)
	}

	userID = uuid.New()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO room_members (id, room_id, session_id, name) VALUES ($1, $2, $3, $4)`,
		userID, roomID, sessionID, name,
	)
	if err != nil {
		return domain.JoinRoomResult{}, storageErr("failed to insert member", err)
	}

	if err = touchRoom(ctx, tx, roomID); err != nil {
		return domain.JoinRoomResult{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.JoinRoomResult{}, storageErr("failed to commit transaction", err)
	}

	zap.L().Debug("Member joined room", zap.String("room_id", roomID.String()), zap.String("user_id", userID.String()))
	return domain.JoinRoomResult{RoomID: roomID, UserID: userID}, nil
}
