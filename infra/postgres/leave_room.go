package postgres

import (
	"context"
	"errors"

	"swipe-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeaveRoom removes the member and its votes. The last member out deletes the room,
// and the foreign keys cascade to the remaining swipes and matches.
func (r *Repository) LeaveRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (domain.LeaveRoomResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.LeaveRoomResult{}, storageErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, _, err = lockRoom(ctx, tx, roomID); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return domain.LeaveRoomResult{}, nil
		}
		return domain.LeaveRoomResult{}, err
	}

	// swipes go with the member through ON DELETE CASCADE on swipes.user_id
	res, err := tx.ExecContext(ctx,
		`DELETE FROM room_members WHERE room_id = $1 AND session_id = $2`,
		roomID, sessionID,
	)
	if err != nil {
		return domain.LeaveRoomResult{}, storageErr("failed to delete member", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return domain.LeaveRoomResult{}, storageErr("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return domain.LeaveRoomResult{}, nil
	}

	var remaining int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM room_members WHERE room_id = $1`, roomID).Scan(&remaining)
	if err != nil {
		return domain.LeaveRoomResult{}, storageErr("failed to count members", err)
	}

	result := domain.LeaveRoomResult{Left: true}
	if remaining == 0 {
		if _, err = tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, roomID); err != nil {
			return domain.LeaveRoomResult{}, storageErr("failed to delete room", err)
		}
		result.RoomDeleted = true
	}

	if err = tx.Commit(); err != nil {
		return domain.LeaveRoomResult{}, storageErr("failed to commit transaction", err)
	}

	zap.L().Debug("Member left room",
		zap.String("room_id", roomID.String()),
		zap.Bool("room_deleted", result.RoomDeleted),
	)
	return result, nil
}
