package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"swipe-service/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (r *Repository) isDuplicateKeyError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// PostgreSQL error code for unique_violation
		return pqErr.Code == "23505"
	}

	return false
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

// lockRoom takes the row lock every room writer starts with.
func lockRoom(ctx context.Context, tx *sql.Tx, roomID uuid.UUID) (domain.RoomStatus, domain.RoomMode, error) {
	var status domain.RoomStatus
	var mode domain.RoomMode
	err := tx.QueryRowContext(ctx,
		`SELECT status, mode FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	).Scan(&status, &mode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", domain.ErrRoomNotFound
		}
		return "", "", storageErr("failed to lock room", err)
	}
	return status, mode, nil
}

func touchRoom(ctx context.Context, tx *sql.Tx, roomID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `UPDATE rooms SET updated_at = NOW() WHERE id = $1`, roomID); err != nil {
		return storageErr("failed to touch room", err)
	}
	return nil
}
