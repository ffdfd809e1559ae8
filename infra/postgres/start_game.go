package postgres

import (
	"context"
	"fmt"

	"swipe-service/domain"

	"github.com/google/uuid"
)

// StartGame moves a waiting room to active. It reports false when the room was already active.
func (r *Repository) StartGame(ctx context.Context, roomID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storageErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	status, _, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return false, err
	}

	switch status {
	case domain.RoomStatusActive:
		return false, nil
	case domain.RoomStatusMatched:
		return false, fmt.Errorf("%w: room already matched", domain.ErrConflict)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET status = 'active', updated_at = NOW() WHERE id = $1`,
		roomID,
	)
	if err != nil {
		return false, storageErr("failed to start game", err)
	}

	if err = tx.Commit(); err != nil {
		return false, storageErr("failed to commit transaction", err)
	}
	return true, nil
}
