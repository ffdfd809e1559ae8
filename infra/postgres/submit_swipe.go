package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swipe-service/domain"

	"github.com/google/uuid"
)

// SubmitSwipe records a vote and runs match detection under the room lock.
func (r *Repository) SubmitSwipe(ctx context.Context, roomID uuid.UUID, sessionID string, itemID int64, direction domain.Direction) (domain.SwipeResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.SwipeResult{}, storageErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	status, mode, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return domain.SwipeResult{}, err
	}

	var userID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM room_members WHERE room_id = $1 AND session_id = $2`,
		roomID, sessionID,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SwipeResult{}, domain.ErrUserNotInRoom
		}
		return domain.SwipeResult{}, storageErr("failed to query member", err)
	}

	swipe := domain.Swipe{RoomID: roomID, UserID: userID, ItemID: itemID, Direction: direction}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO swipes (id, room_id, user_id, item_id, direction)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_id, user_id, item_id)
		DO UPDATE SET direction = EXCLUDED.direction, created_at = NOW()
		RETURNING id, created_at`,
		uuid.New(), roomID, userID, itemID, direction,
	).Scan(&swipe.ID, &swipe.Timestamp)
	if err != nil {
		return domain.SwipeResult{}, storageErr("failed to upsert swipe", err)
	}

	if err = touchRoom(ctx, tx, roomID); err != nil {
		return domain.SwipeResult{}, err
	}

	result := domain.SwipeResult{Swipe: swipe}
	if direction.IsPositive() {
		if err = r.detectMatch(ctx, tx, roomID, itemID, status, mode, &result); err != nil {
			return domain.SwipeResult{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.SwipeResult{}, storageErr("failed to commit transaction", err)
	}
	return result, nil
}

func (r *Repository) detectMatch(ctx context.Context, tx *sql.Tx, roomID uuid.UUID, itemID int64, status domain.RoomStatus, mode domain.RoomMode, result *domain.SwipeResult) error {
	var positive, members int
	err := tx.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM swipes
			 WHERE room_id = $1 AND item_id = $2 AND direction IN ('right', 'super')),
			(SELECT COUNT(*) FROM room_members WHERE room_id = $1)`,
		roomID, itemID,
	).Scan(&positive, &members)
	if err != nil {
		return storageErr("failed to count votes", err)
	}
	if positive != members {
		return nil
	}

	match := domain.Match{RoomID: roomID, ItemID: itemID}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO matches (id, room_id, item_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (room_id, item_id) DO NOTHING
		RETURNING id, matched_at`,
		uuid.New(), roomID, itemID,
	).Scan(&match.ID, &match.MatchedAt)
	switch {
	case err == nil:
		result.Match = &match
	case !errors.Is(err, sql.ErrNoRows):
		return storageErr("failed to insert match", err)
	}

	room := domain.Room{RoomConfig: domain.RoomConfig{Mode: mode}}
	if room.StopsAtFirstMatch() && status != domain.RoomStatusMatched {
		_, err = tx.ExecContext(ctx, `UPDATE rooms SET status = 'matched' WHERE id = $1`, roomID)
		if err != nil {
			return storageErr("failed to mark room matched", err)
		}
		result.RoomMatched = true
	}
	return nil
}
