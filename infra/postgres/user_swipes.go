package postgres

import (
	"context"

	"github.com/google/uuid"
)

// ListUserSwipes returns the item ids the session already voted on, oldest vote first.
func (r *Repository) ListUserSwipes(ctx context.Context, roomID uuid.UUID, sessionID string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.item_id
		FROM swipes s
		JOIN room_members m ON m.id = s.user_id
		WHERE s.room_id = $1 AND m.session_id = $2
		ORDER BY s.created_at, s.item_id`,
		roomID, sessionID,
	)
	if err != nil {
		return nil, storageErr("failed to query swipes", err)
	}
	defer rows.Close()

	items := make([]int64, 0)
	for rows.Next() {
		var itemID int64
		if err := rows.Scan(&itemID); err != nil {
			return nil, storageErr("failed to scan swipe", err)
		}
		items = append(items, itemID)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to iterate swipes", err)
	}
	return items, nil
}
