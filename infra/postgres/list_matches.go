package postgres

import (
	"context"

	"swipe-service/domain"

	"github.com/google/uuid"
)

func (r *Repository) ListMatches(ctx context.Context, roomID uuid.UUID) ([]domain.Match, error) {
	if err := r.roomExists(ctx, roomID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, room_id, item_id, matched_at
		FROM matches
		WHERE room_id = $1
		ORDER BY matched_at, item_id`,
		roomID,
	)
	if err != nil {
		return nil, storageErr("failed to query matches", err)
	}
	defer rows.Close()

	matches := make([]domain.Match, 0)
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(&m.ID, &m.RoomID, &m.ItemID, &m.MatchedAt); err != nil {
			return nil, storageErr("failed to scan match", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to iterate matches", err)
	}
	return matches, nil
}
