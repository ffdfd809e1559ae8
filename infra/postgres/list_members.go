package postgres

import (
	"context"

	"swipe-service/domain"

	"github.com/google/uuid"
)

// ListMembers returns the members in join order. A missing room is domain.ErrRoomNotFound.
func (r *Repository) ListMembers(ctx context.Context, roomID uuid.UUID) ([]domain.Member, error) {
	if err := r.roomExists(ctx, roomID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, room_id, session_id, name, joined_at
		FROM room_members
		WHERE room_id = $1
		ORDER BY joined_at, id`,
		roomID,
	)
	if err != nil {
		return nil, storageErr("failed to query members", err)
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SessionID, &m.Name, &m.JoinedAt); err != nil {
			return nil, storageErr("failed to scan member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to iterate members", err)
	}
	return members, nil
}

func (r *Repository) roomExists(ctx context.Context, roomID uuid.UUID) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`, roomID).Scan(&exists)
	if err != nil {
		return storageErr("failed to query room", err)
	}
	if !exists {
		return domain.ErrRoomNotFound
	}
	return nil
}
