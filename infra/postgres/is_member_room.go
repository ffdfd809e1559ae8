package postgres

import (
	"context"

	"github.com/google/uuid"
)

// IsMemberRoom checks if a session is a member of a specific room.
func (r *Repository) IsMemberRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (bool, error) {
	var isMember bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM room_members WHERE room_id = $1 AND session_id = $2)`,
		roomID, sessionID,
	).Scan(&isMember)
	if err != nil {
		return false, storageErr("failed to check membership", err)
	}
	return isMember, nil
}
