package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeleteStaleRooms removes rooms idle since before cutoff. Members, swipes and matches
// follow through the cascades.
func (r *Repository) DeleteStaleRooms(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx,
		`DELETE FROM rooms WHERE updated_at < $1 RETURNING id`,
		cutoff,
	)
	if err != nil {
		return nil, storageErr("failed to delete stale rooms", err)
	}
	defer rows.Close()

	var deleted []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("failed to scan room id", err)
		}
		deleted = append(deleted, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to iterate deleted rooms", err)
	}
	return deleted, nil
}
