package httpUsecase

import (
	"context"
	"time"

	"swipe-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReapRoomsUseCase deletes rooms nobody touched within the TTL.
type ReapRoomsUseCase interface {
	Execute(ctx context.Context) ([]uuid.UUID, error)
}

type reapRoomsUseCase struct {
	repository RoomRepository
	publisher  RoomEventPublisher
	ttl        time.Duration
	now        func() time.Time
}

func NewReapRoomsUseCase(repository RoomRepository, publisher RoomEventPublisher, ttl time.Duration) ReapRoomsUseCase {
	return &reapRoomsUseCase{
		repository: repository,
		publisher:  publisher,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (u *reapRoomsUseCase) Execute(ctx context.Context) ([]uuid.UUID, error) {
	cutoff := u.now().Add(-u.ttl)
	deleted, err := u.repository.DeleteStaleRooms(ctx, cutoff)
	if err != nil {
		return deleted, err
	}

	for _, roomID := range deleted {
		publish(ctx, u.publisher, roomID, domain.EventRoomDeleted, map[string]string{"reason": "expired"})
	}
	if len(deleted) > 0 {
		zap.L().Info("Stale rooms deleted", zap.Int("count", len(deleted)), zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}
