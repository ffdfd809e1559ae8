package httpUsecase

import (
	"context"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID, sessionID string) (*domain.LeaveRoomResult, int, error)
}

type leaveRoomUseCase struct {
	repository RoomRepository
	publisher  RoomEventPublisher
}

func NewLeaveRoomUseCase(repository RoomRepository, publisher RoomEventPublisher) LeaveRoomUseCase {
	return &leaveRoomUseCase{
		repository: repository,
		publisher:  publisher,
	}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, roomID uuid.UUID, sessionID string) (*domain.LeaveRoomResult, int, error) {
	result, err := u.repository.LeaveRoom(ctx, roomID, sessionID)
	if err != nil {
		return nil, statusFromError(err), err
	}

	switch {
	case result.RoomDeleted:
		publish(ctx, u.publisher, roomID, domain.EventRoomDeleted, nil)
	case result.Left:
		publish(ctx, u.publisher, roomID, domain.EventPlayerLeft, nil)
	}
	return &result, fiber.StatusOK, nil
}
