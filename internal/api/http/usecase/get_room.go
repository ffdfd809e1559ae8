package httpUsecase

import (
	"context"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GetRoomUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID) (*domain.Room, int, error)
}

type getRoomUseCase struct {
	repository RoomRepository
}

func NewGetRoomUseCase(repository RoomRepository) GetRoomUseCase {
	return &getRoomUseCase{repository: repository}
}

func (u *getRoomUseCase) Execute(ctx context.Context, roomID uuid.UUID) (*domain.Room, int, error) {
	room, err := u.repository.GetRoom(ctx, roomID)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return room, fiber.StatusOK, nil
}
