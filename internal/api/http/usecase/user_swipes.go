package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ListUserSwipesUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID, sessionID string) ([]int64, int, error)
}

type listUserSwipesUseCase struct {
	repository RoomRepository
}

func NewListUserSwipesUseCase(repository RoomRepository) ListUserSwipesUseCase {
	return &listUserSwipesUseCase{repository: repository}
}

func (u *listUserSwipesUseCase) Execute(ctx context.Context, roomID uuid.UUID, sessionID string) ([]int64, int, error) {
	items, err := u.repository.ListUserSwipes(ctx, roomID, sessionID)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return items, fiber.StatusOK, nil
}
