package httpUsecase

import (
	"context"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ListMatchesUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID) ([]domain.Match, int, error)
}

type listMatchesUseCase struct {
	repository RoomRepository
}

func NewListMatchesUseCase(repository RoomRepository) ListMatchesUseCase {
	return &listMatchesUseCase{repository: repository}
}

// Execute returns the room's matches oldest first; in "first" mode the head is the match that ended the game.
func (u *listMatchesUseCase) Execute(ctx context.Context, roomID uuid.UUID) ([]domain.Match, int, error) {
	matches, err := u.repository.ListMatches(ctx, roomID)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return matches, fiber.StatusOK, nil
}
