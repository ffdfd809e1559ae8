package httpUsecase

import (
	"context"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StartGameUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID) (int, error)
}

type startGameUseCase struct {
	repository RoomRepository
	publisher  RoomEventPublisher
}

func NewStartGameUseCase(repository RoomRepository, publisher RoomEventPublisher) StartGameUseCase {
	return &startGameUseCase{
		repository: repository,
		publisher:  publisher,
	}
}

func (u *startGameUseCase) Execute(ctx context.Context, roomID uuid.UUID) (int, error) {
	started, err := u.repository.StartGame(ctx, roomID)
	if err != nil {
		return statusFromError(err), err
	}

	if started {
		publish(ctx, u.publisher, roomID, domain.EventGameStarted, map[string]string{
			"status": string(domain.RoomStatusActive),
		})
	}
	return fiber.StatusOK, nil
}
