package httpUsecase

import (
	"context"
	"fmt"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, code, sessionID, name string) (*domain.JoinRoomResult, int, error)
}

type joinRoomUseCase struct {
	repository RoomRepository
	publisher  RoomEventPublisher
}

func NewJoinRoomUseCase(repository RoomRepository, publisher RoomEventPublisher) JoinRoomUseCase {
	return &joinRoomUseCase{
		repository: repository,
		publisher:  publisher,
	}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, code, sessionID, name string) (*domain.JoinRoomResult, int, error) {
	if code == "" || sessionID == "" || name == "" {
		return nil, fiber.StatusBadRequest, fmt.Errorf("%w: code, session id and name are required", domain.ErrInvalidInput)
	}

	result, err := u.repository.JoinRoom(ctx, code, sessionID, name)
	if err != nil {
		return nil, statusFromError(err), err
	}

	publish(ctx, u.publisher, result.RoomID, domain.EventPlayerJoined, map[string]string{
		"user_id": result.UserID.String(),
		"name":    name,
	})
	return &result, fiber.StatusOK, nil
}
