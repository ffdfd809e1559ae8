package httpUsecase

import (
	"context"
	"fmt"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitSwipeUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID, sessionID string, itemID int64, direction domain.Direction) (*domain.SwipeResult, int, error)
}

type submitSwipeUseCase struct {
	repository RoomRepository
	publisher  RoomEventPublisher
}

func NewSubmitSwipeUseCase(repository RoomRepository, publisher RoomEventPublisher) SubmitSwipeUseCase {
	return &submitSwipeUseCase{
		repository: repository,
		publisher:  publisher,
	}
}

func (u *submitSwipeUseCase) Execute(ctx context.Context, roomID uuid.UUID, sessionID string, itemID int64, direction domain.Direction) (*domain.SwipeResult, int, error) {
	if !direction.Valid() {
		return nil, fiber.StatusBadRequest, fmt.Errorf("%w: unknown direction %q", domain.ErrInvalidInput, direction)
	}
	if itemID <= 0 {
		return nil, fiber.StatusBadRequest, fmt.Errorf("%w: item id must be positive", domain.ErrInvalidInput)
	}

	result, err := u.repository.SubmitSwipe(ctx, roomID, sessionID, itemID, direction)
	if err != nil {
		return nil, statusFromError(err), err
	}

	// match_found goes out before room_matched
	if result.Match != nil {
		match := *result.Match
		publish(ctx, u.publisher, roomID, domain.EventMatchFound, &match)
	}
	if result.RoomMatched {
		publish(ctx, u.publisher, roomID, domain.EventRoomMatched, map[string]int64{"item_id": itemID})
	}
	return &result, fiber.StatusCreated, nil
}
