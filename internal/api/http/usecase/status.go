package httpUsecase

import (
	"context"
	"errors"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRoomNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotInRoom):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// publish hands an event over after the change committed. The request context may be
// gone by the time it is delivered, so it gets a detached one. Publishers must not block
// on the network; the bootstrap one queues events per room and delivers them in order.
func publish(ctx context.Context, p RoomEventPublisher, roomID uuid.UUID, msgType string, content interface{}) {
	p.PublishMessage(context.WithoutCancel(ctx), roomID, msgType, content)
}
