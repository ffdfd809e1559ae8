package wsUsecase

import (
	"context"

	"swipe-service/domain"

	"github.com/google/uuid"
)

type MembershipRepository interface {
	IsMemberRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (bool, error)
}

type Hub interface {
	Serve(client *domain.Client) error
}
