package httpUsecase

import (
	"context"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ListMembersUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID) ([]domain.Member, int, error)
}

type listMembersUseCase struct {
	repository RoomRepository
}

func NewListMembersUseCase(repository RoomRepository) ListMembersUseCase {
	return &listMembersUseCase{repository: repository}
}

func (u *listMembersUseCase) Execute(ctx context.Context, roomID uuid.UUID) ([]domain.Member, int, error) {
	members, err := u.repository.ListMembers(ctx, roomID)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return members, fiber.StatusOK, nil
}
