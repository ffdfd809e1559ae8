package handler

import (
	"context"

	"swipe-service/domain"
	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListMembersRequest struct {
	RoomID string `params:"room_id" validate:"required"`
}

type ListMembersResponse struct {
	Members []domain.Member `json:"members"`
}

type ListMembersHandler struct {
	usecase httpUsecase.ListMembersUseCase
}

func NewListMembersHandler(usecase httpUsecase.ListMembersUseCase) *ListMembersHandler {
	return &ListMembersHandler{
		usecase: usecase,
	}
}

func (h *ListMembersHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListMembersRequest) (*ListMembersResponse, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	members, status, err := h.usecase.Execute(ctx, roomID)
	if err != nil {
		return nil, status, err
	}
	return &ListMembersResponse{Members: members}, status, nil
}
