package handler

import (
	"context"

	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListUserSwipesRequest struct {
	RoomID    string `params:"room_id" validate:"required"`
	SessionID string `reqHeader:"X-Session-ID" validate:"required,max=128"`
}

type ListUserSwipesResponse struct {
	ItemIDs []int64 `json:"item_ids"`
}

type ListUserSwipesHandler struct {
	usecase httpUsecase.ListUserSwipesUseCase
}

func NewListUserSwipesHandler(usecase httpUsecase.ListUserSwipesUseCase) *ListUserSwipesHandler {
	return &ListUserSwipesHandler{
		usecase: usecase,
	}
}

func (h *ListUserSwipesHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListUserSwipesRequest) (*ListUserSwipesResponse, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	items, status, err := h.usecase.Execute(ctx, roomID, req.SessionID)
	if err != nil {
		return nil, status, err
	}
	return &ListUserSwipesResponse{ItemIDs: items}, status, nil
}
