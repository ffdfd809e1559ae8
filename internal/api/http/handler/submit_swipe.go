package handler

import (
	"context"

	"swipe-service/domain"
	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type SubmitSwipeRequest struct {
	RoomID    string `params:"room_id" validate:"required"`
	SessionID string `reqHeader:"X-Session-ID" validate:"required,max=128"`
	ItemID    int64  `json:"item_id" validate:"required,gt=0"`
	Direction string `json:"direction" validate:"required,oneof=left right super"`
}

type SubmitSwipeHandler struct {
	usecase httpUsecase.SubmitSwipeUseCase
}

func NewSubmitSwipeHandler(usecase httpUsecase.SubmitSwipeUseCase) *SubmitSwipeHandler {
	return &SubmitSwipeHandler{
		usecase: usecase,
	}
}

func (h *SubmitSwipeHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitSwipeRequest) (*domain.SwipeResult, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	return h.usecase.Execute(ctx, roomID, req.SessionID, req.ItemID, domain.Direction(req.Direction))
}
