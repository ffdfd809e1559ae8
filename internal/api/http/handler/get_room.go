package handler

import (
	"context"

	"swipe-service/domain"
	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoomRequest struct {
	RoomID string `params:"room_id" validate:"required"`
}

type GetRoomHandler struct {
	usecase httpUsecase.GetRoomUseCase
}

func NewGetRoomHandler(usecase httpUsecase.GetRoomUseCase) *GetRoomHandler {
	return &GetRoomHandler{
		usecase: usecase,
	}
}

func (h *GetRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomRequest) (*domain.Room, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	return h.usecase.Execute(ctx, roomID)
}
