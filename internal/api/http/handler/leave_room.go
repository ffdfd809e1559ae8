package handler

import (
	"context"

	"swipe-service/domain"
	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveRoomRequest struct {
	RoomID    string `params:"room_id" validate:"required"`
	SessionID string `reqHeader:"X-Session-ID" validate:"required,max=128"`
}

type LeaveRoomHandler struct {
	usecase httpUsecase.LeaveRoomUseCase
}

func NewLeaveRoomHandler(usecase httpUsecase.LeaveRoomUseCase) *LeaveRoomHandler {
	return &LeaveRoomHandler{
		usecase: usecase,
	}
}

func (h *LeaveRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *LeaveRoomRequest) (*domain.LeaveRoomResult, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	return h.usecase.Execute(ctx, roomID, req.SessionID)
}
