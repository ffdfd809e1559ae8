package handler

import (
	"context"

	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomRequest struct {
	SessionID string `reqHeader:"X-Session-ID" validate:"required,max=128"`
	Code      string `json:"code" validate:"required,len=4,numeric"`
	Name      string `json:"name" validate:"required,min=1,max=50"`
}

type JoinRoomResponse struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{
		usecase: usecase,
	}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	result, status, err := h.usecase.Execute(ctx, req.Code, req.SessionID, req.Name)
	if err != nil {
		return nil, status, err
	}

	return &JoinRoomResponse{RoomID: result.RoomID.String(), UserID: result.UserID.String()}, status, nil
}
