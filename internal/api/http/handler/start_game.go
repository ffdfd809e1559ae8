package handler

import (
	"context"

	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type StartGameRequest struct {
	RoomID string `params:"room_id" validate:"required"`
}

type StartGameResponse struct {
	Message string `json:"message"`
}

// StartGameHandler lets any caller start the room; host checks are left to clients.
type StartGameHandler struct {
	usecase httpUsecase.StartGameUseCase
}

func NewStartGameHandler(usecase httpUsecase.StartGameUseCase) *StartGameHandler {
	return &StartGameHandler{
		usecase: usecase,
	}
}

func (h *StartGameHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StartGameRequest) (*StartGameResponse, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	status, err := h.usecase.Execute(ctx, roomID)
	if err != nil {
		return nil, status, err
	}
	return &StartGameResponse{Message: "Game started"}, status, nil
}
