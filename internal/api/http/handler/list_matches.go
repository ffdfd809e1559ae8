package handler

import (
	"context"

	"swipe-service/domain"
	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListMatchesRequest struct {
	RoomID string `params:"room_id" validate:"required"`
}

type ListMatchesResponse struct {
	Matches []domain.Match `json:"matches"`
}

type ListMatchesHandler struct {
	usecase httpUsecase.ListMatchesUseCase
}

func NewListMatchesHandler(usecase httpUsecase.ListMatchesUseCase) *ListMatchesHandler {
	return &ListMatchesHandler{
		usecase: usecase,
	}
}

func (h *ListMatchesHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListMatchesRequest) (*ListMatchesResponse, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	matches, status, err := h.usecase.Execute(ctx, roomID)
	if err != nil {
		return nil, status, err
	}
	return &ListMatchesResponse{Matches: matches}, status, nil
}
