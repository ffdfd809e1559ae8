package handler

import (
	"context"

	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type BuildDeckRequest struct {
	RoomID  string  `params:"room_id" validate:"required"`
	ItemIDs []int64 `json:"item_ids" validate:"max=1000,dive,gt=0"`
}

type BuildDeckHandler struct {
	usecase httpUsecase.BuildDeckUseCase
}

func NewBuildDeckHandler(usecase httpUsecase.BuildDeckUseCase) *BuildDeckHandler {
	return &BuildDeckHandler{
		usecase: usecase,
	}
}

func (h *BuildDeckHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *BuildDeckRequest) (*httpUsecase.DeckResult, int, error) {
	roomID, err := parseRoomID(req.RoomID)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	return h.usecase.Execute(ctx, roomID, req.ItemIDs)
}
