package handler

import (
	"context"

	"swipe-service/domain"
	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct {
	SessionID    string  `reqHeader:"X-Session-ID" validate:"required,max=128"`
	Name         string  `json:"name" validate:"required,min=1,max=50"`
	MediaType    string  `json:"media_type" validate:"required,oneof=movie tv"`
	GenreIDs     []int64 `json:"genre_ids" validate:"max=50,dive,gt=0"`
	Region       string  `json:"region" validate:"omitempty,iso3166_1_alpha2"`
	ProviderIDs  []int64 `json:"provider_ids" validate:"max=50,dive,gt=0"`
	Limit        int     `json:"limit" validate:"gte=0"`
	Mode         string  `json:"mode" validate:"omitempty,oneof=first all"`
	ServerConfig string  `json:"server_config" validate:"max=65536"`
}

type CreateRoomResponse struct {
	RoomID string `json:"room_id"`
	Code   string `json:"code"`
	UserID string `json:"user_id"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{
		usecase: usecase,
	}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	config := domain.RoomConfig{
		MediaType:    domain.MediaType(req.MediaType),
		GenreIDs:     req.GenreIDs,
		Region:       req.Region,
		ProviderIDs:  req.ProviderIDs,
		Limit:        req.Limit,
		Mode:         domain.RoomMode(req.Mode),
		ServerConfig: req.ServerConfig,
	}

	result, status, err := h.usecase.Execute(ctx, req.SessionID, req.Name, config)
	if err != nil {
		return nil, status, err
	}

	return &CreateRoomResponse{
		RoomID: result.RoomID.String(),
		Code:   result.Code,
		UserID: result.UserID.String(),
	}, status, nil
}
