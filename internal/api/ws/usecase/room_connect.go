package wsUsecase

import (
	"context"
	"errors"
	"fmt"

	"swipe-service/domain"
	"swipe-service/internal/api/ws/hub"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotMember = errors.New("session is not a member of this room")

type RoomConnectUseCase interface {
	// Authorize reports the close code to send when the session may not subscribe.
	Authorize(ctx context.Context, roomID uuid.UUID, sessionID string) (int, error)
	Execute(c *websocket.Conn, ctx context.Context, roomID uuid.UUID, sessionID string)
}

type roomConnectUseCase struct {
	hub        Hub
	repository MembershipRepository
}

func NewRoomConnectUseCase(hub Hub, repository MembershipRepository) RoomConnectUseCase {
	return &roomConnectUseCase{
		hub:        hub,
		repository: repository,
	}
}

func (u *roomConnectUseCase) Authorize(ctx context.Context, roomID uuid.UUID, sessionID string) (int, error) {
	if sessionID == "" {
		return fiber.StatusUnauthorized, fmt.Errorf("%w: missing session id", domain.ErrInvalidInput)
	}

	isMember, err := u.repository.IsMemberRoom(ctx, roomID, sessionID)
	if err != nil {
		return fiber.StatusInternalServerError, err
	}
	if !isMember {
		return fiber.StatusForbidden, ErrNotMember
	}
	return 0, nil
}

func (u *roomConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, roomID uuid.UUID, sessionID string) {
	if code, err := u.Authorize(ctx, roomID, sessionID); err != nil {
		sendErrorAndClose(c, err.Error(), code)
		return
	}

	client := hub.NewClient(c, roomID, sessionID)
	zap.L().Debug("Room stream connected", zap.String("room_id", roomID.String()))
	if err := u.hub.Serve(client); err != nil {
		sendErrorAndClose(c, err.Error(), fiber.StatusServiceUnavailable)
	}
}

func sendErrorAndClose(conn *websocket.Conn, msg string, code int) {
	errorMessage := domain.WebSocketErrorMessage{
		Type:    "error",
		Message: msg,
		Code:    code,
	}
	if err := conn.WriteJSON(errorMessage); err != nil {
		zap.L().Debug("Failed to send error message to client", zap.Error(err))
	}
	conn.Close()
}
