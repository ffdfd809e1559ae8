package wsHandler

import (
	"context"
	"fmt"

	"swipe-service/domain"
	wsUsecase "swipe-service/internal/api/ws/usecase"
	"swipe-service/internal/handler"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WebSocketRoomHandler streams a room's events to one of its members.
type WebSocketRoomHandler struct {
	usecase wsUsecase.RoomConnectUseCase
}

type WebSocketRoomRequest struct{}

func NewWebSocketRoomHandler(usecase wsUsecase.RoomConnectUseCase) *WebSocketRoomHandler {
	return &WebSocketRoomHandler{
		usecase: usecase,
	}
}

func (h *WebSocketRoomHandler) sendErrorAndClose(conn *websocket.Conn, msg string, code int) {
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

func (h *WebSocketRoomHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *WebSocketRoomRequest) {
	roomID, err := uuid.Parse(c.Params("room_id"))
	if err != nil {
		h.sendErrorAndClose(c, fmt.Sprintf("Failed to parse room ID: %v", err), fiber.StatusBadRequest)
		return
	}

	sessionID, _ := c.Locals(handler.SessionLocalKey).(string)
	h.usecase.Execute(c, ctx, roomID, sessionID)
}
