package httpUsecase

import (
	"context"
	"time"

	"swipe-service/domain"

	"github.com/google/uuid"
)

// RoomRepository is implemented by infra/postgres and infra/memory.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room domain.Room, creatorName string) (domain.CreateRoomResult, error)
	JoinRoom(ctx context.Context, code, sessionID, name string) (domain.JoinRoomResult, error)
	StartGame(ctx context.Context, roomID uuid.UUID) (bool, error)
	LeaveRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (domain.LeaveRoomResult, error)
	SubmitSwipe(ctx context.Context, roomID uuid.UUID, sessionID string, itemID int64, direction domain.Direction) (domain.SwipeResult, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	ListMembers(ctx context.Context, roomID uuid.UUID) ([]domain.Member, error)
	ListMatches(ctx context.Context, roomID uuid.UUID) ([]domain.Match, error)
	ListUserSwipes(ctx context.Context, roomID uuid.UUID, sessionID string) ([]int64, error)
	DeleteStaleRooms(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

type RoomEventPublisher interface {
	PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{})
}
