package wsUsecase

import (
	"context"
	"errors"
	"testing"

	"swipe-service/domain"
	"swipe-service/infra/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMembership struct {
	mock.Mock
}

func (m *mockMembership) IsMemberRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (bool, error) {
	args := m.Called(ctx, roomID, sessionID)
	return args.Bool(0), args.Error(1)
}

func TestAuthorize(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	res, err := store.CreateRoom(ctx, domain.Room{
		Code:       "1234",
		CreatorID:  "s1",
		RoomConfig: domain.RoomConfig{MediaType: domain.MediaTypeMovie, Mode: domain.RoomModeFirst},
	}, "alice")
	require.NoError(t, err)

	uc := NewRoomConnectUseCase(nil, store)

	code, err := uc.Authorize(ctx, res.RoomID, "s1")
	require.NoError(t, err)
	assert.Zero(t, code)

	code, err = uc.Authorize(ctx, res.RoomID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, err = uc.Authorize(ctx, res.RoomID, "s2")
	assert.ErrorIs(t, err, ErrNotMember)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, err = uc.Authorize(ctx, uuid.New(), "s1")
	assert.ErrorIs(t, err, ErrNotMember)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestAuthorize_StorageError(t *testing.T) {
	repo := new(mockMembership)
	roomID := uuid.New()
	repo.On("IsMemberRoom", mock.Anything, roomID, "s1").Return(false, errors.New("db down"))

	code, err := NewRoomConnectUseCase(nil, repo).Authorize(context.Background(), roomID, "s1")
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	repo.AssertExpectations(t)
}
