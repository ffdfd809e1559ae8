package redis

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"swipe-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomChannel(t *testing.T) {
	id := uuid.MustParse("5f0b8a2e-4c1d-4b7a-9a51-0f3c2d1e7b11")
	assert.Equal(t, "room:5f0b8a2e-4c1d-4b7a-9a51-0f3c2d1e7b11", RoomChannel(id))
}

func TestRedisManager_PublishMessage(t *testing.T) {
	addr := os.Getenv("SWIPE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SWIPE_TEST_REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rm, err := NewRedisManager(ctx, addr, "", 0)
	require.NoError(t, err)
	defer rm.Close()

	roomID := uuid.New()
	sub := rm.GetRedisClient().Subscribe(ctx, RoomChannel(roomID))
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	rm.PublishMessage(ctx, roomID, domain.EventGameStarted, map[string]string{"status": "active"})

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var event domain.RoomEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
	assert.Equal(t, domain.EventGameStarted, event.Type)
	assert.Equal(t, roomID, event.RoomID)
}
