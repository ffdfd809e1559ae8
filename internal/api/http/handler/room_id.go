package handler

import (
	"fmt"

	"swipe-service/domain"

	"github.com/google/uuid"
)

func parseRoomID(raw string) (uuid.UUID, error) {
	roomID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid room id", domain.ErrInvalidInput)
	}
	return roomID, nil
}
