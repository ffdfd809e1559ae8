package httpUsecase

import (
	"context"
	"fmt"

	"swipe-service/domain"
	"swipe-service/pkg/catalog"
	"swipe-service/pkg/deck"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const MaxDeckSize = 1000

type DeckResult struct {
	Seed  int64   `json:"seed"`
	Items []int64 `json:"items"`
}

type BuildDeckUseCase interface {
	Execute(ctx context.Context, roomID uuid.UUID, itemIDs []int64) (*DeckResult, int, error)
}

type buildDeckUseCase struct {
	repository RoomRepository
}

func NewBuildDeckUseCase(repository RoomRepository) BuildDeckUseCase {
	return &buildDeckUseCase{repository: repository}
}

// Execute orders itemIDs the way every member of the room sees them. Repeated ids
// keep their first position before shuffling.
func (u *buildDeckUseCase) Execute(ctx context.Context, roomID uuid.UUID, itemIDs []int64) (*DeckResult, int, error) {
	if len(itemIDs) > MaxDeckSize {
		return nil, fiber.StatusBadRequest, fmt.Errorf("%w: at most %d items per deck", domain.ErrInvalidInput, MaxDeckSize)
	}

	room, err := u.repository.GetRoom(ctx, roomID)
	if err != nil {
		return nil, statusFromError(err), err
	}

	seed := room.DeckSeed()
	// a card shows up once per deck
	items := deck.Shuffle(catalog.UniqueIDs(itemIDs), seed)
	return &DeckResult{Seed: seed, Items: items}, fiber.StatusOK, nil
}
