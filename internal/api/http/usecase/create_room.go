package httpUsecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"swipe-service/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, sessionID, name string, config domain.RoomConfig) (*domain.CreateRoomResult, int, error)
}

type createRoomUseCase struct {
	repository   RoomRepository
	publisher    RoomEventPublisher
	codeAttempts int
	newCode      func() string
	newSeed      func() float64
}

func NewCreateRoomUseCase(repository RoomRepository, publisher RoomEventPublisher, codeAttempts int) CreateRoomUseCase {
	if codeAttempts < 1 {
		codeAttempts = 1
	}
	return &createRoomUseCase{
		repository:   repository,
		publisher:    publisher,
		codeAttempts: codeAttempts,
		newCode:      randomRoomCode,
		newSeed:      rand.Float64,
	}
}

// randomRoomCode returns a 4-digit code in 1000-9999.
func randomRoomCode() string {
	return strconv.Itoa(rand.IntN(9000) + 1000)
}

func (u *createRoomUseCase) Execute(ctx context.Context, sessionID, name string, config domain.RoomConfig) (*domain.CreateRoomResult, int, error) {
	if sessionID == "" || name == "" {
		return nil, fiber.StatusBadRequest, fmt.Errorf("%w: session id and name are required", domain.ErrInvalidInput)
	}
	if config.Mode == "" {
		config.Mode = domain.RoomModeFirst
	}
	if err := validateRoomConfig(config); err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	room := domain.Room{
		CreatorID:  sessionID,
		RandomSeed: u.newSeed(),
		RoomConfig: config,
	}

	var lastErr error
	for attempt := 1; attempt <= u.codeAttempts; attempt++ {
		room.Code = u.newCode()

		result, err := u.repository.CreateRoom(ctx, room, name)
		if err == nil {
			publish(ctx, u.publisher, result.RoomID, domain.EventRoomCreated, map[string]string{
				"code":    result.Code,
				"user_id": result.UserID.String(),
			})
			return &result, fiber.StatusCreated, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, statusFromError(err), err
		}

		zap.L().Debug("Room code collision", zap.String("code", room.Code), zap.Int("attempt", attempt))
		lastErr = err
	}

	zap.L().Warn("Room code space exhausted", zap.Int("attempts", u.codeAttempts))
	return nil, fiber.StatusConflict, fmt.Errorf("no free room code after %d attempts: %w", u.codeAttempts, lastErr)
}

func validateRoomConfig(config domain.RoomConfig) error {
	switch config.MediaType {
	case domain.MediaTypeMovie, domain.MediaTypeTV:
	default:
		return fmt.Errorf("%w: unknown media type %q", domain.ErrInvalidInput, config.MediaType)
	}

	switch config.Mode {
	case domain.RoomModeFirst, domain.RoomModeAll:
	default:
		return fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, config.Mode)
	}

	if config.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
