package httpUsecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"swipe-service/domain"
	"swipe-service/infra/memory"
	"swipe-service/pkg/deck"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	RoomID uuid.UUID
	Type   string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{RoomID: roomID, Type: msgType})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func (p *recordingPublisher) has(msgType string) bool {
	for _, t := range p.types() {
		if t == msgType {
			return true
		}
	}
	return false
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateRoom(ctx context.Context, room domain.Room, creatorName string) (domain.CreateRoomResult, error) {
	args := m.Called(ctx, room, creatorName)
	return args.Get(0).(domain.CreateRoomResult), args.Error(1)
}

func (m *mockRepository) JoinRoom(ctx context.Context, code, sessionID, name string) (domain.JoinRoomResult, error) {
	args := m.Called(ctx, code, sessionID, name)
	return args.Get(0).(domain.JoinRoomResult), args.Error(1)
}

func (m *mockRepository) StartGame(ctx context.Context, roomID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) LeaveRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (domain.LeaveRoomResult, error) {
	args := m.Called(ctx, roomID, sessionID)
	return args.Get(0).(domain.LeaveRoomResult), args.Error(1)
}

func (m *mockRepository) SubmitSwipe(ctx context.Context, roomID uuid.UUID, sessionID string, itemID int64, direction domain.Direction) (domain.SwipeResult, error) {
	args := m.Called(ctx, roomID, sessionID, itemID, direction)
	return args.Get(0).(domain.SwipeResult), args.Error(1)
}

func (m *mockRepository) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

func (m *mockRepository) ListMembers(ctx context.Context, roomID uuid.UUID) ([]domain.Member, error) {
	args := m.Called(ctx, roomID)
	members, _ := args.Get(0).([]domain.Member)
	return members, args.Error(1)
}

func (m *mockRepository) ListMatches(ctx context.Context, roomID uuid.UUID) ([]domain.Match, error) {
	args := m.Called(ctx, roomID)
	matches, _ := args.Get(0).([]domain.Match)
	return matches, args.Error(1)
}

func (m *mockRepository) ListUserSwipes(ctx context.Context, roomID uuid.UUID, sessionID string) ([]int64, error) {
	args := m.Called(ctx, roomID, sessionID)
	items, _ := args.Get(0).([]int64)
	return items, args.Error(1)
}

func (m *mockRepository) DeleteStaleRooms(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	args := m.Called(ctx, cutoff)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

type roomFixture struct {
	store     *memory.Store
	publisher *recordingPublisher
	create    CreateRoomUseCase
	join      JoinRoomUseCase
	start     StartGameUseCase
	leave     LeaveRoomUseCase
	swipe     SubmitSwipeUseCase
	room      GetRoomUseCase
	members   ListMembersUseCase
	matches   ListMatchesUseCase
	seen      ListUserSwipesUseCase
	deck      BuildDeckUseCase
}

func newFixture() *roomFixture {
	store := memory.NewStore()
	pub := &recordingPublisher{}
	return &roomFixture{
		store:     store,
		publisher: pub,
		create:    NewCreateRoomUseCase(store, pub, 5),
		join:      NewJoinRoomUseCase(store, pub),
		start:     NewStartGameUseCase(store, pub),
		leave:     NewLeaveRoomUseCase(store, pub),
		swipe:     NewSubmitSwipeUseCase(store, pub),
		room:      NewGetRoomUseCase(store),
		members:   NewListMembersUseCase(store),
		matches:   NewListMatchesUseCase(store),
		seen:      NewListUserSwipesUseCase(store),
		deck:      NewBuildDeckUseCase(store),
	}
}

func (f *roomFixture) createRoom(t *testing.T, mode domain.RoomMode) *domain.CreateRoomResult {
	t.Helper()
	res, status, err := f.create.Execute(context.Background(), "s1", "alice", domain.RoomConfig{
		MediaType: domain.MediaTypeMovie,
		GenreIDs:  []int64{28},
		Mode:      mode,
	})
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, status)
	return res
}

func TestCreateRoom(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, "")

	assert.Len(t, res.Code, 4)
	assert.GreaterOrEqual(t, res.Code, "1000")
	assert.LessOrEqual(t, res.Code, "9999")

	room, status, err := f.room.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.RoomStatusWaiting, room.Status)
	assert.Equal(t, domain.RoomModeFirst, room.Mode)
	assert.Equal(t, "s1", room.CreatorID)
	assert.GreaterOrEqual(t, room.RandomSeed, 0.0)
	assert.Less(t, room.RandomSeed, 1.0)

	assert.Eventually(t, func() bool { return f.publisher.has(domain.EventRoomCreated) }, time.Second, 10*time.Millisecond)
}

func TestCreateRoom_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := []struct {
		name      string
		sessionID string
		player    string
		config    domain.RoomConfig
	}{
		{"missing session", "", "alice", domain.RoomConfig{MediaType: domain.MediaTypeMovie}},
		{"missing name", "s1", "", domain.RoomConfig{MediaType: domain.MediaTypeMovie}},
		{"bad media type", "s1", "alice", domain.RoomConfig{MediaType: "book"}},
		{"bad mode", "s1", "alice", domain.RoomConfig{MediaType: domain.MediaTypeTV, Mode: "some"}},
		{"negative limit", "s1", "alice", domain.RoomConfig{MediaType: domain.MediaTypeTV, Limit: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, status, err := f.create.Execute(ctx, tc.sessionID, tc.player, tc.config)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}
}

func TestCreateRoom_RetriesCodeCollision(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateRoomUseCase(store, &recordingPublisher{}, 3).(*createRoomUseCase)

	codes := []string{"1111", "1111", "2222"}
	uc.newCode = func() string {
		code := codes[0]
		codes = codes[1:]
		return code
	}

	cfg := domain.RoomConfig{MediaType: domain.MediaTypeMovie}
	first, _, err := uc.Execute(context.Background(), "s1", "alice", cfg)
	require.NoError(t, err)
	assert.Equal(t, "1111", first.Code)

	second, _, err := uc.Execute(context.Background(), "s2", "bob", cfg)
	require.NoError(t, err)
	assert.Equal(t, "2222", second.Code)
}

func TestCreateRoom_CodeSpaceExhausted(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateRoomUseCase(store, &recordingPublisher{}, 2).(*createRoomUseCase)
	uc.newCode = func() string { return "4242" }

	cfg := domain.RoomConfig{MediaType: domain.MediaTypeMovie}
	_, _, err := uc.Execute(context.Background(), "s1", "alice", cfg)
	require.NoError(t, err)

	_, status, err := uc.Execute(context.Background(), "s2", "bob", cfg)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestJoinRoom(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)

	joined, status, err := f.join.Execute(ctx, res.Code, "s2", "bob")
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, res.RoomID, joined.RoomID)

	again, _, err := f.join.Execute(ctx, res.Code, "s2", "bob")
	require.NoError(t, err)
	assert.Equal(t, joined.UserID, again.UserID)

	members, _, err := f.members.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	_, status, err = f.join.Execute(ctx, "0001", "s3", "carol")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Equal(t, fiber.StatusNotFound, status)

	assert.Eventually(t, func() bool { return f.publisher.has(domain.EventPlayerJoined) }, time.Second, 10*time.Millisecond)
}

func TestStartGame(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)

	status, err := f.start.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)

	room, _, err := f.room.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusActive, room.Status)

	status, err = f.start.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)

	status, err = f.start.Execute(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Equal(t, fiber.StatusNotFound, status)

	assert.Eventually(t, func() bool { return f.publisher.has(domain.EventGameStarted) }, time.Second, 10*time.Millisecond)
}

func TestScenario_FirstModeTwoMembers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)
	_, _, err := f.join.Execute(ctx, res.Code, "s2", "bob")
	require.NoError(t, err)
	_, err = f.start.Execute(ctx, res.RoomID)
	require.NoError(t, err)

	r, status, err := f.swipe.Execute(ctx, res.RoomID, "s1", 42, domain.DirectionRight)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Nil(t, r.Match)

	r, _, err = f.swipe.Execute(ctx, res.RoomID, "s2", 42, domain.DirectionRight)
	require.NoError(t, err)
	require.NotNil(t, r.Match)
	assert.True(t, r.RoomMatched)

	room, _, err := f.room.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusMatched, room.Status)

	matches, _, err := f.matches.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(42), matches[0].ItemID)

	assert.Equal(t, []string{
		domain.EventRoomCreated,
		domain.EventPlayerJoined,
		domain.EventGameStarted,
		domain.EventMatchFound,
		domain.EventRoomMatched,
	}, f.publisher.types())

	status, err = f.start.Execute(ctx, res.RoomID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestScenario_AllModeKeepsPlaying(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeAll)
	_, _, err := f.join.Execute(ctx, res.Code, "s2", "bob")
	require.NoError(t, err)
	_, err = f.start.Execute(ctx, res.RoomID)
	require.NoError(t, err)

	for _, sid := range []string{"s1", "s2"} {
		_, _, err = f.swipe.Execute(ctx, res.RoomID, sid, 42, domain.DirectionRight)
		require.NoError(t, err)
	}

	room, _, err := f.room.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusActive, room.Status)

	matches, _, err := f.matches.Execute(ctx, res.RoomID)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestScenario_LeaverNoLongerBlocksMatch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)
	_, _, err := f.join.Execute(ctx, res.Code, "s2", "bob")
	require.NoError(t, err)
	_, _, err = f.join.Execute(ctx, res.Code, "s3", "carol")
	require.NoError(t, err)

	r, _, err := f.swipe.Execute(ctx, res.RoomID, "s1", 7, domain.DirectionRight)
	require.NoError(t, err)
	assert.Nil(t, r.Match)
	r, _, err = f.swipe.Execute(ctx, res.RoomID, "s2", 7, domain.DirectionSuper)
	require.NoError(t, err)
	assert.Nil(t, r.Match)

	left, _, err := f.leave.Execute(ctx, res.RoomID, "s3")
	require.NoError(t, err)
	assert.True(t, left.Left)
	assert.False(t, left.RoomDeleted)

	// the next positive vote re-evaluates against two members
	r, _, err = f.swipe.Execute(ctx, res.RoomID, "s1", 7, domain.DirectionRight)
	require.NoError(t, err)
	require.NotNil(t, r.Match)
	assert.True(t, r.RoomMatched)
}

func TestLeaveRoom_LastMemberTearsDown(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeAll)
	_, _, err := f.join.Execute(ctx, res.Code, "s2", "bob")
	require.NoError(t, err)
	for _, sid := range []string{"s1", "s2"} {
		_, _, err = f.swipe.Execute(ctx, res.RoomID, sid, 99, domain.DirectionRight)
		require.NoError(t, err)
	}

	_, _, err = f.leave.Execute(ctx, res.RoomID, "s1")
	require.NoError(t, err)
	left, status, err := f.leave.Execute(ctx, res.RoomID, "s2")
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, left.RoomDeleted)

	_, status, err = f.room.Execute(ctx, res.RoomID)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Equal(t, fiber.StatusNotFound, status)

	_, _, err = f.matches.Execute(ctx, res.RoomID)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	// leaving a room that is gone is a no-op
	left, _, err = f.leave.Execute(ctx, res.RoomID, "s2")
	require.NoError(t, err)
	assert.False(t, left.Left)

	assert.Eventually(t, func() bool { return f.publisher.has(domain.EventRoomDeleted) }, time.Second, 10*time.Millisecond)
}

func TestSubmitSwipe_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)

	_, status, err := f.swipe.Execute(ctx, res.RoomID, "s1", 1, "up")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, status, err = f.swipe.Execute(ctx, res.RoomID, "s1", 0, domain.DirectionLeft)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, status, err = f.swipe.Execute(ctx, res.RoomID, "intruder", 1, domain.DirectionLeft)
	assert.ErrorIs(t, err, domain.ErrUserNotInRoom)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestSubmitSwipe_ConcurrentVotesMatchOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)

	sessions := []string{"s1"}
	for i := range 15 {
		sid := fmt.Sprintf("member-%d", i)
		_, _, err := f.join.Execute(ctx, res.Code, sid, sid)
		require.NoError(t, err)
		sessions = append(sessions, sid)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		matches int
	)
	for _, sid := range sessions {
		wg.Add(1)
		go func(sid string) {
			defer wg.Done()
			r, _, err := f.swipe.Execute(ctx, res.RoomID, sid, 314, domain.DirectionSuper)
			if !assert.NoError(t, err) {
				return
			}
			if r.Match != nil {
				mu.Lock()
				matches++
				mu.Unlock()
			}
		}(sid)
	}
	wg.Wait()

	assert.Equal(t, 1, matches)
}

func TestListUserSwipes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)

	for _, item := range []int64{5, 3, 5} {
		_, _, err := f.swipe.Execute(ctx, res.RoomID, "s1", item, domain.DirectionLeft)
		require.NoError(t, err)
	}

	items, status, err := f.seen.Execute(ctx, res.RoomID, "s1")
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.ElementsMatch(t, []int64{3, 5}, items)

	items, _, err = f.seen.Execute(ctx, res.RoomID, "stranger")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBuildDeck(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)

	room, _, err := f.room.Execute(ctx, res.RoomID)
	require.NoError(t, err)

	ids := []int64{10, 20, 30, 40, 50, 60}
	got, status, err := f.deck.Execute(ctx, res.RoomID, ids)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, room.DeckSeed(), got.Seed)
	assert.Equal(t, deck.Shuffle(ids, room.DeckSeed()), got.Items)
	assert.ElementsMatch(t, ids, got.Items)

	again, _, err := f.deck.Execute(ctx, res.RoomID, ids)
	require.NoError(t, err)
	assert.Equal(t, got.Items, again.Items)

	empty, _, err := f.deck.Execute(ctx, res.RoomID, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{}, empty.Items)

	_, status, err = f.deck.Execute(ctx, res.RoomID, make([]int64, MaxDeckSize+1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, status, err = f.deck.Execute(ctx, uuid.New(), ids)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestBuildDeck_RepeatedIDsDealtOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := f.createRoom(t, domain.RoomModeFirst)

	room, _, err := f.room.Execute(ctx, res.RoomID)
	require.NoError(t, err)

	got, status, err := f.deck.Execute(ctx, res.RoomID, []int64{10, 20, 10, 30, 20, 10})
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, deck.Shuffle([]int64{10, 20, 30}, room.DeckSeed()), got.Items)
}

func TestReapRooms(t *testing.T) {
	repo := new(mockRepository)
	pub := &recordingPublisher{}
	uc := NewReapRoomsUseCase(repo, pub, time.Hour).(*reapRoomsUseCase)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	stale := []uuid.UUID{uuid.New(), uuid.New()}
	repo.On("DeleteStaleRooms", mock.Anything, now.Add(-time.Hour)).Return(stale, nil).Once()

	deleted, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stale, deleted)
	repo.AssertExpectations(t)

	assert.Eventually(t, func() bool { return len(pub.types()) == 2 }, time.Second, 10*time.Millisecond)
}

func TestStorageErrorsMapToInternal(t *testing.T) {
	repo := new(mockRepository)
	pub := &recordingPublisher{}
	roomID := uuid.New()
	boom := fmt.Errorf("%w: connection reset", domain.ErrStorage)

	repo.On("StartGame", mock.Anything, roomID).Return(false, boom)
	repo.On("GetRoom", mock.Anything, roomID).Return(nil, boom)
	repo.On("SubmitSwipe", mock.Anything, roomID, "s1", int64(1), domain.DirectionRight).Return(domain.SwipeResult{}, boom)

	status, err := NewStartGameUseCase(repo, pub).Execute(context.Background(), roomID)
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.Equal(t, fiber.StatusInternalServerError, status)

	_, status, err = NewGetRoomUseCase(repo).Execute(context.Background(), roomID)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, fiber.StatusInternalServerError, status)

	_, status, err = NewSubmitSwipeUseCase(repo, pub).Execute(context.Background(), roomID, "s1", 1, domain.DirectionRight)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, fiber.StatusInternalServerError, status)

	assert.Empty(t, pub.types())
	repo.AssertExpectations(t)
}
