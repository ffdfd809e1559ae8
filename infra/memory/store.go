// Package memory is a process-local room store. Every room carries its own mutex and
// every mutating call holds it for the whole operation, which gives the same per-room
// serialisation the Postgres store gets from SELECT ... FOR UPDATE.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"swipe-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type swipeKey struct {
	userID uuid.UUID
	itemID int64
}

type roomState struct {
	mu      sync.Mutex
	deleted bool
	room    domain.Room
	members map[string]*domain.Member // by session id
	swipes  map[swipeKey]*domain.Swipe
	matches map[int64]*domain.Match
}

type Store struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*roomState
	codes map[string]uuid.UUID
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		rooms: make(map[uuid.UUID]*roomState),
		codes: make(map[string]uuid.UUID),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Close satisfies the repository contract; there is nothing to release.
func (s *Store) Close() error {
	return nil
}

// lockRoom returns the room with its mutex held. The caller must unlock it.
func (s *Store) lockRoom(roomID uuid.UUID) (*roomState, error) {
	s.mu.RLock()
	st, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	st.mu.Lock()
	if st.deleted {
		st.mu.Unlock()
		return nil, domain.ErrRoomNotFound
	}
	return st, nil
}

// dropRoom removes a locked room from the indexes.
func (s *Store) dropRoom(st *roomState) {
	s.mu.Lock()
	delete(s.rooms, st.room.ID)
	if s.codes[st.room.Code] == st.room.ID {
		delete(s.codes, st.room.Code)
	}
	s.mu.Unlock()

	st.deleted = true
	st.members = nil
	st.swipes = nil
	st.matches = nil
}

func (s *Store) CreateRoom(ctx context.Context, room domain.Room, creatorName string) (domain.CreateRoomResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.CreateRoomResult{}, err
	}

	now := s.now()
	room.ID = uuid.New()
	room.Code = strings.Clone(room.Code)
	room.CreatorID = strings.Clone(room.CreatorID)
	room.ServerConfig = strings.Clone(room.ServerConfig)
	room.Status = domain.RoomStatusWaiting
	room.CreatedAt = now
	room.UpdatedAt = now
	room.GenreIDs = cloneIDs(room.GenreIDs)
	room.ProviderIDs = cloneIDs(room.ProviderIDs)

	creator := &domain.Member{
		ID:        uuid.New(),
		RoomID:    room.ID,
		SessionID: room.CreatorID,
		Name:      strings.Clone(creatorName),
		JoinedAt:  now,
	}

	st := &roomState{
		room:    room,
		members: map[string]*domain.Member{creator.SessionID: creator},
		swipes:  make(map[swipeKey]*domain.Swipe),
		matches: make(map[int64]*domain.Match),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.codes[room.Code]; taken {
		return domain.CreateRoomResult{}, domain.ErrConflict
	}
	s.rooms[room.ID] = st
	s.codes[room.Code] = room.ID

	zap.L().Debug("Room created", zap.String("room_id", room.ID.String()), zap.String("code", room.Code))
	return domain.CreateRoomResult{RoomID: room.ID, Code: room.Code, UserID: creator.ID}, nil
}

func (s *Store) JoinRoom(ctx context.Context, code, sessionID, name string) (domain.JoinRoomResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.JoinRoomResult{}, err
	}

	st, err := s.lockRoomByCode(code)
	if err != nil {
		return domain.JoinRoomResult{}, err
	}
	defer st.mu.Unlock()
	roomID := st.room.ID

	if existing, ok := st.members[sessionID]; ok {
		return domain.JoinRoomResult{RoomID: roomID, UserID: existing.ID}, nil
	}

	now := s.now()
	member := &domain.Member{
		ID:        uuid.New(),
		RoomID:    roomID,
		SessionID: strings.Clone(sessionID),
		Name:      strings.Clone(name),
		JoinedAt:  now,
	}
	st.members[member.SessionID] = member
	st.room.UpdatedAt = now

	return domain.JoinRoomResult{RoomID: roomID, UserID: member.ID}, nil
}

// lockRoomByCode resolves a code and locks its room. A room deleted between the lookup
// and the lock may already have handed its code to a new room, so the lookup is retried once.
func (s *Store) lockRoomByCode(code string) (*roomState, error) {
	for attempt := 0; ; attempt++ {
		s.mu.RLock()
		roomID, ok := s.codes[code]
		s.mu.RUnlock()
		if !ok {
			return nil, domain.ErrRoomNotFound
		}

		st, err := s.lockRoom(roomID)
		if err == domain.ErrRoomNotFound && attempt == 0 {
			continue
		}
		return st, err
	}
}

func (s *Store) StartGame(ctx context.Context, roomID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		return false, err
	}
	defer st.mu.Unlock()

	switch st.room.Status {
	case domain.RoomStatusWaiting:
		st.room.Status = domain.RoomStatusActive
		st.room.UpdatedAt = s.now()
		return true, nil
	case domain.RoomStatusActive:
		return false, nil
	default:
		return false, domain.ErrConflict
	}
}

func (s *Store) LeaveRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (domain.LeaveRoomResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.LeaveRoomResult{}, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		if err == domain.ErrRoomNotFound {
			return domain.LeaveRoomResult{}, nil
		}
		return domain.LeaveRoomResult{}, err
	}
	defer st.mu.Unlock()

	member, ok := st.members[sessionID]
	if !ok {
		return domain.LeaveRoomResult{}, nil
	}

	for key := range st.swipes {
		if key.userID == member.ID {
			delete(st.swipes, key)
		}
	}
	delete(st.members, sessionID)

	if len(st.members) > 0 {
		return domain.LeaveRoomResult{Left: true}, nil
	}

	s.dropRoom(st)
	return domain.LeaveRoomResult{Left: true, RoomDeleted: true}, nil
}

func (s *Store) SubmitSwipe(ctx context.Context, roomID uuid.UUID, sessionID string, itemID int64, direction domain.Direction) (domain.SwipeResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SwipeResult{}, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		return domain.SwipeResult{}, err
	}
	defer st.mu.Unlock()

	member, ok := st.members[sessionID]
	if !ok {
		return domain.SwipeResult{}, domain.ErrUserNotInRoom
	}

	now := s.now()
	key := swipeKey{userID: member.ID, itemID: itemID}
	swipe, ok := st.swipes[key]
	if !ok {
		swipe = &domain.Swipe{ID: uuid.New(), RoomID: roomID, UserID: member.ID, ItemID: itemID}
		st.swipes[key] = swipe
	}
	swipe.Direction = direction
	swipe.Timestamp = now
	st.room.UpdatedAt = now

	result := domain.SwipeResult{Swipe: *swipe}
	if !direction.IsPositive() {
		return result, nil
	}

	positive := 0
	for k, sw := range st.swipes {
		if k.itemID == itemID && sw.Direction.IsPositive() {
			positive++
		}
	}
	if positive != len(st.members) {
		return result, nil
	}

	if _, exists := st.matches[itemID]; !exists {
		match := &domain.Match{ID: uuid.New(), RoomID: roomID, ItemID: itemID, MatchedAt: now}
		st.matches[itemID] = match
		m := *match
		result.Match = &m
	}
	if st.room.StopsAtFirstMatch() && st.room.Status != domain.RoomStatusMatched {
		st.room.Status = domain.RoomStatusMatched
		result.RoomMatched = true
	}
	return result, nil
}

func (s *Store) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		return nil, err
	}
	defer st.mu.Unlock()

	room := st.room
	room.GenreIDs = cloneIDs(room.GenreIDs)
	room.ProviderIDs = cloneIDs(room.ProviderIDs)
	return &room, nil
}

func (s *Store) ListMembers(ctx context.Context, roomID uuid.UUID) ([]domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		return nil, err
	}
	defer st.mu.Unlock()

	members := make([]domain.Member, 0, len(st.members))
	for _, m := range st.members {
		members = append(members, *m)
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].JoinedAt.Equal(members[j].JoinedAt) {
			return members[i].ID.String() < members[j].ID.String()
		}
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})
	return members, nil
}

func (s *Store) IsMemberRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		if err == domain.ErrRoomNotFound {
			return false, nil
		}
		return false, err
	}
	defer st.mu.Unlock()

	_, ok := st.members[sessionID]
	return ok, nil
}

func (s *Store) ListMatches(ctx context.Context, roomID uuid.UUID) ([]domain.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		return nil, err
	}
	defer st.mu.Unlock()

	matches := make([]domain.Match, 0, len(st.matches))
	for _, m := range st.matches {
		matches = append(matches, *m)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchedAt.Equal(matches[j].MatchedAt) {
			return matches[i].ItemID < matches[j].ItemID
		}
		return matches[i].MatchedAt.Before(matches[j].MatchedAt)
	})
	return matches, nil
}

func (s *Store) ListUserSwipes(ctx context.Context, roomID uuid.UUID, sessionID string) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, err := s.lockRoom(roomID)
	if err != nil {
		if err == domain.ErrRoomNotFound {
			return []int64{}, nil
		}
		return nil, err
	}
	defer st.mu.Unlock()

	items := []int64{}
	member, ok := st.members[sessionID]
	if !ok {
		return items, nil
	}

	swipes := make([]*domain.Swipe, 0)
	for k, sw := range st.swipes {
		if k.userID == member.ID {
			swipes = append(swipes, sw)
		}
	}
	sort.Slice(swipes, func(i, j int) bool {
		if swipes[i].Timestamp.Equal(swipes[j].Timestamp) {
			return swipes[i].ItemID < swipes[j].ItemID
		}
		return swipes[i].Timestamp.Before(swipes[j].Timestamp)
	})
	for _, sw := range swipes {
		items = append(items, sw.ItemID)
	}
	return items, nil
}

// DeleteStaleRooms removes every room whose last activity is before cutoff.
func (s *Store) DeleteStaleRooms(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	s.mu.RLock()
	ids := make([]uuid.UUID, 0, len(s.rooms))
	for id := range s.rooms {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	var deleted []uuid.UUID
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}

		st, err := s.lockRoom(id)
		if err != nil {
			continue
		}
		if st.room.UpdatedAt.Before(cutoff) {
			s.dropRoom(st)
			deleted = append(deleted, id)
		}
		st.mu.Unlock()
	}
	return deleted, nil
}

func cloneIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}
