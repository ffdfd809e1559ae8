package bootstrap

import (
	"context"
	"sync"

	httpUsecase "swipe-service/internal/api/http/usecase"

	"github.com/google/uuid"
)

type eventFanout []httpUsecase.RoomEventPublisher

func (f eventFanout) PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{}) {
	for _, p := range f {
		p.PublishMessage(ctx, roomID, msgType, dataContent)
	}
}

type queuedEvent struct {
	ctx     context.Context
	msgType string
	content interface{}
}

// EventPublisher queues events per room and delivers each room's events in the order
// they were published, so subscribers never see player_left before player_joined.
// Callers never wait for delivery. At most one delivery goroutine runs per room.
type EventPublisher struct {
	next   httpUsecase.RoomEventPublisher
	mu     sync.Mutex
	queues map[uuid.UUID][]queuedEvent
	wg     sync.WaitGroup
}

func NewEventPublisher(next httpUsecase.RoomEventPublisher) *EventPublisher {
	return &EventPublisher{
		next:   next,
		queues: make(map[uuid.UUID][]queuedEvent),
	}
}

func (p *EventPublisher) PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	queue, draining := p.queues[roomID]
	p.queues[roomID] = append(queue, queuedEvent{ctx: ctx, msgType: msgType, content: dataContent})
	if !draining {
		p.wg.Add(1)
		go p.drain(roomID)
	}
}

// drain delivers the room's queue until it is empty, then forgets the room.
func (p *EventPublisher) drain(roomID uuid.UUID) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		queue := p.queues[roomID]
		if len(queue) == 0 {
			delete(p.queues, roomID)
			p.mu.Unlock()
			return
		}
		event := queue[0]
		queue[0] = queuedEvent{}
		p.queues[roomID] = queue[1:]
		p.mu.Unlock()

		p.next.PublishMessage(event.ctx, roomID, event.msgType, event.content)
	}
}

// Wait blocks until every queued event was handed to the underlying publishers.
func (p *EventPublisher) Wait() {
	p.wg.Wait()
}

// SetupEventPublisher picks the live channel for websocket subscribers and adds the
// kafka stream when configured. With redis the hub is fed from its subscriptions,
// so the hub is only published to directly when redis is off.
func SetupEventPublisher(hub Hub, roomRedis RoomRedisManager, kafka Messaging) *EventPublisher {
	var fanout eventFanout
	if roomRedis != nil {
		fanout = append(fanout, roomRedis)
	} else {
		fanout = append(fanout, hub)
	}
	if kafka != nil {
		fanout = append(fanout, kafka)
	}

	if len(fanout) == 1 {
		return NewEventPublisher(fanout[0])
	}
	return NewEventPublisher(fanout)
}
