package kafka

import (
	"context"
	"encoding/json"
	"time"

	"swipe-service/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type KafkaConfig struct {
	Brokers      []string
	Topic        string
	ClientID     string
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

func NewDefaultConfig(brokers []string) KafkaConfig {
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	return KafkaConfig{
		Brokers:      brokers,
		Topic:        "room-events",
		ClientID:     "swipe-service",
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}
}

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher streams room events to a topic, keyed by room id so a room's events stay ordered
// within one partition.
type Publisher struct {
	writer messageWriter
	topic  string
}

func NewPublisher(cfg KafkaConfig) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Transport:              &kafka.Transport{ClientID: cfg.ClientID},
	}

	zap.L().Info("Kafka publisher initialized", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.Topic))
	return &Publisher{writer: w, topic: cfg.Topic}
}

func (p *Publisher) PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{}) {
	event := domain.NewRoomEvent(msgType, roomID, dataContent)
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Failed to marshal Kafka message", zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(roomID.String()),
		Value: payload,
		Time:  event.Timestamp,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(msgType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("Failed to publish message to Kafka",
			zap.String("topic", p.topic),
			zap.String("room_id", roomID.String()),
			zap.String("type", msgType),
			zap.Error(err),
		)
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
