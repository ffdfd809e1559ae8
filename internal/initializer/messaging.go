package initializer

import (
	"swipe-service/config"
	"swipe-service/infra/kafka"
)

func InitMessaging(appConfig config.Config) *kafka.Publisher {
	kafkaConfig := kafka.NewDefaultConfig(appConfig.Kafka.Brokers)
	if appConfig.Kafka.Topic != "" {
		kafkaConfig.Topic = appConfig.Kafka.Topic
	}
	if appConfig.Kafka.ClientID != "" {
		kafkaConfig.ClientID = appConfig.Kafka.ClientID
	}

	return kafka.NewPublisher(kafkaConfig)
}
