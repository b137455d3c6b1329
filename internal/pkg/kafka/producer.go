package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"shipledger/internal/pkg/config"
	"shipledger/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	// Аудит не терпит потерь: ждём подтверждения всех реплик.
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log:      kafkaLog,
		producer: producer,
	}, nil
}

func (p *Producer) Send(topic, key string, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send message to %s: %w", topic, err)
	}

	p.log.Info("message produced",
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
