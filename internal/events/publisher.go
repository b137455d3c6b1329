package events

import (
	"encoding/json"
	"fmt"
	"strconv"

	"shipledger/pkg/logger"
)

type producer interface {
	Send(topic, key string, value []byte) error
}

// Publisher пишет события аудита в Kafka после коммита транзакции.
// Ключ сообщения — идентификатор сущности, чтобы события одной
// отправки попадали в одну партицию и сохраняли порядок.
type Publisher struct {
	log               logger.Logger
	producer          producer
	auditTopic        string
	notificationTopic string
}

func NewPublisher(log logger.Logger, producer producer, auditTopic, notificationTopic string) *Publisher {
	return &Publisher{
		log:               log.With(logger.NewField("component", "audit_publisher")),
		producer:          producer,
		auditTopic:        auditTopic,
		notificationTopic: notificationTopic,
	}
}

// Emit публикует события уже закоммиченной операции. Ошибка публикации
// не откатывает состояние: она логируется и учитывается в метриках.
func (p *Publisher) Emit(events ...Event) {
	for _, event := range events {
		if err := p.publish(event); err != nil {
			AuditPublishErrorsTotal.Inc()
			p.log.With(
				logger.NewField("topic", event.Topic),
				logger.NewField("seq", event.Seq),
				logger.NewField("error", err),
			).Error("audit event publish failed")
			continue
		}
		AuditEventsTotal.WithLabelValues(event.Topic).Inc()
	}
}

func (p *Publisher) publish(event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	kafkaTopic := p.auditTopic
	if event.Topic == TopicNotification {
		kafkaTopic = p.notificationTopic
	}

	if err := p.producer.Send(kafkaTopic, messageKey(event), value); err != nil {
		return fmt.Errorf("publish audit event %s: %w", event.Topic, err)
	}
	return nil
}

func messageKey(event Event) string {
	if event.ShipmentID != 0 {
		return strconv.FormatUint(event.ShipmentID, 10)
	}
	if event.ProposalID != 0 {
		return strconv.FormatUint(event.ProposalID, 10)
	}
	return event.Subject
}
