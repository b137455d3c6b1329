package notification

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"shipledger/internal/events"
	"shipledger/pkg/logger"
)

var deliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifications_delivered_total",
		Help: "Notifications delivered to recipients, by kind.",
	},
	[]string{"kind"},
)

// Handler доставляет уведомления участникам отправки. Доставка — это
// структурированная запись в лог; внешние каналы подключаются здесь же.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("notification: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			h.messageProcessing(sess, message)

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("notification: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	var event events.Event
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("notification handler received bad message")
		sess.MarkMessage(message, "")
		return
	}

	if event.Recipient == "" {
		h.log.With(
			logger.NewField("kind", event.Kind),
			logger.NewField("offset", message.Offset),
		).Warn("notification without recipient, skipping")
		sess.MarkMessage(message, "")
		return
	}

	h.log.With(
		logger.NewField("kind", event.Kind),
		logger.NewField("recipient", event.Recipient),
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("offset", message.Offset),
	).Info("notification delivered")
	deliveredTotal.WithLabelValues(event.Kind).Inc()

	sess.MarkMessage(message, "")
}
