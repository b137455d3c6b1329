package deadline_sweep

import (
	"context"
	"time"

	"shipledger/pkg/logger"
)

type Service interface {
	ExpireDue(ctx context.Context, limit int) (int, error)
}

// DeadlineSweep отменяет просроченные активные отправки пачками.
type DeadlineSweep struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	batchSize int
}

func NewDeadlineSweep(log logger.Logger, service Service, interval time.Duration, batchSize int) *DeadlineSweep {
	return &DeadlineSweep{
		log:       log,
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (d *DeadlineSweep) TTL() time.Duration {
	return d.interval
}

func (d *DeadlineSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	expired, err := d.service.ExpireDue(ctxWithTimeout, d.batchSize)

	if expired > 0 {
		d.log.With(
			logger.NewField("expired_shipments", expired),
		).Info("deadline sweep")
	}

	return err
}

func (d *DeadlineSweep) Info() string {
	return "deadline sweep"
}
