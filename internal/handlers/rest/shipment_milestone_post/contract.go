//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_milestone_post_test
package shipment_milestone_post

import (
	"context"

	"shipledger/internal/entities"
	"shipledger/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordMilestone(ctx context.Context, caller entities.Address, id uint64, checkpoint string, hash entities.Hash) error
}
