//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_deadline_post_test
package shipment_deadline_post

import (
	"context"

	"shipledger/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CheckDeadline(ctx context.Context, id uint64) (bool, error)
}
