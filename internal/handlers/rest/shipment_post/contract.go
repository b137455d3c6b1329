//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_post_test
package shipment_post

import (
	"context"

	"shipledger/internal/entities"
	"shipledger/internal/service/shipment"
	"shipledger/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Create(ctx context.Context, caller entities.Address, params shipment.CreateParams) (uint64, error)
}
