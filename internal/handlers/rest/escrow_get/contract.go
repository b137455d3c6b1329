//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escrow_get_test
package escrow_get

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
	Get(ctx context.Context, shipmentID uint64) (*entities.Escrow, error)
}
