//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escrow_deposit_post_test
package escrow_deposit_post

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
	Deposit(ctx context.Context, caller entities.Address, shipmentID uint64, amount int64) error
}
