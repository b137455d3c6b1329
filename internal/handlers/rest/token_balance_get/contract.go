//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_balance_get_test
package token_balance_get

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
	Balance(ctx context.Context, addr entities.Address) (int64, error)
	BalanceAt(ctx context.Context, addr entities.Address, ts uint64) (int64, error)
}
