//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_transfer_post_test
package token_transfer_post

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
	Transfer(ctx context.Context, caller, to entities.Address, amount int64) error
	TransferFrom(ctx context.Context, spender, from, to entities.Address, amount int64) error
}
