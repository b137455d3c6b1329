//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_burn_post_test
package token_burn_post

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
	Burn(ctx context.Context, caller, from entities.Address, amount int64) error
}
