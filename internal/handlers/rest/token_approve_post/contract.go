//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_approve_post_test
package token_approve_post

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
	Approve(ctx context.Context, owner, spender entities.Address, amount int64) error
}
