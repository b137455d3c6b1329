//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispute_post_test
package dispute_post

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
	Raise(ctx context.Context, caller entities.Address, id uint64, reasonHash entities.Hash) error
}
