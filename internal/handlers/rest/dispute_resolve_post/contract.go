//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispute_resolve_post_test
package dispute_resolve_post

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
	Resolve(ctx context.Context, caller entities.Address, id uint64, resolution entities.DisputeResolution) error
}
