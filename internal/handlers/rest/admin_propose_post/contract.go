//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_propose_post_test
package admin_propose_post

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
	ProposeAdmin(ctx context.Context, caller, successor entities.Address) error
}
