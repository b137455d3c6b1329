//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_accept_post_test
package admin_accept_post

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
	AcceptAdmin(ctx context.Context, caller entities.Address) error
}
