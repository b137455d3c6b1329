//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=whitelist_post_test
package whitelist_post

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
	AddToWhitelist(ctx context.Context, caller, carrier entities.Address) error
}
