//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=whitelist_delete_test
package whitelist_delete

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
	RemoveFromWhitelist(ctx context.Context, caller, carrier entities.Address) error
}
