//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=role_post_test
package role_post

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
	GrantRole(ctx context.Context, caller, addr entities.Address, role entities.Role) error
}
