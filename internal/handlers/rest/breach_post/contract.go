//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=breach_post_test
package breach_post

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
	ReportBreach(ctx context.Context, caller entities.Address, id uint64, breach entities.BreachType, evidenceHash entities.Hash) error
}
