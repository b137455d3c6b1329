//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escrow_refund_post_test
package escrow_refund_post

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
	RefundEscrow(ctx context.Context, caller entities.Address, id uint64) error
}
