//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_post_test
package shipment_status_post

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
	UpdateStatus(ctx context.Context, caller entities.Address, id uint64, next entities.ShipmentStatus, payloadHash entities.Hash) error
}
