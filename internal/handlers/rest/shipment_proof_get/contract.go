//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_proof_get_test
package shipment_proof_get

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
	VerifyDeliveryProof(ctx context.Context, id uint64, proof entities.Hash) (bool, error)
}
