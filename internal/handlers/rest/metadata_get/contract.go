//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=metadata_get_test
package metadata_get

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
	Metadata(ctx context.Context) (*entities.ContractMetadata, error)
	Analytics(ctx context.Context) (entities.Analytics, error)
}
