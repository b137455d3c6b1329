//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=proposal_post_test
package proposal_post

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
	Propose(ctx context.Context, caller entities.Address, action entities.ProposalAction, params entities.ProposalParams) (uint64, error)
}
