//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_test
package token

import (
	"context"

	"shipledger/internal/entities"
)

type Repository interface {
	Balance(ctx context.Context, addr entities.Address) (int64, error)
	SetBalance(ctx context.Context, addr entities.Address, balance int64, ts uint64) error
	BalanceAt(ctx context.Context, addr entities.Address, ts uint64) (int64, error)
	Allowance(ctx context.Context, owner, spender entities.Address) (int64, error)
	SetAllowance(ctx context.Context, owner, spender entities.Address, amount int64) error
	HasActiveVoteLock(ctx context.Context, addr entities.Address, now uint64) (bool, error)
}

type RolesRepository interface {
	Admins(ctx context.Context) ([]entities.Address, error)
}

type Clock interface {
	Timestamp() uint64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
