//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=governance_test
package governance

import (
	"context"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type Repository interface {
	NextID(ctx context.Context) (uint64, error)
	Get(ctx context.Context, id uint64, now uint64) (*entities.Proposal, error)
	Save(ctx context.Context, proposal *entities.Proposal, liveUntil uint64) error
	SetDelegation(ctx context.Context, delegation entities.Delegation, liveUntil uint64) error
	ClearDelegation(ctx context.Context, delegator entities.Address) error
	Delegation(ctx context.Context, delegator entities.Address, now uint64) (*entities.Delegation, error)
	DelegatorsOf(ctx context.Context, delegate entities.Address, now uint64) ([]entities.Address, error)
}

type RolesRepository interface {
	Admins(ctx context.Context) ([]entities.Address, error)
	SetAdmins(ctx context.Context, admins []entities.Address) error
}

type EngineRepository interface {
	Config(ctx context.Context) (entities.EngineConfig, error)
	SetConfig(ctx context.Context, cfg entities.EngineConfig) error
	SetPaused(ctx context.Context, paused bool) error
	Version(ctx context.Context) (uint32, entities.Hash, error)
	SetVersion(ctx context.Context, version uint32, codeHash entities.Hash) error
}

type TokenLedger interface {
	BalanceAt(ctx context.Context, addr entities.Address, ts uint64) (int64, error)
	AddVoteLock(ctx context.Context, lock entities.VoteLock) error
}

type Clock interface {
	Timestamp() uint64
	NextSeq(ctx context.Context) (uint64, error)
}

type EventPublisher interface {
	Emit(events ...events.Event)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
