//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_test
package identity

import (
	"context"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type RolesRepository interface {
	Admins(ctx context.Context) ([]entities.Address, error)
	SetAdmins(ctx context.Context, admins []entities.Address) error
	GrantRole(ctx context.Context, addr entities.Address, role entities.Role, grantedAt, liveUntil uint64) error
	HasRole(ctx context.Context, addr entities.Address, role entities.Role, now uint64) (bool, error)
	ExtendRoleTTL(ctx context.Context, addr entities.Address, role entities.Role, minUntil uint64) error
	SetWhitelisted(ctx context.Context, company, carrier entities.Address, grantedAt, liveUntil uint64) error
	RemoveWhitelisted(ctx context.Context, company, carrier entities.Address) error
	IsWhitelisted(ctx context.Context, company, carrier entities.Address, now uint64) (bool, error)
	SetAdminTransfer(ctx context.Context, transfer entities.AdminTransfer) error
	AdminTransfer(ctx context.Context) (*entities.AdminTransfer, error)
	ClearAdminTransfer(ctx context.Context) error
}

type EngineRepository interface {
	Config(ctx context.Context) (entities.EngineConfig, error)
	SetConfig(ctx context.Context, cfg entities.EngineConfig) error
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
