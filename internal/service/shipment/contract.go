//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type Repository interface {
	NextID(ctx context.Context) (uint64, error)
	Get(ctx context.Context, id uint64, now uint64) (*entities.Shipment, error)
	Save(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error
	Archive(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error
	ExtendTTL(ctx context.Context, id uint64, minUntil uint64) error
	LastStatusUpdate(ctx context.Context, id uint64, now uint64) (uint64, bool, error)
	SetLastStatusUpdate(ctx context.Context, id uint64, ts uint64, liveUntil uint64) error
	IncEventCount(ctx context.Context, id uint64, liveUntil uint64) (uint64, error)
	CompanyActiveCount(ctx context.Context, company entities.Address) (uint32, error)
	AddCompanyActive(ctx context.Context, company entities.Address, delta int64, liveUntil uint64) error
	ExpiredActiveIDs(ctx context.Context, now uint64, limit int) ([]uint64, error)
}

type RolesRepository interface {
	Admins(ctx context.Context) ([]entities.Address, error)
	HasRole(ctx context.Context, addr entities.Address, role entities.Role, now uint64) (bool, error)
	IsWhitelisted(ctx context.Context, company, carrier entities.Address, now uint64) (bool, error)
}

type EngineRepository interface {
	Config(ctx context.Context) (entities.EngineConfig, error)
	Paused(ctx context.Context) (bool, error)
	Version(ctx context.Context) (uint32, entities.Hash, error)
	Analytics(ctx context.Context) (entities.Analytics, error)
	SaveAnalytics(ctx context.Context, analytics entities.Analytics) error
}

// EscrowEngine выполняет движения средств эскроу изнутри транзакции операции.
type EscrowEngine interface {
	ReleasePercent(ctx context.Context, shipmentEntity *entities.Shipment, percent uint32) (int64, error)
	ReleaseAll(ctx context.Context, shipmentEntity *entities.Shipment) (int64, error)
	RefundAll(ctx context.Context, shipmentEntity *entities.Shipment) (int64, error)
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
