//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escrow_test
package escrow

import (
	"context"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type Repository interface {
	Get(ctx context.Context, shipmentID uint64, now uint64) (*entities.Escrow, error)
	Save(ctx context.Context, escrowEntity *entities.Escrow, liveUntil uint64) error
	Archive(ctx context.Context, escrowEntity *entities.Escrow, liveUntil uint64) error
	ExtendTTL(ctx context.Context, shipmentID uint64, minUntil uint64) error
}

type ShipmentRepository interface {
	Get(ctx context.Context, id uint64, now uint64) (*entities.Shipment, error)
	ExtendTTL(ctx context.Context, id uint64, minUntil uint64) error
}

type RolesRepository interface {
	Admins(ctx context.Context) ([]entities.Address, error)
}

type EngineRepository interface {
	Config(ctx context.Context) (entities.EngineConfig, error)
	Paused(ctx context.Context) (bool, error)
	Analytics(ctx context.Context) (entities.Analytics, error)
	SaveAnalytics(ctx context.Context, analytics entities.Analytics) error
}

// TokenLedger переводит средства внутри уже открытой транзакции операции.
type TokenLedger interface {
	Move(ctx context.Context, from, to entities.Address, amount int64) error
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
