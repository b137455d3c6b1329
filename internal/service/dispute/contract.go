//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispute_test
package dispute

import (
	"context"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type ShipmentRepository interface {
	Get(ctx context.Context, id uint64, now uint64) (*entities.Shipment, error)
	Save(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error
	Archive(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error
	AddCompanyActive(ctx context.Context, company entities.Address, delta int64, liveUntil uint64) error
}

type ReputationRepository interface {
	Get(ctx context.Context, carrier entities.Address) (*entities.CarrierReputation, error)
	Save(ctx context.Context, reputation *entities.CarrierReputation, liveUntil uint64) error
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

type EscrowEngine interface {
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
