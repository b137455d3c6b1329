//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"shipledger/internal/events"
	"shipledger/internal/handlers/tasks/deadline_sweep"
	"shipledger/internal/handlers/tasks/state_compaction"
	"shipledger/internal/pkg/config"
	"shipledger/internal/pkg/kafka"
	"shipledger/internal/pkg/ledgerclock"

	engineRepo "shipledger/internal/repository/engine"
	escrowRepo "shipledger/internal/repository/escrow"
	governanceRepo "shipledger/internal/repository/governance"
	reputationRepo "shipledger/internal/repository/reputation"
	rolesRepo "shipledger/internal/repository/roles"
	shipmentRepo "shipledger/internal/repository/shipment"
	"shipledger/internal/repository/state"
	tokenRepo "shipledger/internal/repository/token"
	disputeService "shipledger/internal/service/dispute"
	escrowService "shipledger/internal/service/escrow"
	governanceService "shipledger/internal/service/governance"
	identityService "shipledger/internal/service/identity"
	shipmentService "shipledger/internal/service/shipment"
	tokenService "shipledger/internal/service/token"

	"shipledger/pkg/logger"
	"shipledger/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStateStore,
		provideClock,
		providePublisher,
		provideSweepInterval,
		provideSweepBatchSize,
		provideCompactionInterval,

		provideShipmentRepository,
		provideRolesRepository,
		provideEngineRepository,
		provideEscrowRepository,
		provideGovernanceRepository,
		provideReputationRepository,
		provideTokenRepository,

		provideServiceToken,
		provideServiceEscrow,
		provideServiceShipment,
		provideServiceDispute,
		provideServiceIdentity,
		provideServiceGovernance,

		provideDeadlineSweepTask,
		provideStateCompactionTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceEscrow), new(*escrowService.Escrow)),
		wire.Bind(new(ServiceDispute), new(*disputeService.Dispute)),
		wire.Bind(new(ServiceIdentity), new(*identityService.Identity)),
		wire.Bind(new(ServiceGovernance), new(*governanceService.Governance)),
		wire.Bind(new(ServiceToken), new(*tokenService.Token)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.RolesRepository), new(*rolesRepo.Repository)),
		wire.Bind(new(shipmentService.EngineRepository), new(*engineRepo.Repository)),
		wire.Bind(new(shipmentService.EscrowEngine), new(*escrowService.Escrow)),
		wire.Bind(new(shipmentService.Clock), new(*ledgerclock.WallClock)),
		wire.Bind(new(shipmentService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(escrowService.Repository), new(*escrowRepo.Repository)),
		wire.Bind(new(escrowService.ShipmentRepository), new(*shipmentRepo.Repository)),
		wire.Bind(new(escrowService.RolesRepository), new(*rolesRepo.Repository)),
		wire.Bind(new(escrowService.EngineRepository), new(*engineRepo.Repository)),
		wire.Bind(new(escrowService.TokenLedger), new(*tokenService.Token)),
		wire.Bind(new(escrowService.Clock), new(*ledgerclock.WallClock)),
		wire.Bind(new(escrowService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(escrowService.TxManager), new(*tx.Manager)),

		wire.Bind(new(disputeService.ShipmentRepository), new(*shipmentRepo.Repository)),
		wire.Bind(new(disputeService.ReputationRepository), new(*reputationRepo.Repository)),
		wire.Bind(new(disputeService.RolesRepository), new(*rolesRepo.Repository)),
		wire.Bind(new(disputeService.EngineRepository), new(*engineRepo.Repository)),
		wire.Bind(new(disputeService.EscrowEngine), new(*escrowService.Escrow)),
		wire.Bind(new(disputeService.Clock), new(*ledgerclock.WallClock)),
		wire.Bind(new(disputeService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(disputeService.TxManager), new(*tx.Manager)),

		wire.Bind(new(identityService.RolesRepository), new(*rolesRepo.Repository)),
		wire.Bind(new(identityService.EngineRepository), new(*engineRepo.Repository)),
		wire.Bind(new(identityService.Clock), new(*ledgerclock.WallClock)),
		wire.Bind(new(identityService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(identityService.TxManager), new(*tx.Manager)),

		wire.Bind(new(governanceService.Repository), new(*governanceRepo.Repository)),
		wire.Bind(new(governanceService.RolesRepository), new(*rolesRepo.Repository)),
		wire.Bind(new(governanceService.EngineRepository), new(*engineRepo.Repository)),
		wire.Bind(new(governanceService.TokenLedger), new(*tokenRepo.Repository)),
		wire.Bind(new(governanceService.Clock), new(*ledgerclock.WallClock)),
		wire.Bind(new(governanceService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(governanceService.TxManager), new(*tx.Manager)),

		wire.Bind(new(tokenService.Repository), new(*tokenRepo.Repository)),
		wire.Bind(new(tokenService.RolesRepository), new(*rolesRepo.Repository)),
		wire.Bind(new(tokenService.Clock), new(*ledgerclock.WallClock)),
		wire.Bind(new(tokenService.TxManager), new(*tx.Manager)),

		wire.Bind(new(deadline_sweep.Service), new(*shipmentService.Shipment)),
		wire.Bind(new(state_compaction.StateStore), new(*state.Store)),
		wire.Bind(new(state_compaction.VoteLockStore), new(*tokenRepo.Repository)),
		wire.Bind(new(state_compaction.Clock), new(*ledgerclock.WallClock)),
	)
	return &Application{}, nil
}
