package app

import (
	"context"
	"time"

	"shipledger/internal/entities"
	"shipledger/internal/events"
	"shipledger/internal/handlers/rest/admin_accept_post"
	"shipledger/internal/handlers/rest/admin_propose_post"
	"shipledger/internal/handlers/rest/breach_post"
	"shipledger/internal/handlers/rest/delegate_post"
	"shipledger/internal/handlers/rest/dispute_post"
	"shipledger/internal/handlers/rest/dispute_resolve_post"
	"shipledger/internal/handlers/rest/escrow_deposit_post"
	"shipledger/internal/handlers/rest/escrow_get"
	"shipledger/internal/handlers/rest/escrow_refund_post"
	"shipledger/internal/handlers/rest/escrow_release_post"
	"shipledger/internal/handlers/rest/metadata_get"
	"shipledger/internal/handlers/rest/proposal_approve_post"
	"shipledger/internal/handlers/rest/proposal_execute_post"
	"shipledger/internal/handlers/rest/proposal_get"
	"shipledger/internal/handlers/rest/proposal_post"
	"shipledger/internal/handlers/rest/reputation_get"
	"shipledger/internal/handlers/rest/role_get"
	"shipledger/internal/handlers/rest/role_post"
	"shipledger/internal/handlers/rest/shipment_cancel_post"
	"shipledger/internal/handlers/rest/shipment_confirm_post"
	"shipledger/internal/handlers/rest/shipment_deadline_post"
	"shipledger/internal/handlers/rest/shipment_get"
	"shipledger/internal/handlers/rest/shipment_handoff_post"
	"shipledger/internal/handlers/rest/shipment_milestone_post"
	"shipledger/internal/handlers/rest/shipment_post"
	"shipledger/internal/handlers/rest/shipment_proof_get"
	"shipledger/internal/handlers/rest/shipment_status_post"
	"shipledger/internal/handlers/rest/token_approve_post"
	"shipledger/internal/handlers/rest/token_balance_get"
	"shipledger/internal/handlers/rest/token_burn_post"
	"shipledger/internal/handlers/rest/token_mint_post"
	"shipledger/internal/handlers/rest/token_transfer_post"
	"shipledger/internal/handlers/rest/whitelist_delete"
	"shipledger/internal/handlers/rest/whitelist_post"
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

	"shipledger/pkg/background"
	"shipledger/pkg/logger"
	"shipledger/pkg/querier"
	"shipledger/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval      time.Duration
	SweepBatchSize     int
	CompactionInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceEscrow     ServiceEscrow
	ServiceDispute    ServiceDispute
	ServiceIdentity   ServiceIdentity
	ServiceGovernance ServiceGovernance
	ServiceToken      ServiceToken
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_status_post.Service
	shipment_milestone_post.Service
	shipment_handoff_post.Service
	shipment_confirm_post.Service
	shipment_cancel_post.Service
	shipment_deadline_post.Service
	shipment_proof_get.Service
	escrow_refund_post.Service
	metadata_get.Service
}

type ServiceEscrow interface {
	escrow_deposit_post.Service
	escrow_get.Service
	escrow_release_post.Service
}

type ServiceDispute interface {
	dispute_post.Service
	dispute_resolve_post.Service
	breach_post.Service
	reputation_get.Service
}

type ServiceIdentity interface {
	role_post.Service
	role_get.Service
	whitelist_post.Service
	whitelist_delete.Service
	admin_propose_post.Service
	admin_accept_post.Service
	EnsureInitialized(ctx context.Context, admins []entities.Address, threshold uint32) error
}

type ServiceGovernance interface {
	proposal_post.Service
	proposal_get.Service
	proposal_approve_post.Service
	proposal_execute_post.Service
	delegate_post.Service
}

type ServiceToken interface {
	token_mint_post.Service
	token_burn_post.Service
	token_transfer_post.Service
	token_approve_post.Service
	token_balance_get.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideStateStore(querier *querier.Querier) *state.Store {
	return state.New(querier)
}

func provideClock(querier *querier.Querier) *ledgerclock.WallClock {
	return ledgerclock.New(querier)
}

func providePublisher(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *events.Publisher {
	return events.NewPublisher(log, producer, cfg.Kafka.AuditTopic, cfg.Kafka.NotificationTopic)
}

func provideShipmentRepository(store *state.Store) *shipmentRepo.Repository {
	return shipmentRepo.New(store)
}

func provideRolesRepository(store *state.Store) *rolesRepo.Repository {
	return rolesRepo.New(store)
}

func provideEngineRepository(store *state.Store) *engineRepo.Repository {
	return engineRepo.New(store)
}

func provideEscrowRepository(store *state.Store) *escrowRepo.Repository {
	return escrowRepo.New(store)
}

func provideGovernanceRepository(store *state.Store) *governanceRepo.Repository {
	return governanceRepo.New(store)
}

func provideReputationRepository(store *state.Store) *reputationRepo.Repository {
	return reputationRepo.New(store)
}

func provideTokenRepository(querier *querier.Querier) *tokenRepo.Repository {
	return tokenRepo.New(querier)
}

func provideServiceToken(
	repository tokenService.Repository,
	roles tokenService.RolesRepository,
	clock tokenService.Clock,
	txManager tokenService.TxManager,
) *tokenService.Token {
	return tokenService.New(repository, roles, clock, txManager)
}

func provideServiceEscrow(
	repository escrowService.Repository,
	shipments escrowService.ShipmentRepository,
	roles escrowService.RolesRepository,
	engine escrowService.EngineRepository,
	ledger escrowService.TokenLedger,
	clock escrowService.Clock,
	publisher escrowService.EventPublisher,
	txManager escrowService.TxManager,
) *escrowService.Escrow {
	return escrowService.New(repository, shipments, roles, engine, ledger, clock, publisher, txManager)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	roles shipmentService.RolesRepository,
	engine shipmentService.EngineRepository,
	escrow shipmentService.EscrowEngine,
	clock shipmentService.Clock,
	publisher shipmentService.EventPublisher,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, roles, engine, escrow, clock, publisher, txManager)
}

func provideServiceDispute(
	shipments disputeService.ShipmentRepository,
	reputation disputeService.ReputationRepository,
	roles disputeService.RolesRepository,
	engine disputeService.EngineRepository,
	escrow disputeService.EscrowEngine,
	clock disputeService.Clock,
	publisher disputeService.EventPublisher,
	txManager disputeService.TxManager,
) *disputeService.Dispute {
	return disputeService.New(shipments, reputation, roles, engine, escrow, clock, publisher, txManager)
}

func provideServiceIdentity(
	roles identityService.RolesRepository,
	engine identityService.EngineRepository,
	clock identityService.Clock,
	publisher identityService.EventPublisher,
	txManager identityService.TxManager,
) *identityService.Identity {
	return identityService.New(roles, engine, clock, publisher, txManager)
}

func provideServiceGovernance(
	repository governanceService.Repository,
	roles governanceService.RolesRepository,
	engine governanceService.EngineRepository,
	ledger governanceService.TokenLedger,
	clock governanceService.Clock,
	publisher governanceService.EventPublisher,
	txManager governanceService.TxManager,
) *governanceService.Governance {
	return governanceService.New(repository, roles, engine, ledger, clock, publisher, txManager)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.DeadlineSweepInterval)
}

func provideSweepBatchSize(cfg *config.Config) SweepBatchSize {
	return SweepBatchSize(cfg.Tasks.DeadlineSweepBatchSize)
}

func provideCompactionInterval(cfg *config.Config) CompactionInterval {
	return CompactionInterval(cfg.Tasks.StateCompactionInterval)
}

func provideDeadlineSweepTask(
	log logger.Logger,
	shipmentSvc deadline_sweep.Service,
	interval SweepInterval,
	batchSize SweepBatchSize,
) *deadline_sweep.DeadlineSweep {
	return deadline_sweep.NewDeadlineSweep(log, shipmentSvc, time.Duration(interval), int(batchSize))
}

func provideStateCompactionTask(
	log logger.Logger,
	store state_compaction.StateStore,
	locks state_compaction.VoteLockStore,
	clock state_compaction.Clock,
	interval CompactionInterval,
) *state_compaction.StateCompaction {
	return state_compaction.NewStateCompaction(log, store, locks, clock, time.Duration(interval))
}

func provideTaskList(
	deadlineSweepTask *deadline_sweep.DeadlineSweep,
	stateCompactionTask *state_compaction.StateCompaction,
) []background.Task {
	return []background.Task{
		deadlineSweepTask,
		stateCompactionTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
