package escrow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

// VaultAddress задаёт счёт движка, на котором лежат задепонированные средства.
var VaultAddress = entities.Address(strings.Repeat("0", 64))

type Escrow struct {
	repository Repository
	shipments  ShipmentRepository
	roles      RolesRepository
	engine     EngineRepository
	ledger     TokenLedger
	clock      Clock
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	shipments ShipmentRepository,
	roles RolesRepository,
	engine EngineRepository,
	ledger TokenLedger,
	clock Clock,
	publisher EventPublisher,
	txManager TxManager,
) *Escrow {
	return &Escrow{
		repository: repository,
		shipments:  shipments,
		roles:      roles,
		engine:     engine,
		ledger:     ledger,
		clock:      clock,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// Deposit депонирует полную сумму отправки. Ровно один раз,
// только отправитель, только в статусе Created.
func (s *Escrow) Deposit(ctx context.Context, caller entities.Address, shipmentID uint64, amount int64) error {
	if amount <= 0 || amount > entities.MaxAmount {
		return ErrInvalidAmount
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipment, err := s.shipments.Get(ctx, shipmentID, now)
		if err != nil {
			return err
		}
		if shipment.Sender != caller {
			return ErrUnauthorized
		}
		if shipment.Status != entities.ShipmentCreated {
			return ErrInvalidState
		}

		switch _, err := s.repository.Get(ctx, shipmentID, now); {
		case err == nil:
			return ErrAlreadyDeposited
		case !errors.Is(err, ErrEscrowNotFound):
			return fmt.Errorf("get escrow: %w", err)
		}

		if err := s.ledger.Move(ctx, caller, VaultAddress, amount); err != nil {
			return fmt.Errorf("lock funds: %w", err)
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		liveUntil := now + cfg.TTLExtension

		escrowEntity := &entities.Escrow{
			ShipmentID: shipmentID,
			Locked:     amount,
			Deposited:  amount,
		}
		if err := s.repository.Save(ctx, escrowEntity, liveUntil); err != nil {
			return fmt.Errorf("save escrow: %w", err)
		}
		if err := s.shipments.ExtendTTL(ctx, shipmentID, liveUntil); err != nil {
			return fmt.Errorf("extend shipment: %w", err)
		}

		analytics, err := s.engine.Analytics(ctx)
		if err != nil {
			return fmt.Errorf("load analytics: %w", err)
		}
		analytics.TotalEscrowVolume += amount
		if err := s.engine.SaveAnalytics(ctx, analytics); err != nil {
			return fmt.Errorf("save analytics: %w", err)
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicEscrowDeposited,
			Seq:        seq,
			LedgerTS:   now,
			ShipmentID: shipmentID,
			Actor:      caller.String(),
			Amount:     amount,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

func (s *Escrow) Get(ctx context.Context, shipmentID uint64) (*entities.Escrow, error) {
	return s.repository.Get(ctx, shipmentID, s.clock.Timestamp())
}

// Release выдаёт остаток перевозчику напрямую. Требует статуса Delivered;
// получатель или админ.
func (s *Escrow) Release(ctx context.Context, caller entities.Address, shipmentID uint64) (int64, error) {
	var (
		released int64
		emitted  []events.Event
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipment, err := s.shipments.Get(ctx, shipmentID, now)
		if err != nil {
			return err
		}
		if shipment.Status != entities.ShipmentDelivered {
			return ErrInvalidState
		}

		isAdmin, err := s.isAdmin(ctx, caller)
		if err != nil {
			return err
		}
		if caller != shipment.Receiver && !isAdmin {
			return ErrUnauthorized
		}

		released, err = s.ReleaseAll(ctx, shipment)
		if err != nil {
			return err
		}
		if released == 0 {
			return ErrNothingToRelease
		}

		evts, err := s.movementEvents(ctx, events.TopicEscrowReleased, shipment, caller, released)
		if err != nil {
			return err
		}
		emitted = evts
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publisher.Emit(emitted...)
	return released, nil
}

// ReleaseAmount списывает amount из остатка в пользу перевозчика.
// Вызывается изнутри транзакции операции жизненного цикла.
func (s *Escrow) ReleaseAmount(ctx context.Context, shipment *entities.Shipment, amount int64) error {
	now := s.clock.Timestamp()

	escrowEntity, err := s.repository.Get(ctx, shipment.ID, now)
	if err != nil {
		return err
	}
	if amount <= 0 || amount > escrowEntity.Locked {
		return ErrNothingToRelease
	}

	if err := s.ledger.Move(ctx, VaultAddress, shipment.Carrier, amount); err != nil {
		return fmt.Errorf("release funds: %w", err)
	}

	escrowEntity.Locked -= amount
	return s.saveForStatus(ctx, escrowEntity, shipment.Status, now)
}

// ReleasePercent выплачивает перевозчику долю от полного депозита.
// Без депозита или при исчерпанном остатке — no-op.
func (s *Escrow) ReleasePercent(ctx context.Context, shipment *entities.Shipment, percent uint32) (int64, error) {
	if percent == 0 || percent > 100 {
		return 0, ErrInvalidAmount
	}

	now := s.clock.Timestamp()
	escrowEntity, err := s.repository.Get(ctx, shipment.ID, now)
	if err != nil {
		if errors.Is(err, ErrEscrowNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if escrowEntity.Locked == 0 {
		return 0, nil
	}

	amount := escrowEntity.Deposited / 100 * int64(percent)
	if rem := escrowEntity.Deposited % 100 * int64(percent) / 100; rem > 0 {
		amount += rem
	}
	if amount > escrowEntity.Locked {
		amount = escrowEntity.Locked
	}
	if amount == 0 {
		return 0, nil
	}

	if err := s.ledger.Move(ctx, VaultAddress, shipment.Carrier, amount); err != nil {
		return 0, fmt.Errorf("release funds: %w", err)
	}

	escrowEntity.Locked -= amount
	if err := s.saveForStatus(ctx, escrowEntity, shipment.Status, now); err != nil {
		return 0, err
	}
	return amount, nil
}

// ReleaseAll отдаёт перевозчику весь остаток. Нулевой остаток — no-op.
func (s *Escrow) ReleaseAll(ctx context.Context, shipment *entities.Shipment) (int64, error) {
	return s.drain(ctx, shipment, shipment.Carrier)
}

// RefundAll возвращает компании весь остаток. Нулевой остаток — no-op.
func (s *Escrow) RefundAll(ctx context.Context, shipment *entities.Shipment) (int64, error) {
	return s.drain(ctx, shipment, shipment.Sender)
}

func (s *Escrow) drain(ctx context.Context, shipment *entities.Shipment, to entities.Address) (int64, error) {
	now := s.clock.Timestamp()

	escrowEntity, err := s.repository.Get(ctx, shipment.ID, now)
	if err != nil {
		if errors.Is(err, ErrEscrowNotFound) {
			// депозита не было — возвращать нечего
			return 0, nil
		}
		return 0, err
	}
	if escrowEntity.Locked == 0 {
		return 0, nil
	}

	amount := escrowEntity.Locked
	if err := s.ledger.Move(ctx, VaultAddress, to, amount); err != nil {
		return 0, fmt.Errorf("move funds: %w", err)
	}

	escrowEntity.Locked = 0
	if err := s.saveForStatus(ctx, escrowEntity, shipment.Status, now); err != nil {
		return 0, err
	}
	return amount, nil
}

// saveForStatus: эскроу терминальной отправки уезжает во временный ярус.
func (s *Escrow) saveForStatus(ctx context.Context, escrowEntity *entities.Escrow, status entities.ShipmentStatus, now uint64) error {
	cfg, err := s.engine.Config(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	liveUntil := now + cfg.TTLExtension

	if status.IsTerminal() {
		if err := s.repository.Archive(ctx, escrowEntity, liveUntil); err != nil {
			return fmt.Errorf("archive escrow: %w", err)
		}
		return nil
	}
	if err := s.repository.Save(ctx, escrowEntity, liveUntil); err != nil {
		return fmt.Errorf("save escrow: %w", err)
	}
	return nil
}

func (s *Escrow) movementEvents(ctx context.Context, topic string, shipment *entities.Shipment, actor entities.Address, amount int64) ([]events.Event, error) {
	seq, err := s.clock.NextSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("next seq: %w", err)
	}
	now := s.clock.Timestamp()

	recipient := shipment.Carrier
	if topic == events.TopicEscrowRefunded {
		recipient = shipment.Sender
	}

	emitted := []events.Event{{
		Topic:      topic,
		Seq:        seq,
		LedgerTS:   now,
		ShipmentID: shipment.ID,
		Actor:      actor.String(),
		Subject:    recipient.String(),
		Amount:     amount,
	}}

	notifySeq, err := s.clock.NextSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("next seq: %w", err)
	}
	emitted = append(emitted, events.Event{
		Topic:      events.TopicNotification,
		Seq:        notifySeq,
		LedgerTS:   now,
		ShipmentID: shipment.ID,
		Kind:       topic,
		Recipient:  recipient.String(),
		Amount:     amount,
	})
	return emitted, nil
}

func (s *Escrow) requireNotPaused(ctx context.Context) error {
	paused, err := s.engine.Paused(ctx)
	if err != nil {
		return fmt.Errorf("check paused: %w", err)
	}
	if paused {
		return ErrPaused
	}
	return nil
}

func (s *Escrow) isAdmin(ctx context.Context, caller entities.Address) (bool, error) {
	admins, err := s.roles.Admins(ctx)
	if err != nil {
		return false, fmt.Errorf("load admins: %w", err)
	}
	for _, a := range admins {
		if a == caller {
			return true, nil
		}
	}
	return false, nil
}
