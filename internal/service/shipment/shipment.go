package shipment

import (
	"context"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type Shipment struct {
	repository Repository
	roles      RolesRepository
	engine     EngineRepository
	escrow     EscrowEngine
	clock      Clock
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	roles RolesRepository,
	engine EngineRepository,
	escrow EscrowEngine,
	clock Clock,
	publisher EventPublisher,
	txManager TxManager,
) *Shipment {
	return &Shipment{
		repository: repository,
		roles:      roles,
		engine:     engine,
		escrow:     escrow,
		clock:      clock,
		publisher:  publisher,
		txManager:  txManager,
	}
}

type CreateParams struct {
	Carrier  entities.Address
	Receiver entities.Address
	DataHash entities.Hash
	Deadline uint64
	Schedule []entities.PaymentMilestone
}

// Create регистрирует отправку. Только компания, перевозчик должен быть
// в её белом списке.
func (s *Shipment) Create(ctx context.Context, caller entities.Address, params CreateParams) (uint64, error) {
	if !params.Carrier.IsValid() || !params.Receiver.IsValid() {
		return 0, ErrInvalidAddress
	}
	if !isValidHash(params.DataHash) {
		return 0, ErrInvalidHash
	}
	if !isValidSchedule(params.Schedule) {
		return 0, ErrInvalidSchedule
	}

	var (
		id      uint64
		emitted []events.Event
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		if params.Deadline <= now {
			return ErrInvalidDeadline
		}

		hasCompany, err := s.roles.HasRole(ctx, caller, entities.RoleCompany, now)
		if err != nil {
			return fmt.Errorf("check company role: %w", err)
		}
		if !hasCompany {
			return ErrUnauthorized
		}

		whitelisted, err := s.roles.IsWhitelisted(ctx, caller, params.Carrier, now)
		if err != nil {
			return fmt.Errorf("check whitelist: %w", err)
		}
		if !whitelisted {
			return ErrNotWhitelisted
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		active, err := s.repository.CompanyActiveCount(ctx, caller)
		if err != nil {
			return fmt.Errorf("count active shipments: %w", err)
		}
		if active >= cfg.MaxActiveShipments {
			return ErrActiveLimitReached
		}

		id, err = s.repository.NextID(ctx)
		if err != nil {
			return err
		}

		liveUntil := now + cfg.TTLExtension
		shipmentEntity := &entities.Shipment{
			ID:              id,
			Sender:          caller,
			Carrier:         params.Carrier,
			Receiver:        params.Receiver,
			DataHash:        params.DataHash,
			Status:          entities.ShipmentCreated,
			Deadline:        params.Deadline,
			CreatedAt:       now,
			UpdatedAt:       now,
			PaymentSchedule: params.Schedule,
		}
		if err := s.repository.Save(ctx, shipmentEntity, liveUntil); err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}
		if err := s.repository.AddCompanyActive(ctx, caller, 1, liveUntil); err != nil {
			return fmt.Errorf("count active shipments: %w", err)
		}
		if err := s.bumpStatusCount(ctx, "", entities.ShipmentCreated); err != nil {
			return err
		}

		emitted, err = s.buildEvents(ctx, liveUntil,
			events.Event{
				Topic:      events.TopicShipmentCreated,
				ShipmentID: id,
				Actor:      caller.String(),
				Subject:    params.Carrier.String(),
				Hash:       params.DataHash.String(),
			},
			events.Event{
				Topic:      events.TopicNotification,
				ShipmentID: id,
				Kind:       events.TopicShipmentCreated,
				Recipient:  params.Carrier.String(),
			},
		)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.publisher.Emit(emitted...)
	return id, nil
}

// UpdateStatus фиксирует движение груза перевозчиком (или админом, без
// анти-спам интервала). Терминальные переходы идут через свои операции.
func (s *Shipment) UpdateStatus(ctx context.Context, caller entities.Address, id uint64, next entities.ShipmentStatus, payloadHash entities.Hash) error {
	if !isMovementStatus(next) {
		return ErrInvalidStatusTransition
	}
	if payloadHash != "" && !isValidHash(payloadHash) {
		return ErrInvalidHash
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipmentEntity, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}

		isAdmin, err := s.isAdmin(ctx, caller)
		if err != nil {
			return err
		}
		if caller != shipmentEntity.Carrier && !isAdmin {
			return ErrUnauthorized
		}
		if shipmentEntity.Status.IsTerminal() {
			return ErrAlreadyTerminal
		}
		if !shipmentEntity.Status.CanTransitionTo(next) {
			return ErrInvalidStatusTransition
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if !isAdmin {
			last, ok, err := s.repository.LastStatusUpdate(ctx, id, now)
			if err != nil {
				return err
			}
			if ok && now < last+cfg.MinStatusUpdateInterval {
				return ErrRateLimited
			}
		}

		prev := shipmentEntity.Status
		shipmentEntity.Status = next
		shipmentEntity.UpdatedAt = now
		if payloadHash != "" {
			shipmentEntity.DataHash = payloadHash
		}

		liveUntil := now + cfg.TTLExtension
		if err := s.repository.Save(ctx, shipmentEntity, liveUntil); err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}
		if err := s.repository.SetLastStatusUpdate(ctx, id, now, now+cfg.MinStatusUpdateInterval); err != nil {
			return err
		}
		if err := s.bumpStatusCount(ctx, prev, next); err != nil {
			return err
		}

		emitted, err = s.buildEvents(ctx, liveUntil, events.Event{
			Topic:      events.TopicStatusUpdated,
			ShipmentID: id,
			Actor:      caller.String(),
			Status:     next.String(),
			Hash:       payloadHash.String(),
		})
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// RecordMilestone фиксирует чекпоинт. Если чекпоинт есть в графике оплат
// и ещё не оплачен — немедленно выплачивает перевозчику его долю эскроу.
func (s *Shipment) RecordMilestone(ctx context.Context, caller entities.Address, id uint64, checkpoint string, hash entities.Hash) error {
	if checkpoint == "" {
		return ErrInvalidSchedule
	}
	if !isValidHash(hash) {
		return ErrInvalidHash
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipmentEntity, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if caller != shipmentEntity.Carrier {
			return ErrUnauthorized
		}
		if !isMovementStatus(shipmentEntity.Status) {
			return ErrInvalidStatusTransition
		}

		shipmentEntity.Milestones = append(shipmentEntity.Milestones, entities.MilestoneRecord{
			Checkpoint: checkpoint,
			Hash:       hash,
			RecordedAt: now,
		})

		var paid int64
		if entry := shipmentEntity.ScheduleEntry(checkpoint); entry != nil && !entry.Paid {
			paid, err = s.escrow.ReleasePercent(ctx, shipmentEntity, entry.Percent)
			if err != nil {
				return err
			}
			if paid > 0 {
				entry.Paid = true
			}
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		liveUntil := now + cfg.TTLExtension
		if err := s.repository.Save(ctx, shipmentEntity, liveUntil); err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}

		toEmit := []events.Event{{
			Topic:      events.TopicMilestoneRecorded,
			ShipmentID: id,
			Actor:      caller.String(),
			Checkpoint: checkpoint,
			Hash:       hash.String(),
		}}
		if paid > 0 {
			toEmit = append(toEmit, events.Event{
				Topic:      events.TopicEscrowReleased,
				ShipmentID: id,
				Subject:    shipmentEntity.Carrier.String(),
				Checkpoint: checkpoint,
				Amount:     paid,
			})
		}

		emitted, err = s.buildEvents(ctx, liveUntil, toEmit...)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// Handoff передаёт груз другому перевозчику из белого списка компании.
func (s *Shipment) Handoff(ctx context.Context, caller entities.Address, id uint64, newCarrier entities.Address) error {
	if !newCarrier.IsValid() {
		return ErrInvalidAddress
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipmentEntity, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if caller != shipmentEntity.Carrier {
			return ErrUnauthorized
		}
		if shipmentEntity.Status.IsTerminal() || shipmentEntity.Status == entities.ShipmentDisputed {
			return ErrInvalidStatusTransition
		}

		whitelisted, err := s.roles.IsWhitelisted(ctx, shipmentEntity.Sender, newCarrier, now)
		if err != nil {
			return fmt.Errorf("check whitelist: %w", err)
		}
		if !whitelisted {
			return ErrNotWhitelisted
		}

		prevCarrier := shipmentEntity.Carrier
		shipmentEntity.Carrier = newCarrier
		shipmentEntity.UpdatedAt = now

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		liveUntil := now + cfg.TTLExtension
		if err := s.repository.Save(ctx, shipmentEntity, liveUntil); err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}

		emitted, err = s.buildEvents(ctx, liveUntil,
			events.Event{
				Topic:      events.TopicShipmentHandoff,
				ShipmentID: id,
				Actor:      prevCarrier.String(),
				Subject:    newCarrier.String(),
			},
			events.Event{
				Topic:      events.TopicNotification,
				ShipmentID: id,
				Kind:       events.TopicShipmentHandoff,
				Recipient:  newCarrier.String(),
			},
		)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// ConfirmDelivery принимает подтверждение получателя: терминальный Delivered,
// остаток эскроу уходит перевозчику, запись архивируется.
func (s *Shipment) ConfirmDelivery(ctx context.Context, caller entities.Address, id uint64, confirmation entities.Hash) error {
	if !isValidHash(confirmation) {
		return ErrInvalidHash
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipmentEntity, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if caller != shipmentEntity.Receiver {
			return ErrUnauthorized
		}
		if !isMovementStatus(shipmentEntity.Status) {
			return ErrInvalidStatusTransition
		}

		prev := shipmentEntity.Status
		shipmentEntity.Status = entities.ShipmentDelivered
		shipmentEntity.UpdatedAt = now
		shipmentEntity.DeliveryConfirmation = &confirmation

		released, err := s.escrow.ReleaseAll(ctx, shipmentEntity)
		if err != nil {
			return err
		}

		liveUntil, err := s.finishShipment(ctx, shipmentEntity, prev, now)
		if err != nil {
			return err
		}

		toEmit := []events.Event{{
			Topic:      events.TopicDeliveryConfirmed,
			ShipmentID: id,
			Actor:      caller.String(),
			Hash:       confirmation.String(),
		}}
		if released > 0 {
			toEmit = append(toEmit, events.Event{
				Topic:      events.TopicEscrowReleased,
				ShipmentID: id,
				Subject:    shipmentEntity.Carrier.String(),
				Amount:     released,
			})
		}
		toEmit = append(toEmit, events.Event{
			Topic:      events.TopicNotification,
			ShipmentID: id,
			Kind:       events.TopicDeliveryConfirmed,
			Recipient:  shipmentEntity.Sender.String(),
		})

		emitted, err = s.buildEvents(ctx, liveUntil, toEmit...)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// Cancel отменяет отправку по запросу отправителя или админа. Остаток эскроу возвращается
// компании. Спор отменой не закрывается.
func (s *Shipment) Cancel(ctx context.Context, caller entities.Address, id uint64) error {
	return s.cancel(ctx, caller, id, events.TopicShipmentCancelled, false)
}

// RefundEscrow делает прямой возврат эскроу отправителю; по семантике отменяет
// отправку. Требует ненулевого остатка.
func (s *Shipment) RefundEscrow(ctx context.Context, caller entities.Address, id uint64) error {
	return s.cancel(ctx, caller, id, events.TopicShipmentCancelled, true)
}

func (s *Shipment) cancel(ctx context.Context, caller entities.Address, id uint64, topic string, requireRefund bool) error {
	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipmentEntity, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}

		isAdmin, err := s.isAdmin(ctx, caller)
		if err != nil {
			return err
		}
		if caller != shipmentEntity.Sender && !isAdmin {
			return ErrUnauthorized
		}
		if shipmentEntity.Status.IsTerminal() {
			return ErrAlreadyTerminal
		}
		if shipmentEntity.Status == entities.ShipmentDisputed {
			return ErrInvalidStatusTransition
		}

		prev := shipmentEntity.Status
		shipmentEntity.Status = entities.ShipmentCancelled
		shipmentEntity.UpdatedAt = now

		refunded, err := s.escrow.RefundAll(ctx, shipmentEntity)
		if err != nil {
			return err
		}
		if requireRefund && refunded == 0 {
			return ErrNothingToRefund
		}

		liveUntil, err := s.finishShipment(ctx, shipmentEntity, prev, now)
		if err != nil {
			return err
		}

		toEmit := []events.Event{{
			Topic:      topic,
			ShipmentID: id,
			Actor:      caller.String(),
		}}
		if refunded > 0 {
			toEmit = append(toEmit, events.Event{
				Topic:      events.TopicEscrowRefunded,
				ShipmentID: id,
				Subject:    shipmentEntity.Sender.String(),
				Amount:     refunded,
			})
		}
		toEmit = append(toEmit, events.Event{
			Topic:      events.TopicNotification,
			ShipmentID: id,
			Kind:       topic,
			Recipient:  shipmentEntity.Carrier.String(),
		})

		emitted, err = s.buildEvents(ctx, liveUntil, toEmit...)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// CheckDeadline проверяет дедлайн, вызывать может кто угодно. Просроченная активная
// отправка отменяется с возвратом остатка; заработанные чекпоинты
// остаются у перевозчика. Терминальная отправка — no-op.
func (s *Shipment) CheckDeadline(ctx context.Context, id uint64) (bool, error) {
	var (
		expired bool
		emitted []events.Event
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Timestamp()
		shipmentEntity, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if shipmentEntity.Status.IsTerminal() {
			return nil
		}
		if shipmentEntity.Status == entities.ShipmentDisputed {
			// спор не истекает по дедлайну, его закрывает админ
			return nil
		}
		if now <= shipmentEntity.Deadline {
			return ErrNotYetExpired
		}

		prev := shipmentEntity.Status
		shipmentEntity.Status = entities.ShipmentCancelled
		shipmentEntity.UpdatedAt = now

		refunded, err := s.escrow.RefundAll(ctx, shipmentEntity)
		if err != nil {
			return err
		}

		liveUntil, err := s.finishShipment(ctx, shipmentEntity, prev, now)
		if err != nil {
			return err
		}

		toEmit := []events.Event{{
			Topic:      events.TopicShipmentExpired,
			ShipmentID: id,
		}}
		if refunded > 0 {
			toEmit = append(toEmit, events.Event{
				Topic:      events.TopicEscrowRefunded,
				ShipmentID: id,
				Subject:    shipmentEntity.Sender.String(),
				Amount:     refunded,
			})
		}

		emitted, err = s.buildEvents(ctx, liveUntil, toEmit...)
		if err != nil {
			return err
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.publisher.Emit(emitted...)
	return expired, nil
}

// ExpireDue прогоняет CheckDeadline по просроченным активным отправкам.
func (s *Shipment) ExpireDue(ctx context.Context, limit int) (int, error) {
	ids, err := s.repository.ExpiredActiveIDs(ctx, s.clock.Timestamp(), limit)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		ok, err := s.CheckDeadline(ctx, id)
		if err != nil {
			return expired, fmt.Errorf("check deadline %d: %w", id, err)
		}
		if ok {
			expired++
		}
	}
	return expired, nil
}

// VerifyDeliveryProof сверяет хеш с записанным подтверждением, без записи.
func (s *Shipment) VerifyDeliveryProof(ctx context.Context, id uint64, proof entities.Hash) (bool, error) {
	if !proof.IsValid() {
		return false, ErrInvalidHash
	}

	shipmentEntity, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if shipmentEntity.DeliveryConfirmation == nil {
		return false, ErrNoDeliveryProof
	}
	return *shipmentEntity.DeliveryConfirmation == proof, nil
}

func (s *Shipment) Get(ctx context.Context, id uint64) (*entities.Shipment, error) {
	return s.repository.Get(ctx, id, s.clock.Timestamp())
}

func (s *Shipment) Metadata(ctx context.Context) (*entities.ContractMetadata, error) {
	version, codeHash, err := s.engine.Version(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.roles.Admins(ctx)
	if err != nil {
		return nil, fmt.Errorf("load admins: %w", err)
	}
	paused, err := s.engine.Paused(ctx)
	if err != nil {
		return nil, err
	}
	analytics, err := s.engine.Analytics(ctx)
	if err != nil {
		return nil, err
	}

	var total uint64
	for _, count := range analytics.StatusCounts {
		total += count
	}

	return &entities.ContractMetadata{
		Version:        version,
		CodeHash:       codeHash,
		Admins:         admins,
		Paused:         paused,
		TotalShipments: total,
		TotalDisputes:  analytics.TotalDisputes,
	}, nil
}

func (s *Shipment) Analytics(ctx context.Context) (entities.Analytics, error) {
	return s.engine.Analytics(ctx)
}

// finishShipment: терминальная запись уезжает во временный ярус,
// счётчик активных отправок компании уменьшается.
func (s *Shipment) finishShipment(ctx context.Context, shipmentEntity *entities.Shipment, prev entities.ShipmentStatus, now uint64) (uint64, error) {
	cfg, err := s.engine.Config(ctx)
	if err != nil {
		return 0, fmt.Errorf("load config: %w", err)
	}
	liveUntil := now + cfg.TTLExtension

	if err := s.repository.Archive(ctx, shipmentEntity, liveUntil); err != nil {
		return 0, fmt.Errorf("archive shipment: %w", err)
	}
	if err := s.repository.AddCompanyActive(ctx, shipmentEntity.Sender, -1, liveUntil); err != nil {
		return 0, fmt.Errorf("count active shipments: %w", err)
	}
	if err := s.bumpStatusCount(ctx, prev, shipmentEntity.Status); err != nil {
		return 0, err
	}
	return liveUntil, nil
}

func (s *Shipment) bumpStatusCount(ctx context.Context, from, to entities.ShipmentStatus) error {
	analytics, err := s.engine.Analytics(ctx)
	if err != nil {
		return fmt.Errorf("load analytics: %w", err)
	}

	if from != "" && analytics.StatusCounts[from] > 0 {
		analytics.StatusCounts[from]--
	}
	analytics.StatusCounts[to]++

	if err := s.engine.SaveAnalytics(ctx, analytics); err != nil {
		return fmt.Errorf("save analytics: %w", err)
	}
	return nil
}

// buildEvents проставляет seq и время, ведёт счётчик событий отправки.
func (s *Shipment) buildEvents(ctx context.Context, liveUntil uint64, toEmit ...events.Event) ([]events.Event, error) {
	now := s.clock.Timestamp()
	built := make([]events.Event, 0, len(toEmit))

	for _, event := range toEmit {
		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return nil, fmt.Errorf("next seq: %w", err)
		}
		event.Seq = seq
		event.LedgerTS = now

		if event.ShipmentID != 0 {
			if _, err := s.repository.IncEventCount(ctx, event.ShipmentID, liveUntil); err != nil {
				return nil, err
			}
		}
		built = append(built, event)
	}
	return built, nil
}

func (s *Shipment) requireNotPaused(ctx context.Context) error {
	paused, err := s.engine.Paused(ctx)
	if err != nil {
		return fmt.Errorf("check paused: %w", err)
	}
	if paused {
		return ErrPaused
	}
	return nil
}

func (s *Shipment) isAdmin(ctx context.Context, caller entities.Address) (bool, error) {
	admins, err := s.roles.Admins(ctx)
	if err != nil {
		return false, fmt.Errorf("load admins: %w", err)
	}
	return containsAddress(admins, caller), nil
}
