package dispute

import (
	"context"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type Dispute struct {
	shipments  ShipmentRepository
	reputation ReputationRepository
	roles      RolesRepository
	engine     EngineRepository
	escrow     EscrowEngine
	clock      Clock
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	shipments ShipmentRepository,
	reputation ReputationRepository,
	roles RolesRepository,
	engine EngineRepository,
	escrow EscrowEngine,
	clock Clock,
	publisher EventPublisher,
	txManager TxManager,
) *Dispute {
	return &Dispute{
		shipments:  shipments,
		reputation: reputation,
		roles:      roles,
		engine:     engine,
		escrow:     escrow,
		clock:      clock,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// Raise открывает спор. Любая из трёх сторон отправки.
func (s *Dispute) Raise(ctx context.Context, caller entities.Address, id uint64, reasonHash entities.Hash) error {
	if !reasonHash.IsValid() || reasonHash.IsZero() {
		return ErrInvalidHash
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipment, err := s.shipments.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if !isParty(shipment, caller) {
			return ErrUnauthorized
		}
		if shipment.Status.IsTerminal() || shipment.Status == entities.ShipmentDisputed {
			return ErrInvalidState
		}

		prev := shipment.Status
		shipment.Status = entities.ShipmentDisputed
		shipment.UpdatedAt = now

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		liveUntil := now + cfg.TTLExtension
		if err := s.shipments.Save(ctx, shipment, liveUntil); err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}

		analytics, err := s.engine.Analytics(ctx)
		if err != nil {
			return fmt.Errorf("load analytics: %w", err)
		}
		analytics.TotalDisputes++
		if analytics.StatusCounts[prev] > 0 {
			analytics.StatusCounts[prev]--
		}
		analytics.StatusCounts[entities.ShipmentDisputed]++
		if err := s.engine.SaveAnalytics(ctx, analytics); err != nil {
			return fmt.Errorf("save analytics: %w", err)
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicDisputeRaised,
			Seq:        seq,
			LedgerTS:   now,
			ShipmentID: id,
			Actor:      caller.String(),
			Hash:       reasonHash.String(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// Resolve закрывает спор решением админа: либо выдача перевозчику
// (Delivered), либо возврат компании (Cancelled + поражение перевозчика).
func (s *Dispute) Resolve(ctx context.Context, caller entities.Address, id uint64, resolution entities.DisputeResolution) error {
	if !isValidResolution(resolution) {
		return ErrInvalidResolution
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireAdmin(ctx, caller); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipment, err := s.shipments.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if shipment.Status != entities.ShipmentDisputed {
			return ErrInvalidState
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		liveUntil := now + cfg.TTLExtension

		var (
			moved     int64
			moveTopic string
			recipient entities.Address
		)
		switch resolution {
		case entities.ResolutionReleaseToCarrier:
			shipment.Status = entities.ShipmentDelivered
			moved, err = s.escrow.ReleaseAll(ctx, shipment)
			moveTopic = events.TopicEscrowReleased
			recipient = shipment.Carrier
		case entities.ResolutionRefundToCompany:
			shipment.Status = entities.ShipmentCancelled
			moved, err = s.escrow.RefundAll(ctx, shipment)
			moveTopic = events.TopicEscrowRefunded
			recipient = shipment.Sender
		}
		if err != nil {
			return err
		}
		shipment.UpdatedAt = now

		if err := s.shipments.Archive(ctx, shipment, liveUntil); err != nil {
			return fmt.Errorf("archive shipment: %w", err)
		}
		if err := s.shipments.AddCompanyActive(ctx, shipment.Sender, -1, liveUntil); err != nil {
			return fmt.Errorf("count active shipments: %w", err)
		}

		analytics, err := s.engine.Analytics(ctx)
		if err != nil {
			return fmt.Errorf("load analytics: %w", err)
		}
		if analytics.StatusCounts[entities.ShipmentDisputed] > 0 {
			analytics.StatusCounts[entities.ShipmentDisputed]--
		}
		analytics.StatusCounts[shipment.Status]++
		if err := s.engine.SaveAnalytics(ctx, analytics); err != nil {
			return fmt.Errorf("save analytics: %w", err)
		}

		if resolution == entities.ResolutionRefundToCompany {
			reputation, err := s.reputation.Get(ctx, shipment.Carrier)
			if err != nil {
				return err
			}
			reputation.DisputesLost++
			if err := s.reputation.Save(ctx, reputation, liveUntil); err != nil {
				return err
			}
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicDisputeResolved,
			Seq:        seq,
			LedgerTS:   now,
			ShipmentID: id,
			Actor:      caller.String(),
			Status:     shipment.Status.String(),
			Reason:     resolution.String(),
		})

		if moved > 0 {
			moveSeq, err := s.clock.NextSeq(ctx)
			if err != nil {
				return fmt.Errorf("next seq: %w", err)
			}
			emitted = append(emitted, events.Event{
				Topic:      moveTopic,
				Seq:        moveSeq,
				LedgerTS:   now,
				ShipmentID: id,
				Subject:    recipient.String(),
				Amount:     moved,
			})
		}

		notifySeq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicNotification,
			Seq:        notifySeq,
			LedgerTS:   now,
			ShipmentID: id,
			Kind:       events.TopicDisputeResolved,
			Recipient:  recipient.String(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// ReportBreach фиксирует нарушение условий перевозки. Независимо от споров.
func (s *Dispute) ReportBreach(ctx context.Context, caller entities.Address, id uint64, breach entities.BreachType, evidenceHash entities.Hash) error {
	if !isValidBreach(breach) {
		return ErrInvalidBreach
	}
	if !evidenceHash.IsValid() || evidenceHash.IsZero() {
		return ErrInvalidHash
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireNotPaused(ctx); err != nil {
			return err
		}

		now := s.clock.Timestamp()
		shipment, err := s.shipments.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if caller != shipment.Carrier {
			return ErrUnauthorized
		}
		if shipment.Status.IsTerminal() {
			return ErrInvalidState
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		liveUntil := now + cfg.TTLExtension

		reputation, err := s.reputation.Get(ctx, shipment.Carrier)
		if err != nil {
			return err
		}
		reputation.Breaches++
		if err := s.reputation.Save(ctx, reputation, liveUntil); err != nil {
			return err
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicConditionBreach,
			Seq:        seq,
			LedgerTS:   now,
			ShipmentID: id,
			Actor:      caller.String(),
			Reason:     breach.String(),
			Hash:       evidenceHash.String(),
		})

		notifySeq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicNotification,
			Seq:        notifySeq,
			LedgerTS:   now,
			ShipmentID: id,
			Kind:       events.TopicConditionBreach,
			Recipient:  shipment.Sender.String(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

func (s *Dispute) Reputation(ctx context.Context, carrier entities.Address) (*entities.CarrierReputation, error) {
	return s.reputation.Get(ctx, carrier)
}

func (s *Dispute) requireNotPaused(ctx context.Context) error {
	paused, err := s.engine.Paused(ctx)
	if err != nil {
		return fmt.Errorf("check paused: %w", err)
	}
	if paused {
		return ErrPaused
	}
	return nil
}

func (s *Dispute) requireAdmin(ctx context.Context, caller entities.Address) error {
	admins, err := s.roles.Admins(ctx)
	if err != nil {
		return fmt.Errorf("load admins: %w", err)
	}
	for _, a := range admins {
		if a == caller {
			return nil
		}
	}
	return ErrUnauthorized
}
