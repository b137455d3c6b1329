package governance

import (
	"context"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type Governance struct {
	repository Repository
	roles      RolesRepository
	engine     EngineRepository
	ledger     TokenLedger
	clock      Clock
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	roles RolesRepository,
	engine EngineRepository,
	ledger TokenLedger,
	clock Clock,
	publisher EventPublisher,
	txManager TxManager,
) *Governance {
	return &Governance{
		repository: repository,
		roles:      roles,
		engine:     engine,
		ledger:     ledger,
		clock:      clock,
		publisher:  publisher,
		txManager:  txManager,
	}
}

func (s *Governance) strategy(cfg entities.EngineConfig) powerStrategy {
	if cfg.GovernanceMode == entities.GovernanceTokenWeighted {
		return &tokenStrategy{service: s, cfg: cfg}
	}
	return &multisigStrategy{service: s, cfg: cfg}
}

// Propose создаёт предложение. Снапшот голосующей силы фиксируется
// на момент создания.
func (s *Governance) Propose(ctx context.Context, caller entities.Address, action entities.ProposalAction, params entities.ProposalParams) (uint64, error) {
	if err := validateAction(action, params); err != nil {
		return 0, err
	}

	var (
		id      uint64
		emitted []events.Event
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		now := s.clock.Timestamp()
		strategy := s.strategy(cfg)

		power, err := strategy.proposerPower(ctx, caller, now)
		if err != nil {
			return err
		}
		if power < strategy.minProposerPower() {
			return ErrInsufficientPower
		}

		id, err = s.repository.NextID(ctx)
		if err != nil {
			return err
		}

		proposal := &entities.Proposal{
			ID:         id,
			Action:     action,
			Params:     params,
			Proposer:   caller,
			CreatedAt:  now,
			ExpiresAt:  now + cfg.ProposalExpiry,
			SnapshotTS: now,
		}
		// рента переживает окно голосования с запасом на исполнение
		if err := s.repository.Save(ctx, proposal, proposal.ExpiresAt+cfg.TTLExtension); err != nil {
			return err
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicProposalCreated,
			Seq:        seq,
			LedgerTS:   now,
			ProposalID: id,
			Actor:      caller.String(),
			Reason:     action.String(),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publisher.Emit(emitted...)
	return id, nil
}

// Approve регистрирует одобрение голосующего. Один раз на адрес; в токен-режиме
// одобрение блокирует токены на настроенный период.
func (s *Governance) Approve(ctx context.Context, caller entities.Address, id uint64) error {
	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		now := s.clock.Timestamp()
		proposal, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if proposal.Executed {
			return ErrProposalExecuted
		}
		if proposal.IsExpired(now) {
			return ErrProposalExpired
		}
		if proposal.HasApproved(caller) {
			return ErrAlreadyApproved
		}

		strategy := s.strategy(cfg)
		power, err := strategy.voterPower(ctx, caller, proposal)
		if err != nil {
			return err
		}
		if power <= 0 {
			return ErrUnauthorized
		}

		proposal.Approvals = append(proposal.Approvals, caller)
		proposal.ApprovalPower += power

		if err := strategy.onApprove(ctx, caller, proposal); err != nil {
			return fmt.Errorf("vote lock: %w", err)
		}
		if err := s.repository.Save(ctx, proposal, proposal.ExpiresAt+cfg.TTLExtension); err != nil {
			return err
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicProposalApproved,
			Seq:        seq,
			LedgerTS:   now,
			ProposalID: id,
			Actor:      caller.String(),
			Amount:     power,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// Execute применяет набравшее порог предложение. Ровно один раз.
func (s *Governance) Execute(ctx context.Context, caller entities.Address, id uint64) error {
	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		now := s.clock.Timestamp()
		proposal, err := s.repository.Get(ctx, id, now)
		if err != nil {
			return err
		}
		if proposal.Executed {
			return ErrProposalExecuted
		}
		if proposal.IsExpired(now) {
			return ErrProposalExpired
		}

		strategy := s.strategy(cfg)
		if proposal.ApprovalPower < strategy.threshold() {
			return ErrThresholdNotMet
		}

		actionEvent, err := s.apply(ctx, proposal)
		if err != nil {
			return err
		}

		proposal.Executed = true
		if err := s.repository.Save(ctx, proposal, proposal.ExpiresAt+cfg.TTLExtension); err != nil {
			return err
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:      events.TopicProposalExecuted,
			Seq:        seq,
			LedgerTS:   now,
			ProposalID: id,
			Actor:      caller.String(),
			Reason:     proposal.Action.String(),
		})

		if actionEvent != nil {
			actionSeq, err := s.clock.NextSeq(ctx)
			if err != nil {
				return fmt.Errorf("next seq: %w", err)
			}
			actionEvent.Seq = actionSeq
			actionEvent.LedgerTS = now
			emitted = append(emitted, *actionEvent)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

func (s *Governance) apply(ctx context.Context, proposal *entities.Proposal) (*events.Event, error) {
	switch proposal.Action {
	case entities.ActionConfigChange:
		if err := s.engine.SetConfig(ctx, *proposal.Params.Config); err != nil {
			return nil, err
		}
		return &events.Event{
			Topic:      events.TopicConfigUpdated,
			ProposalID: proposal.ID,
		}, nil

	case entities.ActionUpgrade:
		version, _, err := s.engine.Version(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.engine.SetVersion(ctx, version+1, *proposal.Params.CodeHash); err != nil {
			return nil, err
		}
		return &events.Event{
			Topic:      events.TopicContractUpgraded,
			ProposalID: proposal.ID,
			Hash:       proposal.Params.CodeHash.String(),
			Version:    version + 1,
		}, nil

	case entities.ActionSetPaused:
		if err := s.engine.SetPaused(ctx, *proposal.Params.Paused); err != nil {
			return nil, err
		}
		return nil, nil

	case entities.ActionAddAdmin:
		admins, err := s.roles.Admins(ctx)
		if err != nil {
			return nil, fmt.Errorf("load admins: %w", err)
		}
		admin := *proposal.Params.Admin
		for _, a := range admins {
			if a == admin {
				return nil, ErrInvalidParams
			}
		}
		admins = append(admins, admin)
		if len(admins) > entities.MaxMultisigAdmins {
			return nil, ErrAdminBounds
		}
		return nil, s.roles.SetAdmins(ctx, admins)

	case entities.ActionRemoveAdmin:
		admins, err := s.roles.Admins(ctx)
		if err != nil {
			return nil, fmt.Errorf("load admins: %w", err)
		}
		admin := *proposal.Params.Admin

		next := admins[:0]
		for _, a := range admins {
			if a != admin {
				next = append(next, a)
			}
		}
		if len(next) == len(admins) {
			return nil, ErrInvalidParams
		}
		if len(next) < entities.MinMultisigAdmins {
			return nil, ErrAdminBounds
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if int(cfg.MultisigThreshold) > len(next) {
			return nil, ErrAdminBounds
		}
		return nil, s.roles.SetAdmins(ctx, next)

	default:
		return nil, ErrInvalidAction
	}
}

// Delegate устанавливает (или сбрасывает пустым адресом) одноуровневую
// делегацию голосующей силы.
func (s *Governance) Delegate(ctx context.Context, caller, delegate entities.Address) error {
	if delegate != "" && !delegate.IsValid() {
		return ErrInvalidAddress
	}
	if caller == delegate {
		return ErrSelfDelegation
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Timestamp()

		if delegate == "" {
			if err := s.repository.ClearDelegation(ctx, caller); err != nil {
				return err
			}
		} else {
			// делегация только на один уровень: делегат сам не делегирует
			nested, err := s.repository.Delegation(ctx, delegate, now)
			if err != nil {
				return err
			}
			if nested != nil {
				return ErrSelfDelegation
			}

			cfg, err := s.engine.Config(ctx)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			err = s.repository.SetDelegation(ctx, entities.Delegation{
				Delegator: caller,
				Delegate:  delegate,
				SetAt:     now,
			}, now+cfg.TTLExtension)
			if err != nil {
				return err
			}
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:    events.TopicDelegationSet,
			Seq:      seq,
			LedgerTS: now,
			Actor:    caller.String(),
			Subject:  delegate.String(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

func (s *Governance) Get(ctx context.Context, id uint64) (*entities.Proposal, error) {
	return s.repository.Get(ctx, id, s.clock.Timestamp())
}

func validateAction(action entities.ProposalAction, params entities.ProposalParams) error {
	switch action {
	case entities.ActionConfigChange:
		if params.Config == nil || !params.Config.IsValid() {
			return ErrInvalidParams
		}
	case entities.ActionUpgrade:
		if params.CodeHash == nil || !params.CodeHash.IsValid() || params.CodeHash.IsZero() {
			return ErrInvalidParams
		}
	case entities.ActionSetPaused:
		if params.Paused == nil {
			return ErrInvalidParams
		}
	case entities.ActionAddAdmin, entities.ActionRemoveAdmin:
		if params.Admin == nil || !params.Admin.IsValid() {
			return ErrInvalidParams
		}
	default:
		return ErrInvalidAction
	}
	return nil
}
