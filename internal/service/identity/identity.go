package identity

import (
	"context"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/events"
)

type Identity struct {
	roles     RolesRepository
	engine    EngineRepository
	clock     Clock
	publisher EventPublisher
	txManager TxManager
}

func New(roles RolesRepository, engine EngineRepository, clock Clock, publisher EventPublisher, txManager TxManager) *Identity {
	return &Identity{
		roles:     roles,
		engine:    engine,
		clock:     clock,
		publisher: publisher,
		txManager: txManager,
	}
}

// EnsureInitialized выполняет идемпотентный бутстрап: первый запуск записывает
// список админов мультисига и порог подтверждений.
func (s *Identity) EnsureInitialized(ctx context.Context, admins []entities.Address, threshold uint32) error {
	if !withinMultisigBounds(len(admins)) {
		return ErrAdminBounds
	}
	for _, a := range admins {
		if !isValidAddress(a) {
			return ErrInvalidAddress
		}
	}
	if threshold < entities.MinMultisigAdmins || int(threshold) > len(admins) {
		return ErrAdminBounds
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.roles.Admins(ctx)
		if err != nil {
			return fmt.Errorf("load admins: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}

		if err := s.roles.SetAdmins(ctx, admins); err != nil {
			return fmt.Errorf("store admins: %w", err)
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.MultisigThreshold = threshold
		if !cfg.IsValid() {
			return ErrAdminBounds
		}
		if err := s.engine.SetConfig(ctx, cfg); err != nil {
			return fmt.Errorf("store config: %w", err)
		}
		return nil
	})
}

func (s *Identity) IsAdmin(ctx context.Context, addr entities.Address) (bool, error) {
	admins, err := s.roles.Admins(ctx)
	if err != nil {
		return false, fmt.Errorf("load admins: %w", err)
	}
	return containsAddress(admins, addr), nil
}

// GrantRole выдаёт роль компании или перевозчика. Только админ.
func (s *Identity) GrantRole(ctx context.Context, caller, addr entities.Address, role entities.Role) error {
	if !isValidAddress(addr) {
		return ErrInvalidAddress
	}
	if !role.IsGrantable() {
		return ErrInvalidRole
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireAdmin(ctx, caller); err != nil {
			return err
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		now := s.clock.Timestamp()
		if err := s.roles.GrantRole(ctx, addr, role, now, now+cfg.TTLExtension); err != nil {
			return fmt.Errorf("grant role: %w", err)
		}
		return nil
	})
}

// Roles возвращает все роли адреса.
func (s *Identity) Roles(ctx context.Context, addr entities.Address) ([]entities.Role, error) {
	if !isValidAddress(addr) {
		return nil, ErrInvalidAddress
	}

	now := s.clock.Timestamp()
	var roles []entities.Role

	isAdmin, err := s.IsAdmin(ctx, addr)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		roles = append(roles, entities.RoleAdmin)
	}

	for _, role := range []entities.Role{entities.RoleCompany, entities.RoleCarrier} {
		has, err := s.roles.HasRole(ctx, addr, role, now)
		if err != nil {
			return nil, fmt.Errorf("check role: %w", err)
		}
		if has {
			roles = append(roles, role)
		}
	}

	return roles, nil
}

// AddToWhitelist разрешает компании работать с перевозчиком.
func (s *Identity) AddToWhitelist(ctx context.Context, caller, carrier entities.Address) error {
	if !isValidAddress(carrier) {
		return ErrInvalidAddress
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Timestamp()

		if err := s.requireRole(ctx, caller, entities.RoleCompany, now); err != nil {
			return err
		}

		hasCarrier, err := s.roles.HasRole(ctx, carrier, entities.RoleCarrier, now)
		if err != nil {
			return fmt.Errorf("check carrier role: %w", err)
		}
		if !hasCarrier {
			return ErrMissingRole
		}

		cfg, err := s.engine.Config(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		liveUntil := now + cfg.TTLExtension
		if err := s.roles.SetWhitelisted(ctx, caller, carrier, now, liveUntil); err != nil {
			return fmt.Errorf("whitelist carrier: %w", err)
		}

		// рента ролей продлевается вместе с белым списком
		if err := s.roles.ExtendRoleTTL(ctx, caller, entities.RoleCompany, liveUntil); err != nil {
			return fmt.Errorf("extend company role: %w", err)
		}
		if err := s.roles.ExtendRoleTTL(ctx, carrier, entities.RoleCarrier, liveUntil); err != nil {
			return fmt.Errorf("extend carrier role: %w", err)
		}
		return nil
	})
}

func (s *Identity) RemoveFromWhitelist(ctx context.Context, caller, carrier entities.Address) error {
	if !isValidAddress(carrier) {
		return ErrInvalidAddress
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Timestamp()

		if err := s.requireRole(ctx, caller, entities.RoleCompany, now); err != nil {
			return err
		}

		if err := s.roles.RemoveWhitelisted(ctx, caller, carrier); err != nil {
			return fmt.Errorf("remove from whitelist: %w", err)
		}
		return nil
	})
}

// ProposeAdmin начинает передачу места в мультисиге (первая фаза).
func (s *Identity) ProposeAdmin(ctx context.Context, caller, successor entities.Address) error {
	if !isValidAddress(successor) {
		return ErrInvalidAddress
	}

	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		admins, err := s.roles.Admins(ctx)
		if err != nil {
			return fmt.Errorf("load admins: %w", err)
		}
		if !containsAddress(admins, caller) {
			return ErrUnauthorized
		}
		if containsAddress(admins, successor) {
			return ErrAlreadyAdmin
		}

		err = s.roles.SetAdminTransfer(ctx, entities.AdminTransfer{
			Proposer:  caller,
			Successor: successor,
		})
		if err != nil {
			return fmt.Errorf("store admin transfer: %w", err)
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:    events.TopicAdminTransferProposed,
			Seq:      seq,
			LedgerTS: s.clock.Timestamp(),
			Actor:    caller.String(),
			Subject:  successor.String(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

// AcceptAdmin завершает передачу: преемник занимает место предложившего.
func (s *Identity) AcceptAdmin(ctx context.Context, caller entities.Address) error {
	var emitted []events.Event
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		transfer, err := s.roles.AdminTransfer(ctx)
		if err != nil {
			return err
		}
		if transfer.Successor != caller {
			return ErrNotSuccessor
		}

		admins, err := s.roles.Admins(ctx)
		if err != nil {
			return fmt.Errorf("load admins: %w", err)
		}

		replaced := false
		for i, a := range admins {
			if a == transfer.Proposer {
				admins[i] = transfer.Successor
				replaced = true
				break
			}
		}
		if !replaced {
			// предложивший успел выйти из списка другим путём
			return ErrNoPendingTransfer
		}

		if err := s.roles.SetAdmins(ctx, admins); err != nil {
			return fmt.Errorf("store admins: %w", err)
		}
		if err := s.roles.ClearAdminTransfer(ctx); err != nil {
			return fmt.Errorf("clear admin transfer: %w", err)
		}

		seq, err := s.clock.NextSeq(ctx)
		if err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		emitted = append(emitted, events.Event{
			Topic:    events.TopicAdminTransferred,
			Seq:      seq,
			LedgerTS: s.clock.Timestamp(),
			Actor:    transfer.Proposer.String(),
			Subject:  transfer.Successor.String(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Emit(emitted...)
	return nil
}

func (s *Identity) requireAdmin(ctx context.Context, caller entities.Address) error {
	isAdmin, err := s.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrUnauthorized
	}
	return nil
}

func (s *Identity) requireRole(ctx context.Context, caller entities.Address, role entities.Role, now uint64) error {
	has, err := s.roles.HasRole(ctx, caller, role, now)
	if err != nil {
		return fmt.Errorf("check role: %w", err)
	}
	if !has {
		return ErrUnauthorized
	}
	return nil
}
