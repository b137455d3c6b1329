package roles

import (
	"context"
	"encoding/json"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/repository/state"
	"shipledger/internal/service/identity"
)

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

type adminsDB struct {
	Addresses []string `json:"addresses"`
}

type grantDB struct {
	GrantedAt uint64 `json:"granted_at"`
}

type transferDB struct {
	Proposer  string `json:"proposer"`
	Successor string `json:"successor"`
}

// Admins возвращает список мультисиг-админов, глобальный ярус.
func (r *Repository) Admins(ctx context.Context) ([]entities.Address, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyAdmins)
	if err != nil {
		return nil, fmt.Errorf("unexpected roles repository admins error: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var model adminsDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("unexpected roles repository admins error: %w", err)
	}

	admins := make([]entities.Address, 0, len(model.Addresses))
	for _, a := range model.Addresses {
		admins = append(admins, entities.Address(a))
	}
	return admins, nil
}

func (r *Repository) SetAdmins(ctx context.Context, admins []entities.Address) error {
	model := adminsDB{Addresses: make([]string, 0, len(admins))}
	for _, a := range admins {
		model.Addresses = append(model.Addresses, a.String())
	}

	value, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("unexpected roles repository admins error: %w", err)
	}
	if err := r.store.Set(ctx, state.KeyAdmins, state.TierGlobal, value, state.NoExpiry); err != nil {
		return fmt.Errorf("unexpected roles repository admins error: %w", err)
	}

	return nil
}

func (r *Repository) GrantRole(ctx context.Context, addr entities.Address, role entities.Role, grantedAt, liveUntil uint64) error {
	value, err := json.Marshal(grantDB{GrantedAt: grantedAt})
	if err != nil {
		return fmt.Errorf("unexpected roles repository grant error: %w", err)
	}

	err = r.store.Set(ctx, state.RoleKey(addr, role), state.TierPersistent, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected roles repository grant error: %w", err)
	}

	return nil
}

func (r *Repository) HasRole(ctx context.Context, addr entities.Address, role entities.Role, now uint64) (bool, error) {
	_, ok, err := r.store.GetLive(ctx, state.RoleKey(addr, role), now)
	if err != nil {
		return false, fmt.Errorf("unexpected roles repository has role error: %w", err)
	}
	return ok, nil
}

func (r *Repository) ExtendRoleTTL(ctx context.Context, addr entities.Address, role entities.Role, minUntil uint64) error {
	err := r.store.ExtendTTL(ctx, state.RoleKey(addr, role), minUntil)
	if err != nil {
		return fmt.Errorf("unexpected roles repository extend error: %w", err)
	}
	return nil
}

func (r *Repository) SetWhitelisted(ctx context.Context, company, carrier entities.Address, grantedAt, liveUntil uint64) error {
	value, err := json.Marshal(grantDB{GrantedAt: grantedAt})
	if err != nil {
		return fmt.Errorf("unexpected roles repository whitelist error: %w", err)
	}

	err = r.store.Set(ctx, state.WhitelistKey(company, carrier), state.TierPersistent, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected roles repository whitelist error: %w", err)
	}

	return nil
}

func (r *Repository) RemoveWhitelisted(ctx context.Context, company, carrier entities.Address) error {
	err := r.store.Delete(ctx, state.WhitelistKey(company, carrier))
	if err != nil {
		return fmt.Errorf("unexpected roles repository whitelist error: %w", err)
	}
	return nil
}

func (r *Repository) IsWhitelisted(ctx context.Context, company, carrier entities.Address, now uint64) (bool, error) {
	_, ok, err := r.store.GetLive(ctx, state.WhitelistKey(company, carrier), now)
	if err != nil {
		return false, fmt.Errorf("unexpected roles repository whitelist error: %w", err)
	}
	return ok, nil
}

func (r *Repository) SetAdminTransfer(ctx context.Context, transfer entities.AdminTransfer) error {
	value, err := json.Marshal(transferDB{
		Proposer:  transfer.Proposer.String(),
		Successor: transfer.Successor.String(),
	})
	if err != nil {
		return fmt.Errorf("unexpected roles repository transfer error: %w", err)
	}

	err = r.store.Set(ctx, state.KeyAdminTransfer, state.TierGlobal, value, state.NoExpiry)
	if err != nil {
		return fmt.Errorf("unexpected roles repository transfer error: %w", err)
	}

	return nil
}

func (r *Repository) AdminTransfer(ctx context.Context) (*entities.AdminTransfer, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyAdminTransfer)
	if err != nil {
		return nil, fmt.Errorf("unexpected roles repository transfer error: %w", err)
	}
	if !ok {
		return nil, identity.ErrNoPendingTransfer
	}

	var model transferDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("unexpected roles repository transfer error: %w", err)
	}

	return &entities.AdminTransfer{
		Proposer:  entities.Address(model.Proposer),
		Successor: entities.Address(model.Successor),
	}, nil
}

func (r *Repository) ClearAdminTransfer(ctx context.Context) error {
	err := r.store.Delete(ctx, state.KeyAdminTransfer)
	if err != nil {
		return fmt.Errorf("unexpected roles repository transfer error: %w", err)
	}
	return nil
}
