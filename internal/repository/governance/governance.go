package governance

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	sq "github.com/Masterminds/squirrel"

	"shipledger/internal/entities"
	"shipledger/internal/repository/state"
	"shipledger/internal/service/governance"
)

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

func (r *Repository) NextID(ctx context.Context) (uint64, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyProposalSeq)
	if err != nil {
		return 0, fmt.Errorf("unexpected governance repository next id error: %w", err)
	}

	var counter counterDB
	if ok {
		if err := json.Unmarshal(raw, &counter); err != nil {
			return 0, fmt.Errorf("unexpected governance repository next id error: %w", err)
		}
	}
	if counter.Value == math.MaxUint64 {
		return 0, governance.ErrOverflow
	}

	counter.Value++
	value, err := json.Marshal(counter)
	if err != nil {
		return 0, fmt.Errorf("unexpected governance repository next id error: %w", err)
	}
	if err := r.store.Set(ctx, state.KeyProposalSeq, state.TierGlobal, value, state.NoExpiry); err != nil {
		return 0, fmt.Errorf("unexpected governance repository next id error: %w", err)
	}

	return counter.Value, nil
}

func (r *Repository) Get(ctx context.Context, id uint64, now uint64) (*entities.Proposal, error) {
	raw, ok, err := r.store.GetLive(ctx, state.ProposalKey(id), now)
	if err != nil {
		return nil, fmt.Errorf("unexpected governance repository get error: %w", err)
	}
	if !ok {
		return nil, governance.ErrProposalNotFound
	}

	var model ProposalDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("unexpected governance repository get error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Save(ctx context.Context, proposal *entities.Proposal, liveUntil uint64) error {
	value, err := json.Marshal(FromDomain(proposal))
	if err != nil {
		return fmt.Errorf("unexpected governance repository save error: %w", err)
	}

	err = r.store.Set(ctx, state.ProposalKey(proposal.ID), state.TierPersistent, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected governance repository save error: %w", err)
	}

	return nil
}

func (r *Repository) SetDelegation(ctx context.Context, delegation entities.Delegation, liveUntil uint64) error {
	value, err := json.Marshal(delegationDB{
		Delegate: delegation.Delegate.String(),
		SetAt:    delegation.SetAt,
	})
	if err != nil {
		return fmt.Errorf("unexpected governance repository delegation error: %w", err)
	}

	err = r.store.Set(ctx, state.DelegationKey(delegation.Delegator), state.TierPersistent, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected governance repository delegation error: %w", err)
	}

	return nil
}

func (r *Repository) ClearDelegation(ctx context.Context, delegator entities.Address) error {
	err := r.store.Delete(ctx, state.DelegationKey(delegator))
	if err != nil {
		return fmt.Errorf("unexpected governance repository delegation error: %w", err)
	}
	return nil
}

// DelegatorsOf возвращает адреса, делегировавшие свою силу delegate
// (одноуровневая делегация, обратный поиск по префиксу).
func (r *Repository) DelegatorsOf(ctx context.Context, delegate entities.Address, now uint64) ([]entities.Address, error) {
	pred := sq.Expr(`value->>'delegate' = ?`, delegate.String())

	entries, err := r.store.SelectPrefix(ctx, state.PrefixDelegation, now, pred)
	if err != nil {
		return nil, fmt.Errorf("unexpected governance repository delegators error: %w", err)
	}

	delegators := make([]entities.Address, 0, len(entries))
	for _, entry := range entries {
		delegators = append(delegators, entities.Address(entry.Key[len(state.PrefixDelegation):]))
	}
	return delegators, nil
}

// Delegation возвращает делегата адреса, если делегация установлена.
func (r *Repository) Delegation(ctx context.Context, delegator entities.Address, now uint64) (*entities.Delegation, error) {
	raw, ok, err := r.store.GetLive(ctx, state.DelegationKey(delegator), now)
	if err != nil {
		return nil, fmt.Errorf("unexpected governance repository delegation error: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var model delegationDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("unexpected governance repository delegation error: %w", err)
	}

	return &entities.Delegation{
		Delegator: delegator,
		Delegate:  entities.Address(model.Delegate),
		SetAt:     model.SetAt,
	}, nil
}
