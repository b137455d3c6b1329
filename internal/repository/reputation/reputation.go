package reputation

import (
	"context"
	"encoding/json"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/repository/state"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, tier state.Tier, value []byte, liveUntil uint64) error
	ExtendTTL(ctx context.Context, key string, minUntil uint64) error
}

// Repository хранит счётчики репутации перевозчика (персистентный ярус).
type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

type reputationDB struct {
	DisputesLost uint64 `json:"disputes_lost"`
	Breaches     uint64 `json:"breaches"`
}

func (r *Repository) Get(ctx context.Context, carrier entities.Address) (*entities.CarrierReputation, error) {
	raw, ok, err := r.store.Get(ctx, state.ReputationKey(carrier))
	if err != nil {
		return nil, fmt.Errorf("unexpected reputation repository get error: %w", err)
	}

	reputation := &entities.CarrierReputation{Carrier: carrier}
	if !ok {
		return reputation, nil
	}

	var model reputationDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("unexpected reputation repository get error: %w", err)
	}

	reputation.DisputesLost = model.DisputesLost
	reputation.Breaches = model.Breaches
	return reputation, nil
}

func (r *Repository) Save(ctx context.Context, reputation *entities.CarrierReputation, liveUntil uint64) error {
	value, err := json.Marshal(reputationDB{
		DisputesLost: reputation.DisputesLost,
		Breaches:     reputation.Breaches,
	})
	if err != nil {
		return fmt.Errorf("unexpected reputation repository save error: %w", err)
	}

	err = r.store.Set(ctx, state.ReputationKey(reputation.Carrier), state.TierPersistent, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected reputation repository save error: %w", err)
	}

	return nil
}
