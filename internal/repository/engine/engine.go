package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/repository/state"
)

// Repository хранит глобальные записи движка: конфигурацию, паузу,
// версию кода и аналитические счётчики.
type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

type pausedDB struct {
	Paused bool `json:"paused"`
}

type versionDB struct {
	Version  uint32 `json:"version"`
	CodeHash string `json:"code_hash"`
}

type analyticsDB struct {
	TotalEscrowVolume int64             `json:"total_escrow_volume"`
	TotalDisputes     uint64            `json:"total_disputes"`
	StatusCounts      map[string]uint64 `json:"status_counts"`
}

func (r *Repository) Config(ctx context.Context) (entities.EngineConfig, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyEngineConfig)
	if err != nil {
		return entities.EngineConfig{}, fmt.Errorf("unexpected engine repository config error: %w", err)
	}
	if !ok {
		return entities.DefaultEngineConfig(), nil
	}

	var cfg entities.EngineConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return entities.EngineConfig{}, fmt.Errorf("unexpected engine repository config error: %w", err)
	}
	return cfg, nil
}

func (r *Repository) SetConfig(ctx context.Context, cfg entities.EngineConfig) error {
	value, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unexpected engine repository config error: %w", err)
	}
	if err := r.store.Set(ctx, state.KeyEngineConfig, state.TierGlobal, value, state.NoExpiry); err != nil {
		return fmt.Errorf("unexpected engine repository config error: %w", err)
	}
	return nil
}

func (r *Repository) Paused(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyPaused)
	if err != nil {
		return false, fmt.Errorf("unexpected engine repository paused error: %w", err)
	}
	if !ok {
		return false, nil
	}

	var model pausedDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return false, fmt.Errorf("unexpected engine repository paused error: %w", err)
	}
	return model.Paused, nil
}

func (r *Repository) SetPaused(ctx context.Context, paused bool) error {
	value, err := json.Marshal(pausedDB{Paused: paused})
	if err != nil {
		return fmt.Errorf("unexpected engine repository paused error: %w", err)
	}
	if err := r.store.Set(ctx, state.KeyPaused, state.TierGlobal, value, state.NoExpiry); err != nil {
		return fmt.Errorf("unexpected engine repository paused error: %w", err)
	}
	return nil
}

func (r *Repository) Version(ctx context.Context) (uint32, entities.Hash, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyVersion)
	if err != nil {
		return 0, "", fmt.Errorf("unexpected engine repository version error: %w", err)
	}
	if !ok {
		return 1, "", nil
	}

	var model versionDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return 0, "", fmt.Errorf("unexpected engine repository version error: %w", err)
	}
	return model.Version, entities.Hash(model.CodeHash), nil
}

func (r *Repository) SetVersion(ctx context.Context, version uint32, codeHash entities.Hash) error {
	value, err := json.Marshal(versionDB{Version: version, CodeHash: codeHash.String()})
	if err != nil {
		return fmt.Errorf("unexpected engine repository version error: %w", err)
	}
	if err := r.store.Set(ctx, state.KeyVersion, state.TierGlobal, value, state.NoExpiry); err != nil {
		return fmt.Errorf("unexpected engine repository version error: %w", err)
	}
	return nil
}

func (r *Repository) Analytics(ctx context.Context) (entities.Analytics, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyAnalytics)
	if err != nil {
		return entities.Analytics{}, fmt.Errorf("unexpected engine repository analytics error: %w", err)
	}

	analytics := entities.Analytics{StatusCounts: map[entities.ShipmentStatus]uint64{}}
	if !ok {
		return analytics, nil
	}

	var model analyticsDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return entities.Analytics{}, fmt.Errorf("unexpected engine repository analytics error: %w", err)
	}

	analytics.TotalEscrowVolume = model.TotalEscrowVolume
	analytics.TotalDisputes = model.TotalDisputes
	for status, count := range model.StatusCounts {
		analytics.StatusCounts[entities.ShipmentStatus(status)] = count
	}
	return analytics, nil
}

func (r *Repository) SaveAnalytics(ctx context.Context, analytics entities.Analytics) error {
	model := analyticsDB{
		TotalEscrowVolume: analytics.TotalEscrowVolume,
		TotalDisputes:     analytics.TotalDisputes,
		StatusCounts:      map[string]uint64{},
	}
	for status, count := range analytics.StatusCounts {
		model.StatusCounts[status.String()] = count
	}

	value, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("unexpected engine repository analytics error: %w", err)
	}
	if err := r.store.Set(ctx, state.KeyAnalytics, state.TierGlobal, value, state.NoExpiry); err != nil {
		return fmt.Errorf("unexpected engine repository analytics error: %w", err)
	}
	return nil
}
