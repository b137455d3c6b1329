package escrow

import (
	"context"
	"encoding/json"
	"fmt"

	"shipledger/internal/entities"
	"shipledger/internal/repository/state"
	"shipledger/internal/service/escrow"
)

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

type escrowDB struct {
	ShipmentID uint64 `json:"shipment_id"`
	Locked     int64  `json:"locked"`
	Deposited  int64  `json:"deposited"`
}

func (r *Repository) Get(ctx context.Context, shipmentID uint64, now uint64) (*entities.Escrow, error) {
	raw, ok, err := r.store.GetLive(ctx, state.EscrowKey(shipmentID), now)
	if err != nil {
		return nil, fmt.Errorf("unexpected escrow repository get error: %w", err)
	}
	if !ok {
		return nil, escrow.ErrEscrowNotFound
	}

	var model escrowDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("unexpected escrow repository get error: %w", err)
	}

	return &entities.Escrow{
		ShipmentID: model.ShipmentID,
		Locked:     model.Locked,
		Deposited:  model.Deposited,
	}, nil
}

func (r *Repository) Save(ctx context.Context, escrowEntity *entities.Escrow, liveUntil uint64) error {
	value, err := json.Marshal(escrowDB{
		ShipmentID: escrowEntity.ShipmentID,
		Locked:     escrowEntity.Locked,
		Deposited:  escrowEntity.Deposited,
	})
	if err != nil {
		return fmt.Errorf("unexpected escrow repository save error: %w", err)
	}

	err = r.store.Set(ctx, state.EscrowKey(escrowEntity.ShipmentID), state.TierPersistent, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected escrow repository save error: %w", err)
	}

	return nil
}

// Archive переводит исчерпанный эскроу во временный ярус вместе с отправкой.
func (r *Repository) Archive(ctx context.Context, escrowEntity *entities.Escrow, liveUntil uint64) error {
	value, err := json.Marshal(escrowDB{
		ShipmentID: escrowEntity.ShipmentID,
		Locked:     escrowEntity.Locked,
		Deposited:  escrowEntity.Deposited,
	})
	if err != nil {
		return fmt.Errorf("unexpected escrow repository archive error: %w", err)
	}

	err = r.store.Set(ctx, state.EscrowKey(escrowEntity.ShipmentID), state.TierTemporary, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected escrow repository archive error: %w", err)
	}

	return nil
}

func (r *Repository) ExtendTTL(ctx context.Context, shipmentID uint64, minUntil uint64) error {
	err := r.store.ExtendTTL(ctx, state.EscrowKey(shipmentID), minUntil)
	if err != nil {
		return fmt.Errorf("unexpected escrow repository extend error: %w", err)
	}
	return nil
}
