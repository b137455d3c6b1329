package shipment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"shipledger/internal/entities"
	"shipledger/internal/repository/state"
	"shipledger/internal/service/shipment"
)

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

// NextID выдаёт следующий идентификатор из глобального счётчика.
func (r *Repository) NextID(ctx context.Context) (uint64, error) {
	raw, ok, err := r.store.Get(ctx, state.KeyShipmentSeq)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository next id error: %w", err)
	}

	var counter counterDB
	if ok {
		if err := json.Unmarshal(raw, &counter); err != nil {
			return 0, fmt.Errorf("unexpected shipment repository next id error: %w", err)
		}
	}
	if counter.Value == math.MaxUint64 {
		return 0, shipment.ErrOverflow
	}

	counter.Value++
	value, err := json.Marshal(counter)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository next id error: %w", err)
	}
	if err := r.store.Set(ctx, state.KeyShipmentSeq, state.TierGlobal, value, state.NoExpiry); err != nil {
		return 0, fmt.Errorf("unexpected shipment repository next id error: %w", err)
	}

	return counter.Value, nil
}

func (r *Repository) Get(ctx context.Context, id uint64, now uint64) (*entities.Shipment, error) {
	raw, ok, err := r.store.GetLive(ctx, state.ShipmentKey(id), now)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}
	if !ok {
		return nil, shipment.ErrShipmentNotFound
	}

	var model ShipmentDB
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&model), nil
}

// Save пишет активную отправку в персистентный ярус.
func (r *Repository) Save(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error {
	value, err := json.Marshal(FromDomain(shipmentEntity))
	if err != nil {
		return fmt.Errorf("unexpected shipment repository save error: %w", err)
	}

	err = r.store.Set(ctx, state.ShipmentKey(shipmentEntity.ID), state.TierPersistent, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository save error: %w", err)
	}

	return nil
}

// Archive переносит терминальную отправку во временный ярус:
// чтения продолжают работать до истечения срока.
func (r *Repository) Archive(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error {
	value, err := json.Marshal(FromDomain(shipmentEntity))
	if err != nil {
		return fmt.Errorf("unexpected shipment repository archive error: %w", err)
	}

	err = r.store.Set(ctx, state.ShipmentKey(shipmentEntity.ID), state.TierTemporary, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository archive error: %w", err)
	}

	return nil
}

func (r *Repository) ExtendTTL(ctx context.Context, id uint64, minUntil uint64) error {
	err := r.store.ExtendTTL(ctx, state.ShipmentKey(id), minUntil)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository extend error: %w", err)
	}
	return nil
}

// LastStatusUpdate возвращает отметку времени последнего обновления статуса
// (временный ярус, по ней работает анти-спам интервал).
func (r *Repository) LastStatusUpdate(ctx context.Context, id uint64, now uint64) (uint64, bool, error) {
	raw, ok, err := r.store.GetLive(ctx, state.StatusUpdateKey(id), now)
	if err != nil {
		return 0, false, fmt.Errorf("unexpected shipment repository last update error: %w", err)
	}
	if !ok {
		return 0, false, nil
	}

	var counter counterDB
	if err := json.Unmarshal(raw, &counter); err != nil {
		return 0, false, fmt.Errorf("unexpected shipment repository last update error: %w", err)
	}

	return counter.Value, true, nil
}

func (r *Repository) SetLastStatusUpdate(ctx context.Context, id uint64, ts uint64, liveUntil uint64) error {
	value, err := json.Marshal(counterDB{Value: ts})
	if err != nil {
		return fmt.Errorf("unexpected shipment repository last update error: %w", err)
	}

	err = r.store.Set(ctx, state.StatusUpdateKey(id), state.TierTemporary, value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository last update error: %w", err)
	}

	return nil
}

// IncEventCount увеличивает счётчик эмитированных событий отправки.
func (r *Repository) IncEventCount(ctx context.Context, id uint64, liveUntil uint64) (uint64, error) {
	key := state.EventCountKey(id)

	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository event count error: %w", err)
	}

	var counter counterDB
	if ok {
		if err := json.Unmarshal(raw, &counter); err != nil {
			return 0, fmt.Errorf("unexpected shipment repository event count error: %w", err)
		}
	}
	counter.Value++

	value, err := json.Marshal(counter)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository event count error: %w", err)
	}
	if err := r.store.Set(ctx, key, state.TierPersistent, value, liveUntil); err != nil {
		return 0, fmt.Errorf("unexpected shipment repository event count error: %w", err)
	}

	return counter.Value, nil
}

func (r *Repository) CompanyActiveCount(ctx context.Context, company entities.Address) (uint32, error) {
	raw, ok, err := r.store.Get(ctx, state.CompanyActiveKey(company))
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository company count error: %w", err)
	}
	if !ok {
		return 0, nil
	}

	var counter counterDB
	if err := json.Unmarshal(raw, &counter); err != nil {
		return 0, fmt.Errorf("unexpected shipment repository company count error: %w", err)
	}

	return uint32(counter.Value), nil
}

func (r *Repository) AddCompanyActive(ctx context.Context, company entities.Address, delta int64, liveUntil uint64) error {
	key := state.CompanyActiveKey(company)

	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository company count error: %w", err)
	}

	var counter counterDB
	if ok {
		if err := json.Unmarshal(raw, &counter); err != nil {
			return fmt.Errorf("unexpected shipment repository company count error: %w", err)
		}
	}

	next := int64(counter.Value) + delta
	if next < 0 {
		next = 0
	}
	counter.Value = uint64(next)

	value, err := json.Marshal(counter)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository company count error: %w", err)
	}
	if err := r.store.Set(ctx, key, state.TierPersistent, value, liveUntil); err != nil {
		return fmt.Errorf("unexpected shipment repository company count error: %w", err)
	}

	return nil
}

// ExpiredActiveIDs возвращает идентификаторы живых отправок с истёкшим дедлайном
// в нетерминальном статусе. Используется фоновой задачей.
func (r *Repository) ExpiredActiveIDs(ctx context.Context, now uint64, limit int) ([]uint64, error) {
	pred := sq.And{
		sq.Expr(`value->>'status' IN (?, ?, ?)`,
			entities.ShipmentCreated.String(),
			entities.ShipmentInTransit.String(),
			entities.ShipmentAtCheckpoint.String(),
		),
		sq.Expr(`(value->>'deadline')::bigint < ?`, now),
	}

	entries, err := r.store.SelectPrefix(ctx, state.PrefixShipment, now, pred)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository expired select error: %w", err)
	}

	ids := make([]uint64, 0, len(entries))
	for _, entry := range entries {
		if limit > 0 && len(ids) == limit {
			break
		}
		id, err := strconv.ParseUint(entry.Key[len(state.PrefixShipment):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository expired select error: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
