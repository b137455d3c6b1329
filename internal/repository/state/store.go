package state

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Tier определяет ярус хранения записи. Глобальный ярус не истекает и держит
// только данные ограниченной кардинальности; персистентный ярус живёт
// по «ренте» (live_until продлевается при каждом обращении);
// временный ярус дёшев и истекает сам.
type Tier int16

const (
	TierGlobal     Tier = 0
	TierPersistent Tier = 1
	TierTemporary  Tier = 2
)

// NoExpiry — запись без срока жизни (глобальный ярус).
const NoExpiry uint64 = 0

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var ErrNotFound = errors.New("state entry not found")

type Entry struct {
	Key       string
	Tier      Tier
	Value     []byte
	LiveUntil uint64
}

// Store реализует трёхъярусное KV-хранилище контрактного состояния поверх
// одной таблицы Postgres. Значения — JSON-документы.
type Store struct {
	querier Querier
}

func New(querier Querier) *Store {
	return &Store{querier: querier}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM contract_state WHERE key = $1`

	var value []byte
	err := s.querier.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("unexpected state get error: %w", err)
	}

	return value, true, nil
}

// GetLive возвращает запись, только если её срок жизни не истёк.
func (s *Store) GetLive(ctx context.Context, key string, now uint64) ([]byte, bool, error) {
	query := `SELECT value FROM contract_state
		WHERE key = $1 AND (live_until IS NULL OR live_until >= $2)`

	var value []byte
	err := s.querier.QueryRow(ctx, query, key, now).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("unexpected state get error: %w", err)
	}

	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, tier Tier, value []byte, liveUntil uint64) error {
	query := `INSERT INTO contract_state (key, tier, value, live_until)
		VALUES ($1, $2, $3, NULLIF($4, 0))
		ON CONFLICT (key) DO UPDATE
		SET tier = EXCLUDED.tier, value = EXCLUDED.value, live_until = EXCLUDED.live_until`

	_, err := s.querier.Exec(ctx, query, key, int16(tier), value, liveUntil)
	if err != nil {
		return fmt.Errorf("unexpected state set error: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM contract_state WHERE key = $1`

	_, err := s.querier.Exec(ctx, query, key)
	if err != nil {
		return fmt.Errorf("unexpected state delete error: %w", err)
	}

	return nil
}

// ExtendTTL продлевает ренту записи не менее чем до minUntil.
// Уже больший срок не укорачивается.
func (s *Store) ExtendTTL(ctx context.Context, key string, minUntil uint64) error {
	query := `UPDATE contract_state
		SET live_until = GREATEST(live_until, $2)
		WHERE key = $1 AND live_until IS NOT NULL`

	_, err := s.querier.Exec(ctx, query, key, minUntil)
	if err != nil {
		return fmt.Errorf("unexpected state extend error: %w", err)
	}

	return nil
}

// PurgeExpired удаляет записи с истёкшей рентой. Возвращает число удалённых.
func (s *Store) PurgeExpired(ctx context.Context, now uint64) (int64, error) {
	query := `DELETE FROM contract_state
		WHERE live_until IS NOT NULL AND live_until < $1`

	tag, err := s.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected state purge error: %w", err)
	}

	return tag.RowsAffected(), nil
}

// SelectPrefix выбирает живые записи по префиксу ключа с необязательным
// предикатом по JSON-значению.
func (s *Store) SelectPrefix(ctx context.Context, prefix string, now uint64, pred sq.Sqlizer) ([]Entry, error) {
	builder := qb.
		Select("key", "tier", "value", "COALESCE(live_until, 0)").
		From("contract_state").
		Where(sq.Like{"key": prefix + "%"}).
		Where(sq.Or{
			sq.Eq{"live_until": nil},
			sq.GtOrEq{"live_until": now},
		}).
		OrderBy("key")

	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected state select error: %w", err)
	}

	rows, err := s.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected state select error: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Tier, &e.Value, &e.LiveUntil); err != nil {
			return nil, fmt.Errorf("unexpected state select error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected state select error: %w", err)
	}

	return entries, nil
}
