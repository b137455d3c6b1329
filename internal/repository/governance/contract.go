package governance

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"shipledger/internal/repository/state"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	GetLive(ctx context.Context, key string, now uint64) ([]byte, bool, error)
	Set(ctx context.Context, key string, tier state.Tier, value []byte, liveUntil uint64) error
	Delete(ctx context.Context, key string) error
	ExtendTTL(ctx context.Context, key string, minUntil uint64) error
	SelectPrefix(ctx context.Context, prefix string, now uint64, pred sq.Sqlizer) ([]state.Entry, error)
}
