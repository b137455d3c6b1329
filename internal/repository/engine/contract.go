package engine

import (
	"context"

	"shipledger/internal/repository/state"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, tier state.Tier, value []byte, liveUntil uint64) error
}
