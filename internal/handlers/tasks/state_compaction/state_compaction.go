package state_compaction

import (
	"context"
	"time"

	"shipledger/pkg/logger"
)

type StateStore interface {
	PurgeExpired(ctx context.Context, now uint64) (int64, error)
}

type VoteLockStore interface {
	DeleteExpiredVoteLocks(ctx context.Context, now uint64) (int64, error)
}

type Clock interface {
	Timestamp() uint64
}

// StateCompaction удаляет записи состояния и голосовые блокировки
// с истёкшей арендой.
type StateCompaction struct {
	log      logger.Logger
	state    StateStore
	locks    VoteLockStore
	clock    Clock
	interval time.Duration
}

func NewStateCompaction(
	log logger.Logger,
	state StateStore,
	locks VoteLockStore,
	clock Clock,
	interval time.Duration,
) *StateCompaction {
	return &StateCompaction{
		log:      log,
		state:    state,
		locks:    locks,
		clock:    clock,
		interval: interval,
	}
}

func (s *StateCompaction) TTL() time.Duration {
	return s.interval
}

func (s *StateCompaction) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	now := s.clock.Timestamp()

	purged, err := s.state.PurgeExpired(ctxWithTimeout, now)
	if err != nil {
		return err
	}

	unlocked, err := s.locks.DeleteExpiredVoteLocks(ctxWithTimeout, now)
	if err != nil {
		return err
	}

	if purged > 0 || unlocked > 0 {
		s.log.With(
			logger.NewField("purged_entries", purged),
			logger.NewField("expired_vote_locks", unlocked),
		).Info("state compaction")
	}

	return nil
}

func (s *StateCompaction) Info() string {
	return "state compaction"
}
