package ledgerclock

import (
	"context"
	"sync/atomic"
)

// ManualClock — управляемые часы для тестов.
type ManualClock struct {
	now uint64
	seq atomic.Uint64
}

func NewManual(now uint64) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Timestamp() uint64 {
	return atomic.LoadUint64(&c.now)
}

func (c *ManualClock) Advance(seconds uint64) {
	atomic.AddUint64(&c.now, seconds)
}

func (c *ManualClock) NextSeq(_ context.Context) (uint64, error) {
	return c.seq.Add(1), nil
}
