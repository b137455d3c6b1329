package ledgerclock

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Clock — источник логического времени и тотального порядка событий.
type Clock interface {
	// Timestamp — монотонное логическое время в секундах.
	Timestamp() uint64
	// NextSeq — следующий номер в тотальном порядке событий.
	NextSeq(ctx context.Context) (uint64, error)
}

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// WallClock отдаёт unix-секунды и номера из последовательности Postgres.
type WallClock struct {
	querier Querier
}

func New(querier Querier) *WallClock {
	return &WallClock{querier: querier}
}

func (c *WallClock) Timestamp() uint64 {
	return uint64(time.Now().Unix())
}

func (c *WallClock) NextSeq(ctx context.Context) (uint64, error) {
	var seq uint64
	err := c.querier.QueryRow(ctx, `SELECT nextval('audit_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next audit seq: %w", err)
	}
	return seq, nil
}
