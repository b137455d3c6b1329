package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shipledger/internal/entities"
	"shipledger/internal/repository"
)

// Repository ведёт счета токена, append-only чекпоинты балансов
// для snapshot-запросов, allowance и блокировки голосов.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Balance(ctx context.Context, addr entities.Address) (int64, error) {
	query := `SELECT balance FROM token_accounts WHERE address = $1`

	var balance int64
	err := r.querier.QueryRow(ctx, query, addr.String()).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected token repository balance error: %w", err)
	}

	return balance, nil
}

// SetBalance обновляет счёт и дописывает чекпоинт на логическое время ts.
func (r *Repository) SetBalance(ctx context.Context, addr entities.Address, balance int64, ts uint64) error {
	upsert := `INSERT INTO token_accounts (address, balance)
		VALUES ($1, $2)
		ON CONFLICT (address) DO UPDATE SET balance = EXCLUDED.balance`

	_, err := r.querier.Exec(ctx, upsert, addr.String(), balance)
	if err != nil {
		return fmt.Errorf("unexpected token repository set balance error: %w", err)
	}

	checkpoint := `INSERT INTO token_checkpoints (address, ledger_ts, balance)
		VALUES ($1, $2, $3)`

	_, err = r.querier.Exec(ctx, checkpoint, addr.String(), ts, balance)
	if err != nil {
		// Несколько изменений баланса на одном логическом тике: последний
		// чекпоинт перезаписывает предыдущий.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			update := `UPDATE token_checkpoints SET balance = $3
				WHERE address = $1 AND ledger_ts = $2`
			if _, err := r.querier.Exec(ctx, update, addr.String(), ts, balance); err != nil {
				return fmt.Errorf("unexpected token repository set balance error: %w", err)
			}
			return nil
		}
		return fmt.Errorf("unexpected token repository set balance error: %w", err)
	}

	return nil
}

// BalanceAt возвращает баланс адреса по состоянию на логическое время ts.
func (r *Repository) BalanceAt(ctx context.Context, addr entities.Address, ts uint64) (int64, error) {
	query := `SELECT balance FROM token_checkpoints
		WHERE address = $1 AND ledger_ts <= $2
		ORDER BY ledger_ts DESC
		LIMIT 1`

	var balance int64
	err := r.querier.QueryRow(ctx, query, addr.String(), ts).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected token repository balance at error: %w", err)
	}

	return balance, nil
}

func (r *Repository) Allowance(ctx context.Context, owner, spender entities.Address) (int64, error) {
	query := `SELECT amount FROM token_allowances WHERE owner = $1 AND spender = $2`

	var amount int64
	err := r.querier.QueryRow(ctx, query, owner.String(), spender.String()).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected token repository allowance error: %w", err)
	}

	return amount, nil
}

func (r *Repository) SetAllowance(ctx context.Context, owner, spender entities.Address, amount int64) error {
	query := `INSERT INTO token_allowances (owner, spender, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount`

	_, err := r.querier.Exec(ctx, query, owner.String(), spender.String(), amount)
	if err != nil {
		return fmt.Errorf("unexpected token repository set allowance error: %w", err)
	}

	return nil
}

func (r *Repository) AddVoteLock(ctx context.Context, lock entities.VoteLock) error {
	query := `INSERT INTO vote_locks (address, proposal_id, locked_until)
		VALUES ($1, $2, $3)
		ON CONFLICT (address, proposal_id) DO UPDATE SET locked_until = EXCLUDED.locked_until`

	_, err := r.querier.Exec(ctx, query, lock.Address.String(), lock.ProposalID, lock.LockedUntil)
	if err != nil {
		return fmt.Errorf("unexpected token repository vote lock error: %w", err)
	}

	return nil
}

func (r *Repository) HasActiveVoteLock(ctx context.Context, addr entities.Address, now uint64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM vote_locks WHERE address = $1 AND locked_until > $2
	)`

	var locked bool
	err := r.querier.QueryRow(ctx, query, addr.String(), now).Scan(&locked)
	if err != nil {
		return false, fmt.Errorf("unexpected token repository vote lock error: %w", err)
	}

	return locked, nil
}

// DeleteExpiredVoteLocks вычищает истёкшие блокировки. Возвращает число строк.
func (r *Repository) DeleteExpiredVoteLocks(ctx context.Context, now uint64) (int64, error) {
	query := `DELETE FROM vote_locks WHERE locked_until <= $1`

	tag, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected token repository vote lock purge error: %w", err)
	}

	return tag.RowsAffected(), nil
}
