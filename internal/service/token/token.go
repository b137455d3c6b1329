package token

import (
	"context"
	"fmt"

	"shipledger/internal/entities"
)

// Token ведёт внутренний реестр платёжного и управляющего токена.
// Балансы в минимальных единицах, арифметика с контролем переполнения.
type Token struct {
	repository Repository
	roles      RolesRepository
	clock      Clock
	txManager  TxManager
}

func New(repository Repository, roles RolesRepository, clock Clock, txManager TxManager) *Token {
	return &Token{
		repository: repository,
		roles:      roles,
		clock:      clock,
		txManager:  txManager,
	}
}

func (s *Token) Balance(ctx context.Context, addr entities.Address) (int64, error) {
	if !isValidAddress(addr) {
		return 0, ErrInvalidAddress
	}
	balance, err := s.repository.Balance(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// BalanceAt возвращает баланс по состоянию на логическое время ts (snapshot).
func (s *Token) BalanceAt(ctx context.Context, addr entities.Address, ts uint64) (int64, error) {
	if !isValidAddress(addr) {
		return 0, ErrInvalidAddress
	}
	balance, err := s.repository.BalanceAt(ctx, addr, ts)
	if err != nil {
		return 0, fmt.Errorf("get balance at: %w", err)
	}
	return balance, nil
}

func (s *Token) Transfer(ctx context.Context, caller, to entities.Address, amount int64) error {
	if err := validateMove(caller, to, amount); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Timestamp()

		locked, err := s.repository.HasActiveVoteLock(ctx, caller, now)
		if err != nil {
			return fmt.Errorf("check vote lock: %w", err)
		}
		if locked {
			return ErrTokensLocked
		}

		return s.move(ctx, caller, to, amount, now)
	})
}

func (s *Token) TransferFrom(ctx context.Context, spender, from, to entities.Address, amount int64) error {
	if err := validateMove(from, to, amount); err != nil {
		return err
	}
	if !isValidAddress(spender) {
		return ErrInvalidAddress
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Timestamp()

		allowance, err := s.repository.Allowance(ctx, from, spender)
		if err != nil {
			return fmt.Errorf("get allowance: %w", err)
		}
		if allowance < amount {
			return ErrInsufficientAllowance
		}

		locked, err := s.repository.HasActiveVoteLock(ctx, from, now)
		if err != nil {
			return fmt.Errorf("check vote lock: %w", err)
		}
		if locked {
			return ErrTokensLocked
		}

		if err := s.repository.SetAllowance(ctx, from, spender, allowance-amount); err != nil {
			return fmt.Errorf("set allowance: %w", err)
		}
		return s.move(ctx, from, to, amount, now)
	})
}

func (s *Token) Approve(ctx context.Context, owner, spender entities.Address, amount int64) error {
	if !isValidAddress(owner) || !isValidAddress(spender) {
		return ErrInvalidAddress
	}
	if amount < 0 || amount > entities.MaxAmount {
		return ErrInvalidAmount
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.SetAllowance(ctx, owner, spender, amount); err != nil {
			return fmt.Errorf("set allowance: %w", err)
		}
		return nil
	})
}

func (s *Token) Allowance(ctx context.Context, owner, spender entities.Address) (int64, error) {
	if !isValidAddress(owner) || !isValidAddress(spender) {
		return 0, ErrInvalidAddress
	}
	allowance, err := s.repository.Allowance(ctx, owner, spender)
	if err != nil {
		return 0, fmt.Errorf("get allowance: %w", err)
	}
	return allowance, nil
}

func (s *Token) Mint(ctx context.Context, caller, to entities.Address, amount int64) error {
	if !isValidAmount(amount) {
		return ErrInvalidAmount
	}
	if !isValidAddress(to) {
		return ErrInvalidAddress
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireAdmin(ctx, caller); err != nil {
			return err
		}

		balance, err := s.repository.Balance(ctx, to)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		next, ok := addChecked(balance, amount)
		if !ok {
			return ErrOverflow
		}

		if err := s.repository.SetBalance(ctx, to, next, s.clock.Timestamp()); err != nil {
			return fmt.Errorf("set balance: %w", err)
		}
		return nil
	})
}

func (s *Token) Burn(ctx context.Context, caller, from entities.Address, amount int64) error {
	if !isValidAmount(amount) {
		return ErrInvalidAmount
	}
	if !isValidAddress(from) {
		return ErrInvalidAddress
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.requireAdmin(ctx, caller); err != nil {
			return err
		}

		balance, err := s.repository.Balance(ctx, from)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		if balance < amount {
			return ErrInsufficientBalance
		}

		if err := s.repository.SetBalance(ctx, from, balance-amount, s.clock.Timestamp()); err != nil {
			return fmt.Errorf("set balance: %w", err)
		}
		return nil
	})
}

// Move переводит средства для внутренних расчётов эскроу.
// Вызывается только изнутри уже открытой транзакции операции.
// Блокировка голосования держит средства отправителя так же, как в Transfer.
func (s *Token) Move(ctx context.Context, from, to entities.Address, amount int64) error {
	if err := validateMove(from, to, amount); err != nil {
		return err
	}

	now := s.clock.Timestamp()

	locked, err := s.repository.HasActiveVoteLock(ctx, from, now)
	if err != nil {
		return fmt.Errorf("check vote lock: %w", err)
	}
	if locked {
		return ErrTokensLocked
	}

	return s.move(ctx, from, to, amount, now)
}

func (s *Token) move(ctx context.Context, from, to entities.Address, amount int64, now uint64) error {
	fromBalance, err := s.repository.Balance(ctx, from)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	if fromBalance < amount {
		return ErrInsufficientBalance
	}

	toBalance, err := s.repository.Balance(ctx, to)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	next, ok := addChecked(toBalance, amount)
	if !ok {
		return ErrOverflow
	}

	if err := s.repository.SetBalance(ctx, from, fromBalance-amount, now); err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	if err := s.repository.SetBalance(ctx, to, next, now); err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	return nil
}

func (s *Token) requireAdmin(ctx context.Context, caller entities.Address) error {
	admins, err := s.roles.Admins(ctx)
	if err != nil {
		return fmt.Errorf("load admins: %w", err)
	}
	for _, a := range admins {
		if a == caller {
			return nil
		}
	}
	return ErrUnauthorized
}

func validateMove(from, to entities.Address, amount int64) error {
	if !isValidAddress(from) || !isValidAddress(to) {
		return ErrInvalidAddress
	}
	if from == to {
		return ErrSameAccount
	}
	if !isValidAmount(amount) {
		return ErrInvalidAmount
	}
	return nil
}
