package governance

import (
	"context"
	"fmt"

	"shipledger/internal/entities"
)

// powerStrategy определяет, чем меряется голос: местом в мультисиге
// или снапшотом токен-балансов.
type powerStrategy interface {
	// proposerPower — сила инициатора на момент создания предложения.
	proposerPower(ctx context.Context, proposer entities.Address, snapshotTS uint64) (int64, error)
	// voterPower — сила одобряющего по снапшоту предложения.
	voterPower(ctx context.Context, voter entities.Address, proposal *entities.Proposal) (int64, error)
	// threshold — суммарная сила, после которой предложение исполнимо.
	threshold() int64
	// onApprove — побочный эффект одобрения (блокировка токенов).
	onApprove(ctx context.Context, voter entities.Address, proposal *entities.Proposal) error
	// minProposerPower — минимум силы для создания предложения.
	minProposerPower() int64
}

type multisigStrategy struct {
	service *Governance
	cfg     entities.EngineConfig
}

func (m *multisigStrategy) proposerPower(ctx context.Context, proposer entities.Address, _ uint64) (int64, error) {
	return m.adminPower(ctx, proposer)
}

func (m *multisigStrategy) voterPower(ctx context.Context, voter entities.Address, _ *entities.Proposal) (int64, error) {
	return m.adminPower(ctx, voter)
}

func (m *multisigStrategy) adminPower(ctx context.Context, addr entities.Address) (int64, error) {
	admins, err := m.service.roles.Admins(ctx)
	if err != nil {
		return 0, fmt.Errorf("load admins: %w", err)
	}
	for _, a := range admins {
		if a == addr {
			return 1, nil
		}
	}
	return 0, nil
}

func (m *multisigStrategy) threshold() int64 {
	return int64(m.cfg.MultisigThreshold)
}

func (m *multisigStrategy) onApprove(context.Context, entities.Address, *entities.Proposal) error {
	return nil
}

func (m *multisigStrategy) minProposerPower() int64 {
	return 1
}

type tokenStrategy struct {
	service *Governance
	cfg     entities.EngineConfig
}

// Сила адреса: собственный снапшот-баланс (ноль, если сила делегирована)
// плюс снапшот-балансы делегировавших. Делегация одноуровневая.
func (t *tokenStrategy) power(ctx context.Context, addr entities.Address, snapshotTS uint64) (int64, error) {
	now := t.service.clock.Timestamp()

	var total int64
	delegation, err := t.service.repository.Delegation(ctx, addr, now)
	if err != nil {
		return 0, err
	}
	if delegation == nil {
		own, err := t.service.ledger.BalanceAt(ctx, addr, snapshotTS)
		if err != nil {
			return 0, err
		}
		total = own
	}

	delegators, err := t.service.repository.DelegatorsOf(ctx, addr, now)
	if err != nil {
		return 0, err
	}
	for _, delegator := range delegators {
		balance, err := t.service.ledger.BalanceAt(ctx, delegator, snapshotTS)
		if err != nil {
			return 0, err
		}
		total += balance
	}

	return total, nil
}

func (t *tokenStrategy) proposerPower(ctx context.Context, proposer entities.Address, snapshotTS uint64) (int64, error) {
	return t.power(ctx, proposer, snapshotTS)
}

func (t *tokenStrategy) voterPower(ctx context.Context, voter entities.Address, proposal *entities.Proposal) (int64, error) {
	return t.power(ctx, voter, proposal.SnapshotTS)
}

func (t *tokenStrategy) threshold() int64 {
	return t.cfg.MinProposalPower
}

func (t *tokenStrategy) onApprove(ctx context.Context, voter entities.Address, proposal *entities.Proposal) error {
	return t.service.ledger.AddVoteLock(ctx, entities.VoteLock{
		Address:     voter,
		ProposalID:  proposal.ID,
		LockedUntil: t.service.clock.Timestamp() + t.cfg.VoteLockPeriod,
	})
}

func (t *tokenStrategy) minProposerPower() int64 {
	return t.cfg.MinProposalPower
}
