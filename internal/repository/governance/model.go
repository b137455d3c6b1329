package governance

import (
	"shipledger/internal/entities"
)

type ProposalDB struct {
	ID            uint64                  `json:"id"`
	Action        string                  `json:"action"`
	Params        entities.ProposalParams `json:"params"`
	Proposer      string                  `json:"proposer"`
	CreatedAt     uint64                  `json:"created_at"`
	ExpiresAt     uint64                  `json:"expires_at"`
	SnapshotTS    uint64                  `json:"snapshot_ts"`
	Approvals     []string                `json:"approvals,omitempty"`
	ApprovalPower int64                   `json:"approval_power"`
	Executed      bool                    `json:"executed"`
}

type delegationDB struct {
	Delegate string `json:"delegate"`
	SetAt    uint64 `json:"set_at"`
}

type counterDB struct {
	Value uint64 `json:"value"`
}

func ToDomain(p *ProposalDB) *entities.Proposal {
	if p == nil {
		return nil
	}

	proposal := &entities.Proposal{
		ID:            p.ID,
		Action:        entities.ProposalAction(p.Action),
		Params:        p.Params,
		Proposer:      entities.Address(p.Proposer),
		CreatedAt:     p.CreatedAt,
		ExpiresAt:     p.ExpiresAt,
		SnapshotTS:    p.SnapshotTS,
		ApprovalPower: p.ApprovalPower,
		Executed:      p.Executed,
	}
	for _, a := range p.Approvals {
		proposal.Approvals = append(proposal.Approvals, entities.Address(a))
	}
	return proposal
}

func FromDomain(proposal *entities.Proposal) *ProposalDB {
	if proposal == nil {
		return nil
	}

	model := &ProposalDB{
		ID:            proposal.ID,
		Action:        proposal.Action.String(),
		Params:        proposal.Params,
		Proposer:      proposal.Proposer.String(),
		CreatedAt:     proposal.CreatedAt,
		ExpiresAt:     proposal.ExpiresAt,
		SnapshotTS:    proposal.SnapshotTS,
		ApprovalPower: proposal.ApprovalPower,
		Executed:      proposal.Executed,
	}
	for _, a := range proposal.Approvals {
		model.Approvals = append(model.Approvals, a.String())
	}
	return model
}
