package entities

type ProposalAction string

const (
	ActionConfigChange ProposalAction = "config_change"
	ActionUpgrade      ProposalAction = "upgrade"
	ActionSetPaused    ProposalAction = "set_paused"
	ActionAddAdmin     ProposalAction = "add_admin"
	ActionRemoveAdmin  ProposalAction = "remove_admin"
)

func (a ProposalAction) String() string {
	return string(a)
}

// ProposalParams — полезная нагрузка предложения; заполняется поле,
// соответствующее действию.
type ProposalParams struct {
	Config   *EngineConfig `json:"config,omitempty"`
	CodeHash *Hash         `json:"code_hash,omitempty"`
	Paused   *bool         `json:"paused,omitempty"`
	Admin    *Address      `json:"admin,omitempty"`
}

type Proposal struct {
	ID            uint64
	Action        ProposalAction
	Params        ProposalParams
	Proposer      Address
	CreatedAt     uint64
	ExpiresAt     uint64
	SnapshotTS    uint64
	Approvals     []Address
	ApprovalPower int64
	Executed      bool
}

func (p *Proposal) HasApproved(addr Address) bool {
	for _, a := range p.Approvals {
		if a == addr {
			return true
		}
	}
	return false
}

func (p *Proposal) IsExpired(now uint64) bool {
	return now >= p.ExpiresAt
}

// Delegation — одноуровневая делегация голосующей силы.
type Delegation struct {
	Delegator Address
	Delegate  Address
	SetAt     uint64
}

type VoteLock struct {
	Address     Address
	ProposalID  uint64
	LockedUntil uint64
}
