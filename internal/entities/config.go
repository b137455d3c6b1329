package entities

type GovernanceMode string

const (
	GovernanceMultisig      GovernanceMode = "multisig"
	GovernanceTokenWeighted GovernanceMode = "token_weighted"
)

func (m GovernanceMode) String() string {
	return string(m)
}

const (
	MinMultisigAdmins = 2
	MaxMultisigAdmins = 10
)

// EngineConfig — настраиваемые параметры движка. Хранится в глобальном
// ярусе состояния, меняется только через governance-предложение.
type EngineConfig struct {
	TTLThreshold            uint64         `json:"ttl_threshold"`
	TTLExtension            uint64         `json:"ttl_extension"`
	MinStatusUpdateInterval uint64         `json:"min_status_update_interval"`
	MultisigThreshold       uint32         `json:"multisig_threshold"`
	ProposalExpiry          uint64         `json:"proposal_expiry"`
	GovernanceMode          GovernanceMode `json:"governance_mode"`
	MinProposalPower        int64          `json:"min_proposal_power"`
	VoteLockPeriod          uint64         `json:"vote_lock_period"`
	MaxActiveShipments      uint32         `json:"max_active_shipments"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TTLThreshold:            17280,
		TTLExtension:            518400,
		MinStatusUpdateInterval: 60,
		MultisigThreshold:       2,
		ProposalExpiry:          604800,
		GovernanceMode:          GovernanceMultisig,
		MinProposalPower:        1,
		VoteLockPeriod:          86400,
		MaxActiveShipments:      100,
	}
}

func (c EngineConfig) IsValid() bool {
	if c.TTLExtension == 0 || c.TTLExtension < c.TTLThreshold {
		return false
	}
	if c.MultisigThreshold < MinMultisigAdmins || c.MultisigThreshold > MaxMultisigAdmins {
		return false
	}
	if c.ProposalExpiry == 0 {
		return false
	}
	switch c.GovernanceMode {
	case GovernanceMultisig:
	case GovernanceTokenWeighted:
		if c.MinProposalPower <= 0 || c.VoteLockPeriod == 0 {
			return false
		}
	default:
		return false
	}
	return c.MaxActiveShipments > 0
}
