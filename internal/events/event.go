package events

// Топики аудита. Поток событий — контракт для внешнего индексатора:
// имена и поля менять нельзя, только дополнять.
const (
	TopicShipmentCreated       = "shipment_created"
	TopicStatusUpdated         = "status_updated"
	TopicMilestoneRecorded     = "milestone_recorded"
	TopicShipmentHandoff       = "shipment_handoff"
	TopicDeliveryConfirmed     = "delivery_confirmed"
	TopicShipmentCancelled     = "shipment_cancelled"
	TopicShipmentExpired       = "shipment_expired"
	TopicEscrowDeposited       = "escrow_deposited"
	TopicEscrowReleased        = "escrow_released"
	TopicEscrowRefunded        = "escrow_refunded"
	TopicDisputeRaised         = "dispute_raised"
	TopicDisputeResolved       = "dispute_resolved"
	TopicConditionBreach       = "condition_breach"
	TopicAdminTransferProposed = "admin_transfer_proposed"
	TopicAdminTransferred      = "admin_transferred"
	TopicProposalCreated       = "proposal_created"
	TopicProposalApproved      = "proposal_approved"
	TopicProposalExecuted      = "proposal_executed"
	TopicContractUpgraded      = "contract_upgraded"
	TopicConfigUpdated         = "config_updated"
	TopicDelegationSet         = "delegation_set"
	TopicNotification          = "notification"
)

// Event — запись аудита. Полезные нагрузки представлены только хешами.
type Event struct {
	Topic      string `json:"topic"`
	Seq        uint64 `json:"seq"`
	LedgerTS   uint64 `json:"ledger_ts"`
	ShipmentID uint64 `json:"shipment_id,omitempty"`
	ProposalID uint64 `json:"proposal_id,omitempty"`
	Actor      string `json:"actor,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Status     string `json:"status,omitempty"`
	Checkpoint string `json:"checkpoint,omitempty"`
	Amount     int64  `json:"amount,omitempty"`
	Hash       string `json:"hash,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Version    uint32 `json:"version,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Recipient  string `json:"recipient,omitempty"`
}
