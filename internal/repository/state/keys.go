package state

import (
	"fmt"

	"shipledger/internal/entities"
)

// Конструкторы ключей. Префиксы стабильны: по ним работают выборки
// фоновых задач, менять нельзя.
const (
	PrefixShipment      = "shipment/"
	PrefixEscrow        = "escrow/"
	PrefixRole          = "role/"
	PrefixWhitelist     = "whitelist/"
	PrefixProposal      = "proposal/"
	PrefixDelegation    = "delegation/"
	PrefixReputation    = "reputation/"
	PrefixStatusUpdate  = "last_status_update/"
	PrefixEventCount    = "event_count/"
	PrefixCompanyActive = "company_active/"
)

const (
	KeyEngineConfig  = "engine_config"
	KeyAdmins        = "admins"
	KeyAdminTransfer = "admin_transfer"
	KeyPaused        = "paused"
	KeyShipmentSeq   = "shipment_seq"
	KeyProposalSeq   = "proposal_seq"
	KeyVersion       = "version"
	KeyCodeHash      = "code_hash"
	KeyAnalytics     = "analytics"
)

func ShipmentKey(id uint64) string {
	return fmt.Sprintf("%s%020d", PrefixShipment, id)
}

func EscrowKey(shipmentID uint64) string {
	return fmt.Sprintf("%s%020d", PrefixEscrow, shipmentID)
}

func RoleKey(addr entities.Address, role entities.Role) string {
	return fmt.Sprintf("%s%s/%s", PrefixRole, role, addr)
}

func WhitelistKey(company, carrier entities.Address) string {
	return fmt.Sprintf("%s%s/%s", PrefixWhitelist, company, carrier)
}

func ProposalKey(id uint64) string {
	return fmt.Sprintf("%s%020d", PrefixProposal, id)
}

func DelegationKey(delegator entities.Address) string {
	return PrefixDelegation + delegator.String()
}

func ReputationKey(carrier entities.Address) string {
	return PrefixReputation + carrier.String()
}

func StatusUpdateKey(shipmentID uint64) string {
	return fmt.Sprintf("%s%020d", PrefixStatusUpdate, shipmentID)
}

func EventCountKey(shipmentID uint64) string {
	return fmt.Sprintf("%s%020d", PrefixEventCount, shipmentID)
}

func CompanyActiveKey(company entities.Address) string {
	return PrefixCompanyActive + company.String()
}
