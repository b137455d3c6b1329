package shipment

// ShipmentDB — JSON-модель записи в contract_state.
type ShipmentDB struct {
	ID                   uint64          `json:"id"`
	Sender               string          `json:"sender"`
	Carrier              string          `json:"carrier"`
	Receiver             string          `json:"receiver"`
	DataHash             string          `json:"data_hash"`
	Status               string          `json:"status"`
	Deadline             uint64          `json:"deadline"`
	CreatedAt            uint64          `json:"created_at"`
	UpdatedAt            uint64          `json:"updated_at"`
	DeliveryConfirmation *string         `json:"delivery_confirmation,omitempty"`
	PaymentSchedule      []MilestoneDB   `json:"payment_schedule,omitempty"`
	Milestones           []RecordedDB    `json:"milestones,omitempty"`
}

type MilestoneDB struct {
	Checkpoint string `json:"checkpoint"`
	Percent    uint32 `json:"percent"`
	Paid       bool   `json:"paid"`
}

type RecordedDB struct {
	Checkpoint string `json:"checkpoint"`
	Hash       string `json:"hash"`
	RecordedAt uint64 `json:"recorded_at"`
}

type counterDB struct {
	Value uint64 `json:"value"`
}
