package entities

type ShipmentStatus string

const (
	ShipmentCreated      ShipmentStatus = "created"
	ShipmentInTransit    ShipmentStatus = "in_transit"
	ShipmentAtCheckpoint ShipmentStatus = "at_checkpoint"
	ShipmentDelivered    ShipmentStatus = "delivered"
	ShipmentCancelled    ShipmentStatus = "cancelled"
	ShipmentDisputed     ShipmentStatus = "disputed"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentDelivered || s == ShipmentCancelled
}

func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	switch s {
	case ShipmentCreated:
		return next == ShipmentInTransit || next == ShipmentCancelled || next == ShipmentDisputed
	case ShipmentInTransit:
		return next == ShipmentAtCheckpoint || next == ShipmentDelivered ||
			next == ShipmentDisputed || next == ShipmentCancelled
	case ShipmentAtCheckpoint:
		return next == ShipmentInTransit || next == ShipmentDelivered ||
			next == ShipmentDisputed || next == ShipmentCancelled
	case ShipmentDisputed:
		return next == ShipmentDelivered || next == ShipmentCancelled
	default:
		// терминальные состояния
		return false
	}
}

type Shipment struct {
	ID                   uint64
	Sender               Address
	Carrier              Address
	Receiver             Address
	DataHash             Hash
	Status               ShipmentStatus
	Deadline             uint64
	CreatedAt            uint64
	UpdatedAt            uint64
	DeliveryConfirmation *Hash
	PaymentSchedule      []PaymentMilestone
	Milestones           []MilestoneRecord
}

// PaymentMilestone — запись графика оплат: процент эскроу,
// выплачиваемый при достижении чекпоинта.
type PaymentMilestone struct {
	Checkpoint string
	Percent    uint32
	Paid       bool
}

type MilestoneRecord struct {
	Checkpoint string
	Hash       Hash
	RecordedAt uint64
}

// ScheduleEntry возвращает невыплаченную запись графика для чекпоинта.
func (s *Shipment) ScheduleEntry(checkpoint string) *PaymentMilestone {
	for i := range s.PaymentSchedule {
		if s.PaymentSchedule[i].Checkpoint == checkpoint {
			return &s.PaymentSchedule[i]
		}
	}
	return nil
}
