package shipment

import (
	"shipledger/internal/entities"
)

func isValidHash(h entities.Hash) bool {
	return h.IsValid() && !h.IsZero()
}

func isValidSchedule(schedule []entities.PaymentMilestone) bool {
	if len(schedule) == 0 {
		return true
	}

	seen := make(map[string]struct{}, len(schedule))
	var sum uint64
	for _, m := range schedule {
		if m.Checkpoint == "" || m.Percent == 0 || m.Paid {
			return false
		}
		if _, ok := seen[m.Checkpoint]; ok {
			return false
		}
		seen[m.Checkpoint] = struct{}{}
		sum += uint64(m.Percent)
	}
	return sum == 100
}

func containsAddress(addrs []entities.Address, addr entities.Address) bool {
	for _, a := range addrs {
		if a == addr {
			return true
		}
	}
	return false
}

// isMovementStatus: статусы, доступные перевозчику через update_status.
// Терминальные переходы и споры идут через свои операции.
func isMovementStatus(status entities.ShipmentStatus) bool {
	return status == entities.ShipmentInTransit || status == entities.ShipmentAtCheckpoint
}
