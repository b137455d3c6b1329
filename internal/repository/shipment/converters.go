package shipment

import (
	"shipledger/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipment := &entities.Shipment{
		ID:        s.ID,
		Sender:    entities.Address(s.Sender),
		Carrier:   entities.Address(s.Carrier),
		Receiver:  entities.Address(s.Receiver),
		DataHash:  entities.Hash(s.DataHash),
		Status:    entities.ShipmentStatus(s.Status),
		Deadline:  s.Deadline,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.DeliveryConfirmation != nil {
		confirmation := entities.Hash(*s.DeliveryConfirmation)
		shipment.DeliveryConfirmation = &confirmation
	}

	for _, m := range s.PaymentSchedule {
		shipment.PaymentSchedule = append(shipment.PaymentSchedule, entities.PaymentMilestone{
			Checkpoint: m.Checkpoint,
			Percent:    m.Percent,
			Paid:       m.Paid,
		})
	}
	for _, r := range s.Milestones {
		shipment.Milestones = append(shipment.Milestones, entities.MilestoneRecord{
			Checkpoint: r.Checkpoint,
			Hash:       entities.Hash(r.Hash),
			RecordedAt: r.RecordedAt,
		})
	}

	return shipment
}

func FromDomain(shipment *entities.Shipment) *ShipmentDB {
	if shipment == nil {
		return nil
	}

	model := &ShipmentDB{
		ID:        shipment.ID,
		Sender:    shipment.Sender.String(),
		Carrier:   shipment.Carrier.String(),
		Receiver:  shipment.Receiver.String(),
		DataHash:  shipment.DataHash.String(),
		Status:    shipment.Status.String(),
		Deadline:  shipment.Deadline,
		CreatedAt: shipment.CreatedAt,
		UpdatedAt: shipment.UpdatedAt,
	}

	if shipment.DeliveryConfirmation != nil {
		confirmation := shipment.DeliveryConfirmation.String()
		model.DeliveryConfirmation = &confirmation
	}

	for _, m := range shipment.PaymentSchedule {
		model.PaymentSchedule = append(model.PaymentSchedule, MilestoneDB{
			Checkpoint: m.Checkpoint,
			Percent:    m.Percent,
			Paid:       m.Paid,
		})
	}
	for _, r := range shipment.Milestones {
		model.Milestones = append(model.Milestones, RecordedDB{
			Checkpoint: r.Checkpoint,
			Hash:       r.Hash.String(),
			RecordedAt: r.RecordedAt,
		})
	}

	return model
}
