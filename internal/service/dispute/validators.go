package dispute

import (
	"shipledger/internal/entities"
)

func isValidResolution(resolution entities.DisputeResolution) bool {
	switch resolution {
	case entities.ResolutionReleaseToCarrier, entities.ResolutionRefundToCompany:
		return true
	default:
		return false
	}
}

func isValidBreach(breach entities.BreachType) bool {
	switch breach {
	case entities.BreachTemperatureHigh,
		entities.BreachTemperatureLow,
		entities.BreachHumidityHigh,
		entities.BreachImpact,
		entities.BreachTamperDetected:
		return true
	default:
		return false
	}
}

func isParty(shipment *entities.Shipment, addr entities.Address) bool {
	return addr == shipment.Sender || addr == shipment.Receiver || addr == shipment.Carrier
}
