package entities

type DisputeResolution string

const (
	ResolutionReleaseToCarrier DisputeResolution = "release_to_carrier"
	ResolutionRefundToCompany  DisputeResolution = "refund_to_company"
)

func (r DisputeResolution) String() string {
	return string(r)
}

type BreachType string

const (
	BreachTemperatureHigh BreachType = "temperature_high"
	BreachTemperatureLow  BreachType = "temperature_low"
	BreachHumidityHigh    BreachType = "humidity_high"
	BreachImpact          BreachType = "impact"
	BreachTamperDetected  BreachType = "tamper_detected"
)

func (b BreachType) String() string {
	return string(b)
}

type CarrierReputation struct {
	Carrier      Address
	DisputesLost uint64
	Breaches     uint64
}
