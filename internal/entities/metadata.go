package entities

// ContractMetadata — агрегированное состояние движка для read-only выдачи.
type ContractMetadata struct {
	Version        uint32
	CodeHash       Hash
	Admins         []Address
	Paused         bool
	TotalShipments uint64
	TotalDisputes  uint64
}

// Analytics — счётчики с ограниченной кардинальностью, глобальный ярус.
type Analytics struct {
	TotalEscrowVolume int64
	TotalDisputes     uint64
	StatusCounts      map[ShipmentStatus]uint64
}
