package entities

// MaxAmount — верхняя граница любой суммы в минимальных единицах токена.
const MaxAmount int64 = 1_000_000_000_000_000

type Escrow struct {
	ShipmentID uint64
	Locked     int64
	Deposited  int64
}

// Released — суммарно выплачено и возвращено из депозита.
func (e Escrow) Released() int64 {
	return e.Deposited - e.Locked
}
