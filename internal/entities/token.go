package entities

type TokenAccount struct {
	Address Address
	Balance int64
}

type Allowance struct {
	Owner   Address
	Spender Address
	Amount  int64
}
