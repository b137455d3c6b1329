package entities

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleCarrier Role = "carrier"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsGrantable() bool {
	return r == RoleCompany || r == RoleCarrier
}

// AdminTransfer — двухфазная передача места в мультисиге:
// действующий админ предлагает преемника, преемник принимает.
type AdminTransfer struct {
	Proposer  Address
	Successor Address
}
