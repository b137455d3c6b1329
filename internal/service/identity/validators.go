package identity

import (
	"shipledger/internal/entities"
)

func isValidAddress(addr entities.Address) bool {
	return addr.IsValid()
}

func containsAddress(addrs []entities.Address, addr entities.Address) bool {
	for _, a := range addrs {
		if a == addr {
			return true
		}
	}
	return false
}

func withinMultisigBounds(count int) bool {
	return count >= entities.MinMultisigAdmins && count <= entities.MaxMultisigAdmins
}
