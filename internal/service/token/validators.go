package token

import (
	"math"

	"shipledger/internal/entities"
)

func isValidAmount(amount int64) bool {
	return amount > 0 && amount <= entities.MaxAmount
}

func isValidAddress(addr entities.Address) bool {
	return addr.IsValid()
}

// addChecked — сложение int64 с контролем переполнения.
func addChecked(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}
