package validate

import "math"

// IsWager reports whether sum is a usable wager amount: strictly positive
// and finite.
func IsWager(sum float64) bool {
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return false
	}
	return sum > 0
}
