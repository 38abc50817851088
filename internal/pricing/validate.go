package pricing

import (
	"errors"
	"math"
)

var (
	// ErrNotANumber is returned for NaN or infinite amounts, including
	// totals that overflow float64.
	ErrNotANumber = errors.New("amount is not a finite number")
	// ErrNegativePrice is returned when the price per refill is below zero.
	ErrNegativePrice = errors.New("price per refill is negative")
	// ErrNegativeRefills is returned when the refill count is below zero.
	ErrNegativeRefills = errors.New("refill count is negative")
	// ErrNegativeCost is returned by ValidateCost for amounts below zero.
	ErrNegativeCost = errors.New("cost is negative")
)

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateCost rejects NaN, infinite and negative amounts.
func ValidateCost(cost float64) error {
	if !isFinite(cost) {
		return ErrNotANumber
	}
	if cost < 0 {
		return ErrNegativeCost
	}
	return nil
}

// CheckedTotalCost validates its inputs and the product before returning it.
// TotalCost itself never checks anything.
func CheckedTotalCost(pricePerRefill float64, refills int) (float64, error) {
	if err := ValidateCost(pricePerRefill); err != nil {
		if errors.Is(err, ErrNegativeCost) {
			return 0, ErrNegativePrice
		}
		return 0, err
	}
	if refills < 0 {
		return 0, ErrNegativeRefills
	}
	total := TotalCost(pricePerRefill, refills)
	if !isFinite(total) {
		return 0, ErrNotANumber
	}
	return total, nil
}
