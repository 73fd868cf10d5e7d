package rodcut

import (
	"fmt"
	"math"
)

// Evaluate checks that cuts partitions a rod of the given length into pieces
// priced by prices, and returns the partition's total price.
//
// A valid partition has every piece in 1..len(prices) and pieces summing to
// exactly length. An empty cuts slice is the valid partition of length 0.
//
// Errors: ErrNegativeLength, ErrInvalidPartition, ErrBadPrice (for a piece
// whose price is negative, NaN or infinite).
//
// Complexity: O(len(cuts)).
func Evaluate(length int, prices PriceTable, cuts []int) (float64, error) {
	if length < 0 {
		return 0, fmt.Errorf("length %d: %w", length, ErrNegativeLength)
	}

	var (
		total float64
		sum   int
		p     float64
	)
	for k, c := range cuts {
		if c < 1 || c > len(prices) {
			return 0, fmt.Errorf("piece %d has length %d, want 1..%d: %w", k, c, len(prices), ErrInvalidPartition)
		}
		p = prices.Price(c)
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return 0, fmt.Errorf("price of length %d is %v: %w", c, p, ErrBadPrice)
		}
		total += p
		sum += c
	}
	if sum != length {
		return 0, fmt.Errorf("pieces sum to %d, want %d: %w", sum, length, ErrInvalidPartition)
	}

	return total, nil
}
