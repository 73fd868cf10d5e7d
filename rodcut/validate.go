package rodcut

import (
	"fmt"
	"math"
)

// validateInput checks the shared solver contract before any recurrence work:
//   - length ≥ 0,
//   - len(prices) ≥ length,
//   - every price finite and non-negative, including entries beyond length
//     that the solvers never read,
//   - length × max(prices[:length]) finite, which bounds every profit sum.
//
// Complexity: O(len(prices)).
func validateInput(length int, prices PriceTable) error {
	if length < 0 {
		return fmt.Errorf("length %d: %w", length, ErrNegativeLength)
	}
	if len(prices) < length {
		return fmt.Errorf("length %d, %d prices: %w", length, len(prices), ErrShortPriceTable)
	}

	var (
		i   int     // 0-based index into prices
		p   float64 // current price
		top float64 // largest price a solver can read
	)
	for i = range prices {
		p = prices[i]
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("price of length %d is %v: %w", i+1, p, ErrBadPrice)
		}
		if i < length && p > top {
			top = p
		}
	}
	if math.IsInf(float64(length)*top, 1) {
		return fmt.Errorf("length %d * max price %v overflows float64: %w", length, top, ErrBadPrice)
	}

	return nil
}

// validateOptions rejects enum values outside the declared constants.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Strategy {
	case StrategyMemoized, StrategyTabulated:
	default:
		return fmt.Errorf("strategy %d: %w", int(opts.Strategy), ErrUnsupportedStrategy)
	}
	switch opts.Order {
	case TakenOrder, AscendingOrder:
	default:
		return fmt.Errorf("order %d: %w", int(opts.Order), ErrUnsupportedOrder)
	}

	return nil
}
