// Package rodcut - unified entry points.
//
// This file provides:
//
//   - Solve: validate, route to the selected strategy, order the cuts.
//   - Memoized / Tabulated: fixed-strategy entry points sharing Solve's
//     contract, substitutable for any caller that only reads MaxProfit.
//
// Both strategies use the same strict-improvement tie-break, so for equal
// input they reconstruct the same partition in taken order.
package rodcut

import "slices"

// Solve computes the maximum revenue for a rod of the given length and one
// optimal partition, using opts.Strategy and reporting cuts in opts.Order.
//
// Contracts:
//   - length ≥ 0.
//   - len(prices) ≥ length, every price finite and non-negative.
//   - prices is never modified.
//
// Errors: ErrNegativeLength, ErrShortPriceTable, ErrBadPrice,
// ErrUnsupportedStrategy, ErrUnsupportedOrder; all match ErrInvalidInput.
// Nothing is computed when validation fails.
//
// Complexity: O(length²) time, O(length) memory for both strategies.
func Solve(length int, prices PriceTable, opts Options) (Solution, error) {
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	if err := validateInput(length, prices); err != nil {
		return Solution{}, err
	}

	var (
		profit float64
		cuts   []int
	)
	switch opts.Strategy {
	case StrategyMemoized:
		profit, cuts = solveMemoized(length, prices)
	case StrategyTabulated:
		t := tabulate(length, prices)
		profit, cuts = t.Profit[length], reconstruct(length, t.firstPiece)
	}

	if opts.Order == AscendingOrder {
		slices.Sort(cuts)
	}

	return Solution{
		MaxProfit:    profit,
		Cuts:         cuts,
		NumberOfCuts: numberOfCuts(cuts),
	}, nil
}

// Memoized solves with the top-down strategy and reports cuts in taken order.
//
// Example:
//
//	sol, err := Memoized(5, PriceTable{2, 5, 7, 8, 10})
//	// sol.MaxProfit == 12, sol.Cuts == [1 2 2]
func Memoized(length int, prices PriceTable) (Solution, error) {
	return Solve(length, prices, Options{Strategy: StrategyMemoized, Order: TakenOrder})
}

// Tabulated solves with the bottom-up strategy and reports cuts sorted
// ascending.
func Tabulated(length int, prices PriceTable) (Solution, error) {
	return Solve(length, prices, Options{Strategy: StrategyTabulated, Order: AscendingOrder})
}
