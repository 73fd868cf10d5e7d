package rodcut

import (
	"fmt"
	"math"
)

// Table is the bottom-up DP state for one rod length.
//
//   - Profit[j] — best revenue for a rod of length j (Profit[0] = 0).
//   - Choice[j] — length of the first piece in that optimum (Choice[0] unused).
//
// Both slices have length+1 entries and are fully computed by Tabulate.
type Table struct {
	Profit []float64
	Choice []int
}

// Tabulate validates the input and fills the DP table bottom-up.
//
// Algorithm Outline:
//  1. Profit[0] = 0.
//  2. For j = 1..length:
//     For i = 1..j:
//     candidate = price(i) + Profit[j−i]
//     keep the first i whose candidate strictly beats the running best.
//  3. Choice[j] records that i.
//
// Every Profit[j] depends only on the already-final Profit[0..j−1], so no
// recursion is needed.
//
// Errors: ErrNegativeLength, ErrShortPriceTable, ErrBadPrice.
//
// Complexity: O(length²) time, O(length) memory.
func Tabulate(length int, prices PriceTable) (*Table, error) {
	if err := validateInput(length, prices); err != nil {
		return nil, err
	}

	return tabulate(length, prices), nil
}

// tabulate fills the table for input already checked by validateInput.
func tabulate(length int, prices PriceTable) *Table {
	t := &Table{
		Profit: make([]float64, length+1),
		Choice: make([]int, length+1),
	}

	var (
		i, j       int
		bestProfit float64
		bestFirst  int
		candidate  float64
	)
	for j = 1; j <= length; j++ {
		bestProfit = math.Inf(-1)
		bestFirst = 0
		for i = 1; i <= j; i++ {
			candidate = prices.Price(i) + t.Profit[j-i]
			if candidate > bestProfit {
				bestProfit = candidate
				bestFirst = i
			}
		}
		t.Profit[j] = bestProfit
		t.Choice[j] = bestFirst
	}

	return t
}

// Len returns the largest rod length covered by the table.
func (t *Table) Len() int {
	return len(t.Profit) - 1
}

// Cuts reconstructs an optimal partition of a rod of length n ≤ t.Len(),
// in taken order (first piece first).
//
// Complexity: O(n).
func (t *Table) Cuts(n int) ([]int, error) {
	if n < 0 || n > t.Len() {
		return nil, fmt.Errorf("length %d outside table range 0..%d: %w", n, t.Len(), ErrInvalidInput)
	}

	return reconstruct(n, t.firstPiece), nil
}

// firstPiece returns Choice[n].
func (t *Table) firstPiece(n int) int {
	return t.Choice[n]
}
