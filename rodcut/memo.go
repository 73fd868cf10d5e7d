package rodcut

import "math"

// memoEntry is one arena slot of the top-down cache: the best profit for a
// sub-length and the first piece of the partition achieving it.
type memoEntry struct {
	profit float64
	first  int
	solved bool
}

// memoSolver owns the arena for a single Memoized invocation.
// Keys are the dense sub-lengths 0..length, so the cache is a slice rather
// than a map. It is never shared between calls.
type memoSolver struct {
	prices PriceTable
	memo   []memoEntry
}

// newMemoSolver allocates an arena of length+1 slots with slot 0 pre-solved
// (profit(0) = 0, no first piece).
//
// Complexity: O(length) time and space.
func newMemoSolver(length int, prices PriceTable) *memoSolver {
	s := &memoSolver{
		prices: prices,
		memo:   make([]memoEntry, length+1),
	}
	s.memo[0] = memoEntry{solved: true}

	return s
}

// best returns profit(n), solving and caching every sub-length it touches.
//
// Each sub-length is solved exactly once across the whole call tree; the
// first visit scans first-piece lengths i = 1..n and keeps the first i that
// strictly improves the running best.
//
// Recursion depth is at most n (the chain n → n−1 → … → 0).
//
// Complexity: O(n²) time over all calls, O(n) stack.
func (s *memoSolver) best(n int) float64 {
	if s.memo[n].solved {
		return s.memo[n].profit
	}

	var (
		bestProfit = math.Inf(-1)
		bestFirst  int
		candidate  float64
		i          int
	)
	for i = 1; i <= n; i++ {
		candidate = s.prices.Price(i) + s.best(n-i)
		if candidate > bestProfit {
			bestProfit = candidate
			bestFirst = i
		}
	}
	s.memo[n] = memoEntry{profit: bestProfit, first: bestFirst, solved: true}

	return bestProfit
}

// firstPiece returns the recorded first piece for a solved sub-length.
func (s *memoSolver) firstPiece(n int) int {
	return s.memo[n].first
}

// solveMemoized runs the top-down strategy on validated input and returns
// the optimum with cuts in taken order.
func solveMemoized(length int, prices PriceTable) (float64, []int) {
	s := newMemoSolver(length, prices)
	profit := s.best(length)

	return profit, reconstruct(length, s.firstPiece)
}
