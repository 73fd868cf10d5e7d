// Package rodcut solves the classic rod-cutting problem: given a rod of
// integer length and a price for every piece length, find the partition into
// integer-length pieces that maximizes total revenue.
//
// 🚀 What is rod cutting?
//
//	A linear resource (lumber, pipe, cable, steel bar) is sold in pieces.
//	Longer pieces are not always worth proportionally more, so cutting can
//	pay off. The optimum obeys the recurrence
//
//	  profit(0) = 0
//	  profit(n) = max_{i=1..n} ( price(i) + profit(n−i) )
//
//	because any optimal partition either sells the whole rod (i = n) or takes
//	off a first piece of length i and solves the remainder optimally.
//
// ✨ Key features:
//   - Memoized: top-down recursion over a per-call arena, O(n²) time.
//   - Tabulated: bottom-up fill with no recursion, O(n²) time.
//   - Both strategies break ties identically (first i in ascending order
//     that strictly improves the running best wins), so they reconstruct
//     the same partition.
//   - Evaluate verifies any partition against a price table.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rodcut/rodcut"
//
//	prices := rodcut.PriceTable{2, 5, 7, 8, 10}
//	sol, err := rodcut.Solve(5, prices, rodcut.DefaultOptions())
//	// sol.MaxProfit == 12, sol.Cuts == [1 2 2], sol.NumberOfCuts == 2
//
// Performance:
//
//   - Time:   O(n²) for both strategies
//   - Memory: O(n)
//
// Errors are sentinels wrapping ErrInvalidInput; use errors.Is.
package rodcut
