// Package rodcut is the root of a small toolkit for cutting-stock style
// optimization: how to split a linear resource for the best price, and how to
// group jobs into capacity-limited batches.
//
// 🚀 What is inside?
//
//	rodcut/      — optimal rod cutting: memoized and tabulated dynamic
//	               programming, partition reconstruction and evaluation
//	printqueue/  — greedy batching of 3D-print jobs under volume and item limits
//	cmd/rodcut/  — command-line front end (solve, plan, version)
//	examples/    — runnable real-world scenarios
//
// ✨ Why this layout?
//
//   - Libraries are pure: no logging, no globals, no panics on user input.
//   - Every validation failure is a sentinel usable with errors.Is.
//   - The CLI carries the ambient stack: cobra commands, viper config,
//     slog logging, go-pretty tables.
//
// Quick example:
//
//	sol, _ := rodcut.Memoized(5, rodcut.PriceTable{2, 5, 7, 8, 10})
//	// sol.MaxProfit == 12, sol.Cuts == [1 2 2]
package rodcut
