// Package printqueue groups 3D-print jobs into batches for a printer that
// prints every job of a batch in parallel.
//
// The planner is a greedy heuristic, not an optimizer:
//
//  1. Order jobs by priority (1 = most urgent), then by shortest print time.
//  2. Open a batch and scan the remaining jobs in that order, admitting every
//     job that still fits the printer's volume and item limits. Jobs that do
//     not fit are skipped, not a stopping point.
//  3. The batch lasts as long as its slowest job.
//  4. Repeat until no jobs remain. The plan's total time is the sum of batch
//     durations.
//
// Usage:
//
//	plan, err := printqueue.Optimize(jobs, printqueue.Constraints{MaxVolume: 300, MaxItems: 2})
//
// Complexity: O(n²) time in the worst case (one batch per job), O(n) memory.
package printqueue
