package printqueue

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Optimize plans batches for jobs under c.
//
// Contracts:
//   - c.MaxVolume > 0, c.MaxItems ≥ 1.
//   - every job has a unique non-empty ID, finite non-negative volume and
//     print time, and volume ≤ c.MaxVolume.
//   - jobs is not modified.
//
// Jobs with equal (Priority, PrintTime) keep their input order.
//
// Errors: ErrInvalidConstraints, ErrInvalidJob, ErrDuplicateJobID,
// ErrJobTooLarge; all match ErrInvalidInput.
//
// Complexity: O(n²) time, O(n) memory.
func Optimize(jobs []Job, c Constraints) (Plan, error) {
	if err := validate(jobs, c); err != nil {
		return Plan{}, err
	}

	queue := slices.Clone(jobs)
	slices.SortStableFunc(queue, func(a, b Job) int {
		if d := cmp.Compare(a.Priority, b.Priority); d != 0 {
			return d
		}

		return cmp.Compare(a.PrintTime, b.PrintTime)
	})

	plan := Plan{
		PrintOrder: make([]string, 0, len(jobs)),
		Batches:    []Batch{},
	}

	var (
		batch Batch
		rest  []Job
	)
	for len(queue) > 0 {
		batch, rest = nextBatch(queue, c)
		plan.Batches = append(plan.Batches, batch)
		plan.PrintOrder = append(plan.PrintOrder, batch.JobIDs...)
		plan.TotalTime += batch.Duration
		queue = rest
	}

	return plan, nil
}

// nextBatch admits jobs from queue in order while they fit and returns the
// batch plus the jobs left over, still in order.
//
// validate guarantees the first job always fits, so every call makes progress.
func nextBatch(queue []Job, c Constraints) (Batch, []Job) {
	var (
		batch Batch
		rest  = make([]Job, 0, len(queue))
	)
	for _, j := range queue {
		if batch.Volume+j.Volume <= c.MaxVolume && len(batch.JobIDs)+1 <= c.MaxItems {
			batch.JobIDs = append(batch.JobIDs, j.ID)
			batch.Volume += j.Volume
			batch.Duration = max(batch.Duration, j.PrintTime)

			continue
		}
		rest = append(rest, j)
	}

	return batch, rest
}

// validate enforces the Optimize contract before planning starts.
//
// Complexity: O(n) time and memory.
func validate(jobs []Job, c Constraints) error {
	if math.IsNaN(c.MaxVolume) || c.MaxVolume <= 0 || c.MaxItems < 1 {
		return fmt.Errorf("max_volume=%v max_items=%d: %w", c.MaxVolume, c.MaxItems, ErrInvalidConstraints)
	}

	seen := make(map[string]struct{}, len(jobs))
	for i, j := range jobs {
		if j.ID == "" {
			return fmt.Errorf("job #%d: empty id: %w", i, ErrInvalidJob)
		}
		if !finiteNonNegative(j.Volume) || !finiteNonNegative(j.PrintTime) {
			return fmt.Errorf("job %q: volume=%v print_time=%v: %w", j.ID, j.Volume, j.PrintTime, ErrInvalidJob)
		}
		if _, ok := seen[j.ID]; ok {
			return fmt.Errorf("job %q: %w", j.ID, ErrDuplicateJobID)
		}
		seen[j.ID] = struct{}{}
		if j.Volume > c.MaxVolume {
			return fmt.Errorf("job %q: volume %v > %v: %w", j.ID, j.Volume, c.MaxVolume, ErrJobTooLarge)
		}
	}

	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
