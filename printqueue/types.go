package printqueue

import (
	"errors"
	"fmt"
)

// Job is a single model waiting to be printed.
type Job struct {
	// ID identifies the job in the print order; must be unique and non-empty.
	ID string `json:"id" yaml:"id"`

	// Volume is the build volume the model occupies.
	Volume float64 `json:"volume" yaml:"volume"`

	// Priority ranks urgency; lower prints earlier.
	Priority int `json:"priority" yaml:"priority"`

	// PrintTime is the time to print the model alone, in minutes.
	PrintTime float64 `json:"print_time" yaml:"print_time"`
}

// Constraints describes printer capacity per batch.
type Constraints struct {
	MaxVolume float64 `json:"max_volume" yaml:"max_volume"`
	MaxItems  int     `json:"max_items" yaml:"max_items"`
}

// Batch is one printer run.
type Batch struct {
	JobIDs   []string `json:"job_ids" yaml:"job_ids"`
	Volume   float64  `json:"volume" yaml:"volume"`
	Duration float64  `json:"duration" yaml:"duration"`
}

// Plan is the outcome of Optimize.
type Plan struct {
	// PrintOrder lists job IDs batch by batch.
	PrintOrder []string `json:"print_order" yaml:"print_order"`

	// TotalTime is the sum of batch durations.
	TotalTime float64 `json:"total_time" yaml:"total_time"`

	// Batches details every printer run in order.
	Batches []Batch `json:"batches" yaml:"batches"`
}

// ErrInvalidInput is the kind shared by every printqueue validation failure.
var ErrInvalidInput = errors.New("printqueue: invalid input")

var (
	// ErrInvalidConstraints indicates MaxVolume ≤ 0 (or NaN) or MaxItems < 1.
	ErrInvalidConstraints = fmt.Errorf("%w: invalid printer constraints", ErrInvalidInput)

	// ErrInvalidJob indicates an empty ID or a negative/non-finite volume or print time.
	ErrInvalidJob = fmt.Errorf("%w: invalid job", ErrInvalidInput)

	// ErrDuplicateJobID indicates two jobs sharing an ID.
	ErrDuplicateJobID = fmt.Errorf("%w: duplicate job id", ErrInvalidInput)

	// ErrJobTooLarge indicates a job that cannot fit any batch on its own.
	ErrJobTooLarge = fmt.Errorf("%w: job exceeds printer volume", ErrInvalidInput)
)
