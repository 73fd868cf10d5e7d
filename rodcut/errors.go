// SPDX-License-Identifier: MIT
// Package: rodcut
//
// errors.go — sentinel errors for the rodcut package.
//
// Error policy:
//   • A single error kind, ErrInvalidInput, covers every contract violation.
//   • Specific causes are sentinels that wrap ErrInvalidInput, so callers may
//     branch on either: errors.Is(err, ErrShortPriceTable) or
//     errors.Is(err, ErrInvalidInput).
//   • Return sites attach parameters with %w; sentinels never carry them.
//   • Solvers never panic on user input.

package rodcut

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the kind shared by every rodcut validation failure.
var ErrInvalidInput = errors.New("rodcut: invalid input")

// ErrNegativeLength indicates a rod length below zero.
var ErrNegativeLength = fmt.Errorf("%w: negative rod length", ErrInvalidInput)

// ErrShortPriceTable indicates that the price table has fewer entries than
// the rod length, so price lookups would run out of range.
var ErrShortPriceTable = fmt.Errorf("%w: price table shorter than rod length", ErrInvalidInput)

// ErrBadPrice indicates a negative, NaN or infinite price.
var ErrBadPrice = fmt.Errorf("%w: price must be finite and non-negative", ErrInvalidInput)

// ErrInvalidPartition indicates a cut sequence that is not a partition of the
// rod into priced, positive-length pieces.
var ErrInvalidPartition = fmt.Errorf("%w: invalid partition", ErrInvalidInput)

// ErrUnsupportedStrategy indicates an unknown Strategy value or name.
var ErrUnsupportedStrategy = fmt.Errorf("%w: unsupported strategy", ErrInvalidInput)

// ErrUnsupportedOrder indicates an unknown CutOrder value or name.
var ErrUnsupportedOrder = fmt.Errorf("%w: unsupported cut order", ErrInvalidInput)
