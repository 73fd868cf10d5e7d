package rodcut

import "strings"

// PriceTable lists market prices of uncut pieces.
// Element k holds the price of a piece of length k+1, so a table of N
// entries prices every length 1..N.
type PriceTable []float64

// Price returns the price of a piece of length i (1-based).
// The caller guarantees 1 ≤ i ≤ len(p).
func (p PriceTable) Price(i int) float64 {
	return p[i-1]
}

// Solution holds the outcome of a solver.
type Solution struct {
	// MaxProfit is the best revenue achievable for the rod.
	MaxProfit float64

	// Cuts is one optimal partition: positive piece lengths summing to the
	// rod length. Empty (non-nil) for a zero-length rod.
	Cuts []int

	// NumberOfCuts counts cut boundaries: len(Cuts)-1 when the rod was cut
	// into more than one piece, otherwise 0.
	NumberOfCuts int
}

// Strategy selects how the recurrence is evaluated.
//
//   - StrategyMemoized  — top-down recursion with a per-call arena cache.
//   - StrategyTabulated — bottom-up iterative fill, no call-stack growth.
type Strategy int

const (
	// StrategyMemoized evaluates profit(n) recursively, caching each sub-length once.
	StrategyMemoized Strategy = iota

	// StrategyTabulated fills profit[0..n] in increasing order.
	StrategyTabulated
)

// String returns the canonical short name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyMemoized:
		return "memo"
	case StrategyTabulated:
		return "table"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name to a Strategy.
// Accepted (case-insensitive): "memo", "memoized", "top-down",
// "table", "tabulated", "bottom-up".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "memo", "memoized", "top-down":
		return StrategyMemoized, nil
	case "table", "tabulated", "bottom-up":
		return StrategyTabulated, nil
	default:
		return 0, ErrUnsupportedStrategy
	}
}

// CutOrder controls how the reconstructed cuts are reported.
//
//   - TakenOrder     — the order pieces are taken off the rod, first piece first.
//   - AscendingOrder — sorted by piece length, shortest first.
type CutOrder int

const (
	// TakenOrder reports pieces in reconstruction order.
	TakenOrder CutOrder = iota

	// AscendingOrder reports pieces sorted ascending.
	AscendingOrder
)

// String returns the canonical name of o.
func (o CutOrder) String() string {
	switch o {
	case TakenOrder:
		return "taken"
	case AscendingOrder:
		return "ascending"
	default:
		return "unknown"
	}
}

// ParseOrder maps a name ("taken", "ascending", case-insensitive) to a CutOrder.
func ParseOrder(name string) (CutOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "taken", "take":
		return TakenOrder, nil
	case "ascending", "asc", "sorted":
		return AscendingOrder, nil
	default:
		return 0, ErrUnsupportedOrder
	}
}

// Options configures Solve.
//
// Fields:
//   - Strategy — StrategyMemoized or StrategyTabulated.
//   - Order    — TakenOrder or AscendingOrder for Solution.Cuts.
type Options struct {
	Strategy Strategy
	Order    CutOrder
}

// DefaultOptions returns the memoized strategy reporting cuts in taken order.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyMemoized,
		Order:    TakenOrder,
	}
}
