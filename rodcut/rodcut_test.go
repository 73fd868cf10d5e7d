package rodcut_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rodcut/rodcut"
)

// solveCase is one concrete rod-cutting scenario checked against both strategies.
type solveCase struct {
	name       string
	length     int
	prices     rodcut.PriceTable
	wantProfit float64
	wantTaken  []int // cuts in taken order, identical for both strategies
	wantNumber int
}

var solveCases = []solveCase{
	{
		name:       "basic",
		length:     5,
		prices:     rodcut.PriceTable{2, 5, 7, 8, 10},
		wantProfit: 12,
		wantTaken:  []int{1, 2, 2},
		wantNumber: 2,
	},
	{
		name:       "selling whole rod is optimal",
		length:     3,
		prices:     rodcut.PriceTable{1, 3, 8},
		wantProfit: 8,
		wantTaken:  []int{3},
		wantNumber: 0,
	},
	{
		name:       "unit pieces",
		length:     4,
		prices:     rodcut.PriceTable{3, 5, 6, 7},
		wantProfit: 12,
		wantTaken:  []int{1, 1, 1, 1},
		wantNumber: 3,
	},
	{
		name:       "textbook CLRS table",
		length:     10,
		prices:     rodcut.PriceTable{1, 5, 8, 9, 10, 17, 17, 20, 24, 30},
		wantProfit: 30,
		wantTaken:  []int{10},
		wantNumber: 0,
	},
	{
		name:       "textbook CLRS length 7",
		length:     7,
		prices:     rodcut.PriceTable{1, 5, 8, 9, 10, 17, 17, 20, 24, 30},
		wantProfit: 18,
		wantTaken:  []int{1, 6},
		wantNumber: 1,
	},
	{
		name:       "longer table than rod",
		length:     2,
		prices:     rodcut.PriceTable{1, 5, 100},
		wantProfit: 5,
		wantTaken:  []int{2},
		wantNumber: 0,
	},
	{
		name:       "all zero prices",
		length:     3,
		prices:     rodcut.PriceTable{0, 0, 0},
		wantProfit: 0,
		wantTaken:  []int{1, 1, 1},
		wantNumber: 2,
	},
	{
		name:       "fractional prices",
		length:     3,
		prices:     rodcut.PriceTable{0.5, 1.25, 1.5},
		wantProfit: 1.75,
		wantTaken:  []int{1, 2},
		wantNumber: 1,
	},
}

// TestMemoized_ConcreteCases checks profit, taken-order cuts and cut count.
func TestMemoized_ConcreteCases(t *testing.T) {
	for _, tc := range solveCases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := rodcut.Memoized(tc.length, tc.prices)
			require.NoError(t, err)
			assert.Equal(t, tc.wantProfit, sol.MaxProfit, "max profit")
			assert.Equal(t, tc.wantTaken, sol.Cuts, "cuts in taken order")
			assert.Equal(t, tc.wantNumber, sol.NumberOfCuts, "number of cuts")
		})
	}
}

// TestTabulated_ConcreteCases checks that the tabulated entry point reports
// the same partition sorted ascending.
func TestTabulated_ConcreteCases(t *testing.T) {
	for _, tc := range solveCases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := rodcut.Tabulated(tc.length, tc.prices)
			require.NoError(t, err)
			assert.Equal(t, tc.wantProfit, sol.MaxProfit, "max profit")
			assert.IsNonDecreasing(t, sol.Cuts, "tabulated cuts are sorted")
			assert.ElementsMatch(t, tc.wantTaken, sol.Cuts, "same pieces as memoized")
			assert.Equal(t, tc.wantNumber, sol.NumberOfCuts, "number of cuts")
		})
	}
}

// TestSolve_StrategiesAgreeInTakenOrder verifies identical tie-breaking:
// with TakenOrder both strategies return the very same Solution.
func TestSolve_StrategiesAgreeInTakenOrder(t *testing.T) {
	for _, tc := range solveCases {
		memo, err := rodcut.Solve(tc.length, tc.prices, rodcut.Options{Strategy: rodcut.StrategyMemoized, Order: rodcut.TakenOrder})
		require.NoError(t, err, tc.name)
		table, err := rodcut.Solve(tc.length, tc.prices, rodcut.Options{Strategy: rodcut.StrategyTabulated, Order: rodcut.TakenOrder})
		require.NoError(t, err, tc.name)
		assert.Equal(t, memo, table, tc.name)
	}
}

// TestSolve_AscendingOrder checks the Order option on the memoized strategy.
func TestSolve_AscendingOrder(t *testing.T) {
	opts := rodcut.DefaultOptions()
	opts.Order = rodcut.AscendingOrder

	sol, err := rodcut.Solve(7, rodcut.PriceTable{1, 5, 8, 9, 10, 17, 17}, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6}, sol.Cuts)

	sol, err = rodcut.Solve(5, rodcut.PriceTable{2, 5, 7, 8, 10}, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, sol.Cuts)
}

// TestSolve_ZeroLength covers the empty rod for both strategies, including
// an empty price table.
func TestSolve_ZeroLength(t *testing.T) {
	for _, prices := range []rodcut.PriceTable{nil, {}, {4, 2}} {
		for _, solve := range []func(int, rodcut.PriceTable) (rodcut.Solution, error){rodcut.Memoized, rodcut.Tabulated} {
			sol, err := solve(0, prices)
			require.NoError(t, err)
			assert.Equal(t, 0.0, sol.MaxProfit)
			assert.NotNil(t, sol.Cuts, "cuts must be empty, not nil")
			assert.Empty(t, sol.Cuts)
			assert.Equal(t, 0, sol.NumberOfCuts)
		}
	}
}

// TestSolve_InvalidInput verifies that every contract violation is reported
// as ErrInvalidInput plus its specific sentinel.
func TestSolve_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		length int
		prices rodcut.PriceTable
		want   error
	}{
		{"short price table", 5, rodcut.PriceTable{1, 2, 3}, rodcut.ErrShortPriceTable},
		{"nil price table", 1, nil, rodcut.ErrShortPriceTable},
		{"negative length", -1, rodcut.PriceTable{1}, rodcut.ErrNegativeLength},
		{"negative price", 3, rodcut.PriceTable{1, -2, 3}, rodcut.ErrBadPrice},
		{"NaN price", 2, rodcut.PriceTable{math.NaN(), 1}, rodcut.ErrBadPrice},
		{"infinite price", 2, rodcut.PriceTable{1, math.Inf(1)}, rodcut.ErrBadPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, solve := range []func(int, rodcut.PriceTable) (rodcut.Solution, error){rodcut.Memoized, rodcut.Tabulated} {
				sol, err := solve(tc.length, tc.prices)
				assert.ErrorIs(t, err, tc.want)
				assert.ErrorIs(t, err, rodcut.ErrInvalidInput)
				assert.Equal(t, rodcut.Solution{}, sol, "no partial result")
			}
		})
	}
}

// TestSolve_UnusedPricesValidated ensures a bad entry beyond the rod length
// is still rejected.
func TestSolve_UnusedPricesValidated(t *testing.T) {
	_, err := rodcut.Memoized(2, rodcut.PriceTable{1, 3, -5})
	assert.ErrorIs(t, err, rodcut.ErrBadPrice)

	_, err = rodcut.Tabulated(0, rodcut.PriceTable{-1})
	assert.ErrorIs(t, err, rodcut.ErrBadPrice)
}

// TestSolve_ProfitOverflowRejected covers finite prices whose best sum
// would not fit a float64.
func TestSolve_ProfitOverflowRejected(t *testing.T) {
	_, err := rodcut.Memoized(2, rodcut.PriceTable{1.7e308, 1.7e308})
	assert.ErrorIs(t, err, rodcut.ErrBadPrice)
	assert.ErrorIs(t, err, rodcut.ErrInvalidInput)

	_, err = rodcut.Tabulated(2, rodcut.PriceTable{1.7e308, 1.7e308})
	assert.ErrorIs(t, err, rodcut.ErrBadPrice)

	// One piece of the largest price still fits.
	sol, err := rodcut.Tabulated(1, rodcut.PriceTable{1.7e308})
	require.NoError(t, err)
	assert.Equal(t, 1.7e308, sol.MaxProfit)

	// Entries beyond the rod length do not count towards the bound.
	sol, err = rodcut.Memoized(2, rodcut.PriceTable{1, 3, 1.7e308})
	require.NoError(t, err)
	assert.Equal(t, 3.0, sol.MaxProfit)
}

// TestSolve_BadOptions checks unknown enum values.
func TestSolve_BadOptions(t *testing.T) {
	_, err := rodcut.Solve(1, rodcut.PriceTable{1}, rodcut.Options{Strategy: rodcut.Strategy(42)})
	assert.ErrorIs(t, err, rodcut.ErrUnsupportedStrategy)
	assert.ErrorIs(t, err, rodcut.ErrInvalidInput)

	_, err = rodcut.Solve(1, rodcut.PriceTable{1}, rodcut.Options{Order: rodcut.CutOrder(-1)})
	assert.ErrorIs(t, err, rodcut.ErrUnsupportedOrder)
}

// TestSolve_DoesNotMutatePrices guards the immutable-input contract.
func TestSolve_DoesNotMutatePrices(t *testing.T) {
	prices := rodcut.PriceTable{2, 5, 7, 8, 10}
	orig := append(rodcut.PriceTable(nil), prices...)

	_, err := rodcut.Memoized(5, prices)
	require.NoError(t, err)
	_, err = rodcut.Tabulated(5, prices)
	require.NoError(t, err)
	assert.Equal(t, orig, prices)
}

// TestSolve_DeepRod exercises a long rod; recursion depth equals the length.
func TestSolve_DeepRod(t *testing.T) {
	const n = 2000
	prices := make(rodcut.PriceTable, n)
	for i := range prices {
		prices[i] = float64(i + 1) // linear prices: every partition is optimal
	}

	memo, err := rodcut.Memoized(n, prices)
	require.NoError(t, err)
	table, err := rodcut.Tabulated(n, prices)
	require.NoError(t, err)

	assert.Equal(t, float64(n), memo.MaxProfit)
	assert.Equal(t, memo.MaxProfit, table.MaxProfit)
	// Ties never replace the first candidate, so unit pieces win.
	assert.Len(t, memo.Cuts, n)
}
