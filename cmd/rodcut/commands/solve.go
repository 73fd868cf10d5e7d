package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rodcut/internal/config"
	"github.com/katalvlaran/rodcut/internal/input"
	"github.com/katalvlaran/rodcut/internal/render"
	"github.com/katalvlaran/rodcut/rodcut"
)

var (
	// ErrNoPrices is returned when neither --prices nor --input supplies a table.
	ErrNoPrices = errors.New("no price table: use --prices or --input")

	// ErrStrategiesDisagree is returned when strategies report different optima.
	ErrStrategiesDisagree = errors.New("strategies disagree on max profit")
)

type solveFlags struct {
	length    int
	prices    string
	input     string
	strategy  string
	order     string
	format    string
	showTable bool
}

func newSolveCommand(global *globalFlags) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Maximize revenue from cutting a rod into priced pieces",
		Example: `  rodcut solve --length 5 --prices 2,5,7,8,10
  rodcut solve --input rod.yaml --strategy both --show-table
  rodcut solve -l 4 -p "3 5 6 7" --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, global)
			if err != nil {
				return err
			}

			return runSolve(cmd, a, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.length, "length", "l", 0, "rod length (defaults to the number of prices)")
	cmd.Flags().StringVarP(&flags.prices, "prices", "p", "", "price list for lengths 1..N, e.g. 2,5,7,8,10")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "YAML/JSON problem file {length, prices}")
	cmd.Flags().StringVarP(&flags.strategy, "strategy", "s", "", "memo, table or both (default from config)")
	cmd.Flags().StringVar(&flags.order, "order", "", "cut order: taken or ascending (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().BoolVar(&flags.showTable, "show-table", false, "also print the bottom-up DP table")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, flags *solveFlags) error {
	problem, err := resolveRodProblem(cmd, flags)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	strategies, err := resolveStrategies(pick(flags.strategy, a.cfg.Solver.Strategy))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	order, err := rodcut.ParseOrder(pick(flags.order, a.cfg.Solver.Order))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	report := render.SolveReport{Length: problem.Length, Prices: problem.Prices}
	for _, s := range strategies {
		opts := rodcut.Options{Strategy: s, Order: order}

		start := time.Now()
		sol, err := rodcut.Solve(problem.Length, problem.Prices, opts)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		a.logger.Debug("solved",
			slog.String("strategy", s.String()),
			slog.Int("length", problem.Length),
			slog.Float64("max_profit", sol.MaxProfit),
			slog.Duration("elapsed", time.Since(start)),
		)

		revenue, err := rodcut.Evaluate(problem.Length, problem.Prices, sol.Cuts)
		if err != nil {
			return fmt.Errorf("solve: verify %s cuts: %w", s, err)
		}
		report.Results = append(report.Results, render.NewStrategyResult(opts, sol, revenue))
	}

	for _, res := range report.Results[1:] {
		if res.MaxProfit != report.Results[0].MaxProfit {
			return fmt.Errorf("solve: %w: %s=%v %s=%v", ErrStrategiesDisagree,
				report.Results[0].Strategy, report.Results[0].MaxProfit, res.Strategy, res.MaxProfit)
		}
	}

	if flags.showTable || a.cfg.Output.ShowTable {
		tbl, err := rodcut.Tabulate(problem.Length, problem.Prices)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		report.Table = render.TableRows(tbl)
	}

	r, err := render.New(a.out, pick(flags.format, a.cfg.Output.Format), a.color)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	return r.Solve(report)
}

// resolveRodProblem merges the input file with --length/--prices; flags win.
// Without an explicit length the rod is as long as the price table.
func resolveRodProblem(cmd *cobra.Command, flags *solveFlags) (input.RodProblem, error) {
	var (
		problem input.RodProblem
		err     error
	)
	if flags.input == "" && !cmd.Flags().Changed("prices") {
		return input.RodProblem{}, ErrNoPrices
	}
	if flags.input != "" {
		problem, err = input.LoadRodProblem(flags.input)
		if err != nil {
			return input.RodProblem{}, err
		}
	}

	if cmd.Flags().Changed("prices") {
		problem.Prices, err = input.ParsePrices(flags.prices)
		if err != nil {
			return input.RodProblem{}, err
		}
		if flags.input == "" {
			problem.Length = len(problem.Prices)
		}
	}
	if cmd.Flags().Changed("length") {
		problem.Length = flags.length
	}
	// A zero-length rod needs no table.
	if problem.Prices == nil && problem.Length > 0 {
		return input.RodProblem{}, ErrNoPrices
	}

	return problem, nil
}

func resolveStrategies(name string) ([]rodcut.Strategy, error) {
	if name == config.StrategyBoth {
		return []rodcut.Strategy{rodcut.StrategyMemoized, rodcut.StrategyTabulated}, nil
	}

	s, err := rodcut.ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	return []rodcut.Strategy{s}, nil
}

// pick returns flag unless it is empty.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}

	return fallback
}
