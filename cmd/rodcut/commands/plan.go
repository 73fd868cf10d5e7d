package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rodcut/internal/input"
	"github.com/katalvlaran/rodcut/internal/render"
	"github.com/katalvlaran/rodcut/printqueue"
)

// ErrNoInput is returned when plan is run without --input.
var ErrNoInput = errors.New("no job file: use --input")

type planFlags struct {
	input     string
	maxVolume float64
	maxItems  int
	format    string
}

func newPlanCommand(global *globalFlags) *cobra.Command {
	flags := &planFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Group 3D-print jobs into printer batches",
		Example: `  rodcut plan --input queue.yaml
  rodcut plan -i queue.yaml --max-volume 300 --max-items 2 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, global)
			if err != nil {
				return err
			}

			return runPlan(cmd, a, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "YAML/JSON file {constraints, jobs}")
	cmd.Flags().Float64Var(&flags.maxVolume, "max-volume", 0, "printer volume per batch (overrides file)")
	cmd.Flags().IntVar(&flags.maxItems, "max-items", 0, "printer item slots per batch (overrides file)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json or yaml (default from config)")

	return cmd
}

func runPlan(cmd *cobra.Command, a *app, flags *planFlags) error {
	if flags.input == "" {
		return fmt.Errorf("plan: %w", ErrNoInput)
	}

	problem, err := input.LoadQueueProblem(flags.input)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	c := resolveConstraints(cmd, a, flags, problem.Constraints)
	a.logger.Debug("planning",
		slog.String("input", flags.input),
		slog.Int("jobs", len(problem.Jobs)),
		slog.Float64("max_volume", c.MaxVolume),
		slog.Int("max_items", c.MaxItems),
	)

	plan, err := printqueue.Optimize(problem.Jobs, c)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	a.logger.Debug("planned", slog.Int("batches", len(plan.Batches)), slog.Float64("total_time", plan.TotalTime))

	r, err := render.New(a.out, pick(flags.format, a.cfg.Output.Format), a.color)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	return r.Plan(plan)
}

// resolveConstraints layers flags over the file over config defaults.
func resolveConstraints(cmd *cobra.Command, a *app, flags *planFlags, fromFile printqueue.Constraints) printqueue.Constraints {
	c := fromFile
	if c.MaxVolume == 0 {
		c.MaxVolume = a.cfg.Printer.MaxVolume
	}
	if c.MaxItems == 0 {
		c.MaxItems = a.cfg.Printer.MaxItems
	}
	if cmd.Flags().Changed("max-volume") {
		c.MaxVolume = flags.maxVolume
	}
	if cmd.Flags().Changed("max-items") {
		c.MaxItems = flags.maxItems
	}

	return c
}
