// Package commands implements the rodcut CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rodcut/internal/config"
)

// Build metadata, set with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// globalFlags holds persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

// app is the per-invocation environment built from flags and config.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	color  bool
}

// NewRootCommand assembles the rodcut command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "rodcut",
		Short: "Optimal rod cutting and print-queue batching",
		Long: `rodcut solves cutting-stock style problems from the command line.

Commands:
  solve     Maximize revenue from cutting a rod into priced pieces
  plan      Group 3D-print jobs into printer batches
  version   Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (default: rodcut.yaml in ., ./config, ~/.config/rodcut)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newSolveCommand(flags))
	rootCmd.AddCommand(newPlanCommand(flags))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadApp reads configuration and builds the logger for cmd.
func loadApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Logging, flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded",
		slog.String("path", flags.configPath),
		slog.String("strategy", cfg.Solver.Strategy),
		slog.String("format", cfg.Output.Format),
	)

	return &app{
		cfg:    cfg,
		logger: logger,
		out:    cmd.OutOrStdout(),
		color:  cfg.Output.Color && !flags.noColor,
	}, nil
}

// newLogger builds a text or JSON slog logger writing to w.
func newLogger(cfg config.LoggingConfig, verbose bool, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler).With(slog.String("service", "rodcut")), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rodcut %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
