package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seat-ca/internal/automaton"
	"seat-ca/internal/config"
	"seat-ca/internal/core"
	"seat-ca/internal/logging"
	"seat-ca/internal/textio"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seats",
		Short: "Seat occupancy cellular automaton",
		Long: `seats evolves a waiting-area seat layout until nobody moves.

Layouts are text grids: '.' floor, 'L' empty seat, '#' occupied seat.
Each tick an empty seat fills when no relevant neighbor is occupied, and an
occupied seat empties when at least <threshold> neighbors are occupied.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: info, debug, trace")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newRunCmd(),
		newStepCmd(),
		newGenerateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// addRuleFlags registers the flags that override the simulation section of
// the config.
func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().String("strategy", "", "neighbor strategy: adjacent or visible")
	cmd.Flags().Int("threshold", 0, "occupied neighbors that empty a seat (0 = strategy default)")
	cmd.Flags().Int("workers", 0, "goroutines per tick (0 or 1 = sequential)")
	cmd.Flags().Int("max-ticks", 0, "give up after this many ticks (0 = unbounded; default from config)")
}

// loadSettings resolves config file, environment and flags, in that order.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Simulation.Strategy, _ = cmd.Flags().GetString("strategy")
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Simulation.Threshold, _ = cmd.Flags().GetInt("threshold")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Simulation.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("max-ticks") {
		cfg.Simulation.MaxTicks, _ = cmd.Flags().GetInt("max-ticks")
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}

func newEngine(cfg *config.Config, logger *slog.Logger) (*automaton.Engine, error) {
	strategy, err := cfg.Simulation.ParsedStrategy()
	if err != nil {
		return nil, err
	}
	return automaton.New(strategy, cfg.Simulation.EffectiveThreshold(),
		automaton.WithWorkers(cfg.Simulation.Workers),
		automaton.WithMaxTicks(cfg.Simulation.MaxTicks),
		automaton.WithLogger(logger),
	)
}

// loadGrid reads a layout from the file named in args, or stdin when args is
// empty or "-".
func loadGrid(cmd *cobra.Command, args []string) (*core.Grid, error) {
	var (
		lines []string
		err   error
	)
	if len(args) == 0 || args[0] == "-" {
		lines, err = textio.ReadLines(cmd.InOrStdin())
	} else {
		lines, err = textio.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	g, err := core.Load(lines)
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}
	return g, nil
}
