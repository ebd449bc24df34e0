package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cupsim/cupsim/sim"
	"github.com/cupsim/cupsim/sim/trace"
)

var (
	// Flags shared by every command
	logLevel         string // Log verbosity level
	defaultsFilePath string // Path to the presets YAML file

	// CLI flags for a single run
	cups          string // Initial cup order, e.g. 389125467
	size          int    // Total cups after extension (0 = input length)
	rounds        int64  // Number of rounds to play
	progressEvery int64  // Log progress every N rounds (0 = off)
	preset        string // Named preset from defaults.yaml
	verify        bool   // Check the single-cycle invariant after the run
	traceLevel    string // Move trace level: none or moves
	traceLimit    int64  // Max moves kept in the trace
	summarize     bool   // Include a trace summary in the results
)

// runOptions controls the optional checks and tracing around a run.
type runOptions struct {
	Verify    bool
	Trace     trace.TraceConfig
	Summarize bool
	TraceOut  io.Writer // recorded moves are written here when tracing
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cupsim",
	Short: "Simulator for the crab's cup-shuffling game",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envCfg, err := parseEnv()
		if err != nil {
			return err
		}
		applyEnv(cmd, envCfg)

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// applyEnv fills in flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command, envCfg envConfig) {
	if !cmd.Flags().Changed("log") {
		logLevel = envCfg.LogLevel
	}
	if !cmd.Flags().Changed("defaults") {
		defaultsFilePath = envCfg.DefaultsPath
	}
	if envCfg.Cups != "" && cmd.Flags().Lookup("cups") != nil && !cmd.Flags().Changed("cups") {
		cups = envCfg.Cups
	}
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cup simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sim.NewSimConfig(size, rounds, progressEvery)
		if preset != "" {
			defaults, err := loadDefaultsConfig(defaultsFilePath)
			if err != nil {
				logrus.Fatalf("Failed to load presets: %v", err)
			}
			p, err := defaults.Preset(preset)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			// Explicit flags override the preset
			if !cmd.Flags().Changed("size") {
				cfg.Size = p.Size
			}
			if !cmd.Flags().Changed("rounds") {
				cfg.Rounds = p.Rounds
			}
			if !cmd.Flags().Changed("progress") {
				cfg.ProgressEvery = p.ProgressEvery
			}
			if cups == "" {
				cups = defaults.Cups
			}
		} else if !cmd.Flags().Changed("rounds") {
			logrus.Fatalf("--rounds is required unless --preset is given")
		}
		if cups == "" {
			logrus.Fatalf("Cup order not provided. Use --cups or CUPSIM_CUPS.")
		}

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (want none or moves)", traceLevel)
		}
		opts := runOptions{
			Verify:    verify,
			Trace:     trace.TraceConfig{Level: trace.TraceLevel(traceLevel), Limit: traceLimit},
			Summarize: summarize,
			TraceOut:  cmd.ErrOrStderr(),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		report, err := runSimulation(ctx, cups, cfg, opts)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := report.Print(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Failed to print results: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runSimulation parses cupOrder, runs the configured rounds and returns the
// report. Every configuration and input error is returned before the first
// round is played.
func runSimulation(ctx context.Context, cupOrder string, cfg sim.SimConfig, opts runOptions) (sim.Report, error) {
	order, err := sim.ParseOrder(cupOrder)
	if err != nil {
		return sim.Report{}, err
	}
	startTime := time.Now()
	s, err := sim.NewSimulator(cfg, order)
	if err != nil {
		return sim.Report{}, err
	}
	moves := s.EnableTrace(opts.Trace)
	logrus.Infof("Starting simulation with %d cups, rounds=%d, trace=%q", s.Ring().Len(), cfg.Rounds, opts.Trace.Level)

	if err := s.Run(ctx); err != nil {
		return sim.Report{}, err
	}
	if opts.Verify {
		if err := s.Ring().Validate(); err != nil {
			return sim.Report{}, fmt.Errorf("ring invariant violated after %d rounds: %w", s.RoundsDone(), err)
		}
		logrus.Debugf("Ring of %d cups verified as a single cycle", s.Ring().Len())
	}

	report := sim.NewReport(s, cupOrder, len(order), startTime)
	if moves != nil {
		if opts.TraceOut != nil {
			if err := moves.WriteMoves(opts.TraceOut); err != nil {
				return sim.Report{}, fmt.Errorf("write trace: %w", err)
			}
		}
		if opts.Summarize {
			report.TraceSummary = trace.Summarize(moves)
		}
	}
	return report, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsFilePath, "defaults", "defaults.yaml", "Path to presets YAML file")

	runCmd.Flags().StringVar(&cups, "cups", "", "Initial cup order, digits (389125467) or separated integers")
	runCmd.Flags().IntVar(&size, "size", 0, "Total number of cups after extension (0 = input length)")
	runCmd.Flags().Int64Var(&rounds, "rounds", 0, "Number of rounds to play")
	runCmd.Flags().Int64Var(&progressEvery, "progress", 0, "Log progress every N rounds at debug level (0 = off)")
	runCmd.Flags().StringVar(&preset, "preset", "", "Named preset from the defaults file")
	runCmd.Flags().BoolVar(&verify, "verify", false, "Check the ring is a single cycle after the run")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Move trace level (none, moves)")
	runCmd.Flags().Int64Var(&traceLimit, "trace-limit", 100, "Max moves recorded when tracing (0 = all)")
	runCmd.Flags().BoolVar(&summarize, "summarize-trace", false, "Add a trace summary to the results")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
