// Command crosscut solves Max-Cut instances on a simulated RRAM
// crossbar.
//
// Usage:
//
//	crosscut --graph g.txt [--hwdes device.ini] [--algorithm psa|rounding]
//	         [--trials 50] [--cycles 200] [--tau 1] [--param 2]
//	         [--workers 0] [--seed 0] [--time-limit 0]
//	         [--export-psav out.psav] [--verbose]
//
// The command reads a whitespace edge list, loads (or defaults) the
// device description, runs the selected solver and prints the run
// summary. Per-trial progress streams at debug level.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/annealix/crosscut/graphio"
	"github.com/annealix/crosscut/hwconfig"
	"github.com/annealix/crosscut/maxcut"
	"github.com/annealix/crosscut/xbar"
)

// cliFlags collects everything the root command parses.
type cliFlags struct {
	graphPath  string
	hwdesPath  string
	algorithm  string
	trials     int
	cycles     int
	tau        int
	paramMode  int
	workers    int
	seed       int64
	timeLimit  time.Duration
	exportPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("run failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	var cmd = &cobra.Command{
		Use:           "crosscut",
		Short:         "Max-Cut solver on a simulated RRAM crossbar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.graphPath, "graph", "", "edge-list graph file (required)")
	cmd.Flags().StringVar(&flags.hwdesPath, "hwdes", "", "INI device description; empty selects the reference device")
	cmd.Flags().StringVar(&flags.algorithm, "algorithm", "psa", "solver: psa or rounding")
	cmd.Flags().IntVar(&flags.trials, "trials", maxcut.DefaultTrials, "independent trials")
	cmd.Flags().IntVar(&flags.cycles, "cycles", maxcut.DefaultCycles, "annealing gain levels")
	cmd.Flags().IntVar(&flags.tau, "tau", maxcut.DefaultTau, "inner iterations per gain level")
	cmd.Flags().IntVar(&flags.paramMode, "param", maxcut.DefaultParamMode, "schedule calibration mode (1 or 2)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "trial concurrency; 0 uses GOMAXPROCS")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "RNG seed; 0 selects the fixed default")
	cmd.Flags().DurationVar(&flags.timeLimit, "time-limit", 0, "wall-clock budget for the whole run; 0 is unlimited")
	cmd.Flags().StringVar(&flags.exportPath, "export-psav", "", "export the instance in PSAV layout after solving")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "per-trial debug logging")
	cobra.CheckErr(cmd.MarkFlagRequired("graph"))

	return cmd
}

// run wires the pipeline: load → configure → solve → report.
func run(ctx context.Context, flags cliFlags) error {
	// Stage 1: logging and cancellation.
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if flags.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stage 2: inputs.
	w, err := graphio.ReadEdgeList(flags.graphPath)
	if err != nil {
		return err
	}
	prob, err := maxcut.NewProblem(w)
	if err != nil {
		return err
	}

	var cfg xbar.DeviceConfig
	if flags.hwdesPath == "" {
		cfg = hwconfig.Default()
	} else if cfg, err = hwconfig.Load(flags.hwdesPath); err != nil {
		return err
	}

	var algo maxcut.Algo
	switch flags.algorithm {
	case "psa":
		algo = maxcut.AlgoPSA
	case "rounding":
		algo = maxcut.AlgoRandomRounding
	default:
		return fmt.Errorf("unknown algorithm %q (want psa or rounding)", flags.algorithm)
	}

	logrus.WithFields(logrus.Fields{
		"graph":  flags.graphPath,
		"nodes":  prob.N(),
		"algo":   flags.algorithm,
		"trials": flags.trials,
	}).Info("solving")

	// Stage 3: solve.
	var opts = maxcut.Options{
		Algo:      algo,
		Trials:    flags.trials,
		Cycles:    flags.cycles,
		Tau:       flags.tau,
		ParamMode: flags.paramMode,
		Seed:      flags.seed,
		Workers:   flags.workers,
		TimeLimit: flags.timeLimit,
		OnTrial: func(tr maxcut.TrialResult) {
			logrus.WithFields(logrus.Fields{
				"trial":   tr.Trial,
				"cut":     tr.Cut,
				"elapsed": tr.Elapsed,
				"retried": tr.Retried,
				"failed":  tr.Failed,
			}).Debug("trial finished")
		},
	}

	start := time.Now()
	res, err := maxcut.Solve(ctx, prob, cfg, opts)
	if err != nil {
		return err
	}

	// Stage 4: report.
	logrus.WithFields(logrus.Fields{
		"best_cut":     res.BestCut,
		"cut_mean":     res.CutMean,
		"cut_min":      res.CutMin,
		"cut_max":      res.CutMax,
		"cut_std":      res.CutStd,
		"trials":       res.Trials,
		"failed":       res.Failed,
		"mean_elapsed": res.MeanElapsed,
		"total":        time.Since(start),
	}).Info("run complete")
	fmt.Printf("best cut: %g\n", res.BestCut)

	if flags.exportPath != "" {
		if err = graphio.WritePSAV(flags.exportPath, prob.W, res.BestCut); err != nil {
			return err
		}
		logrus.WithField("path", flags.exportPath).Info("instance exported")
	}

	return nil
}
