// SPDX-License-Identifier: MIT

// Command e4gacheck runs the algebra property checks and exits non-zero when
// any identity is violated.
//
//	e4gacheck --seed 42 --scale 0.1 --check gp-associativity --format yaml
//
// Flag defaults come from E4GA_SEED, E4GA_ITERATION_SCALE, E4GA_PARALLELISM
// and E4GA_FORMAT. Each failing check prints one line to stderr naming the
// property and its deviation.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/e4ga/oracle"
)

const (
	formatText = "text"
	formatYAML = "yaml"

	exitFailed = 1
	exitUsage  = 2
)

// errChecksFailed marks a run that completed with failing checks. The
// diagnostics are already printed when it is returned.
var errChecksFailed = errors.New("e4gacheck: checks failed")

type options struct {
	seed     int64
	timeSeed bool
	scale    float64
	parallel int
	checks   []string
	format   string
	verbose  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadEnv(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "e4gacheck:", err)
		os.Exit(exitUsage)
	}
	if err = newRootCmd(cfg, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if errors.Is(err, errChecksFailed) {
			os.Exit(exitFailed)
		}
		fmt.Fprintln(os.Stderr, "e4gacheck:", err)
		os.Exit(exitUsage)
	}
}

func newRootCmd(cfg envConfig, out, errOut io.Writer) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "e4gacheck",
		Short: "Check the identities of the 4D Euclidean geometric algebra on random inputs",
		Long: `e4gacheck draws random multivectors, blades and versors and checks the
algebra's identities (distributivity, associativity, contractions, duality,
versor metric preservation, series, parsing, ...) within fixed tolerances.

Available checks:
  ` + strings.Join(oracle.CheckNames(), "\n  "),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", cfg.Seed, "run seed (env E4GA_SEED)")
	f.BoolVar(&opts.timeSeed, "time-seed", false, "seed from the wall clock; the seed is printed in the report")
	f.Float64Var(&opts.scale, "scale", cfg.IterationScale, "iteration scale multiplying every check's loop count (env E4GA_ITERATION_SCALE)")
	f.IntVar(&opts.parallel, "parallel", cfg.Parallelism, "checks run at once, 0 = GOMAXPROCS (env E4GA_PARALLELISM)")
	f.StringArrayVar(&opts.checks, "check", nil, "run only this check (repeatable)")
	f.StringVar(&opts.format, "format", cfg.Format, "report format: text|yaml (env E4GA_FORMAT)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-check progress to stderr")
	return cmd
}

// newLogger writes JSON logs to w: errors only, or everything when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}

func run(ctx context.Context, opts options, out, errOut io.Writer) error {
	if opts.format != formatText && opts.format != formatYAML {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatYAML)
	}
	if !(opts.scale > 0) || opts.scale > oracle.MaxIterationScale {
		return fmt.Errorf("scale must be in (0, %g], got %g", oracle.MaxIterationScale, opts.scale)
	}
	if opts.parallel < 0 {
		return fmt.Errorf("parallel must be >= 0, got %d", opts.parallel)
	}
	if opts.timeSeed {
		opts.seed = time.Now().UnixNano()
	}

	log := newLogger(errOut, opts.verbose)
	defer func() { _ = log.Sync() }()

	runnerOpts := []oracle.Option{
		oracle.WithSeed(opts.seed),
		oracle.WithIterationScale(opts.scale),
		oracle.WithChecks(opts.checks...),
		oracle.WithLogger(log),
	}
	if opts.parallel > 0 {
		runnerOpts = append(runnerOpts, oracle.WithParallelism(opts.parallel))
	}
	rep, err := oracle.NewRunner(runnerOpts...).Run(ctx)
	if err != nil {
		return err
	}
	return emitReport(rep, opts.format, out, errOut)
}

// emitReport writes rep to out in format and one diagnostic line per failed
// check to errOut. It returns errChecksFailed when any check failed.
func emitReport(rep *oracle.Report, format string, out, errOut io.Writer) error {
	var err error
	if format == formatYAML {
		err = rep.WriteYAML(out)
	} else {
		err = rep.WriteText(out)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	failures := rep.Failures()
	for _, f := range failures {
		fmt.Fprintln(errOut, f.String())
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d: %w", len(failures), len(rep.Results), errChecksFailed)
	}
	return nil
}
