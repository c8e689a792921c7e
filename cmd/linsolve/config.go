package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/report"
)

// Demo names accepted by -demo.
const (
	demoAll       = "all"
	demoInverse   = "inverse"
	demoLU        = "lu"
	demoIterative = "iterative"
)

// methodBoth runs Jacobi and Gauss-Seidel side by side.
const methodBoth = "both"

var errBadFlag = errors.New("invalid flag value")

type config struct {
	system    string
	methods   []iterative.Method
	tol       float64
	maxIter   int
	precision int
	plot      string
	live      bool
	delay     time.Duration
	demo      string
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var (
		cfg    config
		method string
	)
	fs.StringVar(&cfg.system, "system", "", "load systems from a .yaml, .yml or .lsb file")
	fs.StringVar(&method, "method", methodBoth, "iterative method: jacobi, gauss-seidel or both")
	fs.Float64Var(&cfg.tol, "tol", iterative.DefaultTolerance, "stopping threshold on max |x_new - x_old|")
	fs.IntVar(&cfg.maxIter, "max-iter", iterative.DefaultMaxIterations, "maximum number of sweeps")
	fs.IntVar(&cfg.precision, "precision", report.DefaultPrecision, "decimals for vectors and matrices")
	fs.StringVar(&cfg.plot, "plot", "", "write a convergence chart (png, svg, pdf or interactive html) to this path")
	fs.BoolVar(&cfg.live, "live", false, "redraw the current iterate in place instead of printing a table")
	fs.DurationVar(&cfg.delay, "live-delay", 50*time.Millisecond, "pause between sweeps in -live mode")
	fs.StringVar(&cfg.demo, "demo", demoAll, "built-in demo when -system is empty: all, inverse, lu, iterative")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if math.IsNaN(cfg.tol) || math.IsInf(cfg.tol, 0) || cfg.tol <= 0 {
		return config{}, fmt.Errorf("-tol %g: must be finite and > 0: %w", cfg.tol, errBadFlag)
	}
	if cfg.maxIter < 1 {
		return config{}, fmt.Errorf("-max-iter %d: must be >= 1: %w", cfg.maxIter, errBadFlag)
	}
	if cfg.precision < 0 {
		return config{}, fmt.Errorf("-precision %d: %w", cfg.precision, report.ErrNegativePrecision)
	}
	switch cfg.demo {
	case demoAll, demoInverse, demoLU, demoIterative:
	default:
		return config{}, fmt.Errorf("-demo %q: %w", cfg.demo, errBadFlag)
	}

	if strings.EqualFold(method, methodBoth) {
		cfg.methods = []iterative.Method{iterative.MethodJacobi, iterative.MethodGaussSeidel}
	} else {
		m, err := iterative.ParseMethod(method)
		if err != nil {
			return config{}, fmt.Errorf("-method: %w", err)
		}
		cfg.methods = []iterative.Method{m}
	}

	return cfg, nil
}
