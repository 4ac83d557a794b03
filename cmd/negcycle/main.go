package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

const (
	exitOK        = 0
	exitCheckFail = 1
	exitArgError  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses global flags, hands the remainder to the chosen subcommand,
// and returns the process exit code (spec §6 "Exit codes"). It never calls
// os.Exit itself, so it stays testable.
func run(argv []string) int {
	fs := flag.NewFlagSet("negcycle", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	wMinStr := fs.String("w", "-1", "minimum edge weight")
	wMaxStr := fs.String("W", "1", "maximum edge weight")
	roundsPerEdge := fs.Float64("r", 1, "rounds per edge; negative selects sweep mode (a single aggressive lowering pass per |r|)")
	typeName := fs.String("t", "f64", "weight numeric type: i32, i64, f32, f64")
	seed := fs.Int64("s", 0, "deterministic seed (0 selects a fixed documented default, not time-based)")
	initName := fs.String("i", "m", "initial weighting policy: m (max), z (zero), u (uniform)")
	algoName := fs.String("a", "bd", "feasibility oracle: bd (bidirectional), d (unidirectional), bf (Bellman-Ford)")
	scc := fs.Bool("scc", false, "restrict the generated graph to its largest strongly connected component")
	check := fs.Bool("check", false, "cross-validate every proposal against Bellman-Ford and verify the final graph")
	output := fs.String("o", "", "output edge-list path (default: standard error)")
	metrics := fs.Bool("metrics", false, "dump the gathered Prometheus metric families of run counters to stderr")
	logFile := fs.String("log-file", "", "write structured logs to this file (rotated via lumberjack) instead of stderr")

	if err := fs.Parse(argv); err != nil {
		return exitArgError
	}

	args := fs.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "negcycle: missing subcommand: gnp|rhg|dsf|complete|cycle|file")
		return exitArgError
	}

	logger, closeLog := newLogger(*logFile)
	defer closeLog()
	runID := uuid.New().String()
	logger = logger.With("run_id", runID)

	cfg := cliConfig{
		wMin:          *wMinStr,
		wMax:          *wMaxStr,
		roundsPerEdge: *roundsPerEdge,
		typeName:      *typeName,
		seed:          *seed,
		initName:      *initName,
		algoName:      *algoName,
		scc:           *scc,
		check:         *check,
		output:        *output,
		metrics:       *metrics,
		subcommand:    args[0],
		subArgs:       args[1:],
		runID:         runID,
		logger:        logger,
	}

	code, err := dispatch(cfg)
	if err != nil {
		logger.Error("negcycle: run failed", "error", err.Error())
		fmt.Fprintf(os.Stderr, "negcycle: %v\n", err)
	}
	return code
}

// cliConfig collects every flag value before the -t dispatch switch picks
// a concrete numeric type and instantiates the generic pipeline once.
type cliConfig struct {
	wMin, wMax    string
	roundsPerEdge float64
	typeName      string
	seed          int64
	initName      string
	algoName      string
	scc           bool
	check         bool
	output        string
	metrics       bool
	subcommand    string
	subArgs       []string
	runID         string
	logger        *slog.Logger
}
