// Package main provides the bpnet command: it trains a small sigmoid network
// with backpropagation and momentum and prints the result table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/born-ml/bpnet/internal/dataset"
	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/report"
	"github.com/born-ml/bpnet/internal/rng"
	"github.com/born-ml/bpnet/internal/train"
)

const version = "v0.1.0"

// defaultSeed is a seed whose initial weights train the 2-2-1 XOR network
// below the 0.0004 threshold.
const defaultSeed = 2

// options holds everything parsed from the command line.
type options struct {
	budget   budget
	seed     uint64
	hidden   []int
	lr       float64
	momentum float64
	data     string
	inputs   int
	logEvery int
	debug    bool
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: %s [flags] <param1>\n", fs.Name())
		fmt.Fprintln(w, "  param1: if param1 >= 1 then number of epochs")
		fmt.Fprintln(w, "          else if param1 >= 0.0 && param1 < 1.0 then error threshold typical = 0.0004")
		fmt.Fprintln(w, "          else param1 invalid")
		fmt.Fprintf(w, "       %s version\n\nFlags:\n", fs.Name())
		fs.PrintDefaults()
	}
}

func parseArgs(name string, args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	var opts options
	hidden := fs.String("hidden", "2", "comma-separated hidden layer sizes")
	fs.Uint64Var(&opts.seed, "seed", defaultSeed, "seed for weight initialization and shuffling")
	fs.Float64Var(&opts.lr, "lr", nn.DefaultConfig().LearningRate, "learning rate (eta)")
	fs.Float64Var(&opts.momentum, "momentum", nn.DefaultConfig().Momentum, "momentum factor (alpha)")
	fs.StringVar(&opts.data, "data", "", "CSV pattern file (default: built-in XOR patterns)")
	fs.IntVar(&opts.inputs, "inputs", 2, "number of input columns in the CSV pattern file")
	fs.IntVar(&opts.logEvery, "log-every", 1000, "epochs between debug progress records")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return options{}, flag.ErrHelp
	}

	b, err := parseBudget(fs.Arg(0))
	if err != nil {
		return options{}, err
	}
	opts.budget = b

	if opts.hidden, err = parseHidden(*hidden); err != nil {
		return options{}, err
	}
	return opts, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadPatterns(opts options) (dataset.Set, error) {
	if opts.data == "" {
		return dataset.XOR(), nil
	}

	f, err := os.Open(opts.data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := dataset.Load(f, opts.inputs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.data, err)
	}
	return set, nil
}

// run builds the network, trains it and writes the report to stdout.
func run(opts options, stdout io.Writer, logger *slog.Logger) error {
	set, err := loadPatterns(opts)
	if err != nil {
		return err
	}
	in, out, err := set.Dims()
	if err != nil {
		return err
	}

	src := rng.NewSource(opts.seed)
	net, err := nn.New(in, len(opts.hidden), out, src, nn.Config{
		LearningRate: opts.lr,
		Momentum:     opts.momentum,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	for _, size := range opts.hidden {
		if err := net.AddHidden(size); err != nil {
			return err
		}
	}
	if err := net.Finalize(); err != nil {
		return err
	}

	logger.Debug("training",
		"epochs", opts.budget.epochs,
		"threshold", opts.budget.threshold,
		"patterns", len(set),
		"points", net.Points())

	tr, err := train.New(net, src, train.Config{
		Epochs:         opts.budget.epochs,
		ErrorThreshold: opts.budget.threshold,
		LogInterval:    opts.logEvery,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	res, err := tr.Run(set)
	if err != nil {
		return err
	}

	if err := report.Summary(stdout, res); err != nil {
		return err
	}
	if _, err := io.WriteString(stdout, "\n"); err != nil {
		return err
	}
	return report.Table(stdout, set, res.Outputs)
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("bpnet %s\n", version)
		return
	}

	opts, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "bpnet: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, opts.debug)
	if err := run(opts, os.Stdout, logger); err != nil {
		log.Fatalf("bpnet: Error=%v", err)
	}
}
