// Package train drives a network through repeated epochs over a pattern set.
package train

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/born-ml/bpnet/internal/dataset"
	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/rng"
)

var (
	// ErrDimensionMismatch is returned when the patterns do not fit the network.
	ErrDimensionMismatch = errors.New("pattern dimensions do not match network")
	// ErrNilNetwork is returned by New when no network is given.
	ErrNilNetwork = errors.New("nil network")
	// ErrNilSource is returned by New when no shuffle source is given.
	ErrNilSource = errors.New("nil random source")
)

// Config controls when training stops and how progress is logged.
type Config struct {
	Epochs         int          // epoch budget; 0 trains nothing
	ErrorThreshold float64      // stop once an epoch's error falls below it; 0 disables
	LogInterval    int          // epochs between progress records; 0 disables
	Logger         *slog.Logger // nil discards
}

// DefaultConfig returns an unbounded run that stops at the usual XOR
// threshold of 0.0004.
func DefaultConfig() Config {
	return Config{
		Epochs:         math.MaxInt,
		ErrorThreshold: 0.0004,
	}
}

// Result summarizes a finished run.
type Result struct {
	// Epochs is the number of completed epochs, not counting the epoch that
	// reached the threshold.
	Epochs int
	// Error is the summed pattern error of the last epoch run.
	Error float64
	// Converged reports whether the threshold stopped the run.
	Converged bool
	// Outputs holds the last outputs seen for each pattern, by pattern index.
	Outputs [][]float64
	// Elapsed is the wall time spent in the epoch loop.
	Elapsed time.Duration
}

// EpochsPerSecond returns the training speed, 0 if no time elapsed.
func (r Result) EpochsPerSecond() float64 {
	sec := r.Elapsed.Seconds()
	if sec <= 0 {
		return 0
	}
	return float64(r.Epochs) / sec
}

// Trainer presents patterns to a network in shuffled order, one weight
// update per pattern.
type Trainer struct {
	net *nn.Network
	src rng.Source
	cfg Config
	log *slog.Logger
}

// New creates a trainer. src drives the per-epoch shuffle; it may be the
// same source the network was built with.
func New(net *nn.Network, src rng.Source, cfg Config) (*Trainer, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if src == nil {
		return nil, ErrNilSource
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Trainer{net: net, src: src, cfg: cfg, log: log}, nil
}

// Run trains until the epoch budget is spent or an epoch's error drops
// below the threshold.
//
// Every epoch resets the pattern order, shuffles it, then presents each
// pattern: SetInputs, Process, Outputs, AdjustWeights. The epoch's error is
// the sum of the pattern errors.
func (t *Trainer) Run(set dataset.Set) (Result, error) {
	if err := t.check(set); err != nil {
		return Result{}, err
	}

	outputs := make([][]float64, len(set))
	for i := range outputs {
		outputs[i] = make([]float64, t.net.OutputSize())
	}
	order := make([]int, len(set))

	res := Result{Outputs: outputs}
	start := time.Now()

	epoch := 0
	for ; epoch < t.cfg.Epochs; epoch++ {
		rng.Shuffle(t.src, order)

		sum := 0.0
		for _, p := range order {
			e, err := t.present(set[p], outputs[p])
			if err != nil {
				return Result{}, fmt.Errorf("epoch %d pattern %d: %w", epoch, p, err)
			}
			sum += e
		}
		res.Error = sum

		if t.cfg.LogInterval > 0 && epoch%t.cfg.LogInterval == 0 {
			t.log.Debug("epoch", "epoch", epoch, "error", sum)
		}

		if sum < t.cfg.ErrorThreshold {
			res.Converged = true
			break
		}
	}

	res.Epochs = epoch
	res.Elapsed = time.Since(start)

	t.log.Info("training stopped",
		"epochs", res.Epochs,
		"error", res.Error,
		"converged", res.Converged,
		"elapsed", res.Elapsed)
	return res, nil
}

func (t *Trainer) present(p dataset.Pattern, out []float64) (float64, error) {
	if err := t.net.SetInputs(p.Inputs); err != nil {
		return 0, err
	}
	t.net.Process()
	if err := t.net.Outputs(out); err != nil {
		return 0, err
	}
	return t.net.AdjustWeights(out, p.Targets)
}

func (t *Trainer) check(set dataset.Set) error {
	in, out, err := set.Dims()
	if err != nil {
		return err
	}
	if in != t.net.InputSize() || out != t.net.OutputSize() {
		return fmt.Errorf("%w: patterns are %d->%d, network is %d->%d",
			ErrDimensionMismatch, in, out, t.net.InputSize(), t.net.OutputSize())
	}
	return nil
}
