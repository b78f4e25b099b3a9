package crossval

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	ErrInvalidNSplits    = errors.New("number of splits must be at least 1")
	ErrInvalidTrainRatio = errors.New("train ratio must be in (0, 1]")
	ErrInvalidTestRatio  = errors.New("test ratio must be in (0, 1]")
	ErrInvalidGap        = errors.New("gap must be non-negative")

	ErrTooManySplits       = errors.New("more splits requested than available samples")
	ErrGapTooLarge         = errors.New("gap is too large relative to the train window")
	ErrEmptySelectionRange = errors.New("train and test windows do not fit in the available samples")
)

// Options configures a MonteCarloSplitter. TrainRatio and TestRatio set the
// fraction of the dataset allocated to each train and test window, Gap sets
// the number of samples excluded between the end of a train window and the
// start of its test window, and Seed controls origin placement. A zero Seed
// seeds the splitter from the process-wide generator; any other value makes
// the split sequence deterministic for a given configuration.
type Options struct {
	NSplits    int     `json:"n_splits"`
	TrainRatio float64 `json:"train_ratio"`
	TestRatio  float64 `json:"test_ratio"`
	Gap        int     `json:"gap"`
	Seed       uint64  `json:"seed"`
}

// NewDefaultOptions returns a set of default splitter options
func NewDefaultOptions() *Options {
	return &Options{
		NSplits:    10,
		TrainRatio: 0.6,
		TestRatio:  0.1,
	}
}

// MonteCarloSplitter generates repeated randomized train/test partitions of
// an ordered dataset. Each repetition places a fixed-size train window and a
// fixed-size test window at a random origin, with the test window always
// later in the sequence than its train window.
//
// A positive Gap ends the train window at origin-gap+1 while a zero Gap ends
// it at the origin, so turning on a gap of 1 shortens the train window by
// more than the single sample the gap excludes. Callers relying on constant
// train window lengths across gap settings should account for this.
//
// A MonteCarloSplitter is not safe for concurrent use; construct one per
// goroutine or serialize calls to Split.
type MonteCarloSplitter struct {
	opt *Options
	rng *rand.Rand

	// origins drawn by the most recent call to Split
	origins []int
}

// NewMonteCarloSplitter creates a splitter from the provided options. If no
// options are provided a default is used. Validation against a dataset
// length happens in Split since the length is not known here.
func NewMonteCarloSplitter(opt *Options) (*MonteCarloSplitter, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.NSplits < 1 {
		return nil, fmt.Errorf("got %d splits, %w", opt.NSplits, ErrInvalidNSplits)
	}
	if opt.TrainRatio <= 0 || opt.TrainRatio > 1 {
		return nil, fmt.Errorf("got train ratio of %f, %w", opt.TrainRatio, ErrInvalidTrainRatio)
	}
	if opt.TestRatio <= 0 || opt.TestRatio > 1 {
		return nil, fmt.Errorf("got test ratio of %f, %w", opt.TestRatio, ErrInvalidTestRatio)
	}
	if opt.Gap < 0 {
		return nil, fmt.Errorf("got gap of %d, %w", opt.Gap, ErrInvalidGap)
	}

	seed := opt.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &MonteCarloSplitter{
		opt: opt,
		rng: rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

// Split draws NSplits origins uniformly at random, with replacement, and
// derives a train/test index range pair from each. All folds share the same
// train and test window lengths computed from nSamples and the configured
// ratios; only the window placement varies. Invalid configurations are
// detected before any origin is drawn and no partial result is returned.
func (m *MonteCarloSplitter) Split(nSamples int) (*SplitResult, error) {
	trainWindow := int(math.Floor(float64(nSamples)*m.opt.TrainRatio)) - 1
	testWindow := int(math.Floor(float64(nSamples)*m.opt.TestRatio)) - 1

	if m.opt.NSplits > nSamples {
		return nil, fmt.Errorf("%d splits requested with %d samples, %w", m.opt.NSplits, nSamples, ErrTooManySplits)
	}
	if trainWindow-m.opt.Gap <= 0 {
		return nil, fmt.Errorf("gap of %d with train window of %d samples, %w", m.opt.Gap, trainWindow, ErrGapTooLarge)
	}
	if testWindow <= 0 {
		return nil, fmt.Errorf("test window of %d samples with %d samples, %w", testWindow, nSamples, ErrEmptySelectionRange)
	}

	// admissible origin positions leaving a full train window before the
	// origin and a full test window from the origin onward
	lo := trainWindow + 1
	hi := nSamples - testWindow - 1
	if hi <= lo {
		return nil, fmt.Errorf(
			"train window of %d and test window of %d samples with %d samples, %w",
			trainWindow, testWindow, nSamples, ErrEmptySelectionRange,
		)
	}

	origins := make([]int, m.opt.NSplits)
	for i := range origins {
		origins[i] = lo + m.rng.IntN(hi-lo)
	}
	m.origins = origins

	folds := make([]Fold, 0, len(origins))
	for _, origin := range origins {
		folds = append(folds, newFold(origin, trainWindow, testWindow, m.opt.Gap))
	}

	resOrigins := make([]int, len(origins))
	copy(resOrigins, origins)
	return &SplitResult{
		NSamples: nSamples,
		Origins:  resOrigins,
		Folds:    folds,
	}, nil
}

// newFold maps a drawn origin to its train/test index ranges. With no gap
// the train window ends one position before the origin; with a positive gap
// its last included index is origin-gap.
func newFold(origin, trainWindow, testWindow, gap int) Fold {
	trainEnd := origin
	if gap > 0 {
		trainEnd = origin - gap + 1
	}
	return Fold{
		Train: IndexRange{Start: origin - trainWindow - 1, End: trainEnd},
		Test:  IndexRange{Start: origin, End: origin + testWindow},
	}
}

// NSplits returns the number of folds each call to Split produces.
func (m *MonteCarloSplitter) NSplits() int {
	return m.opt.NSplits
}

// Origins returns the origins drawn by the most recent call to Split or nil
// before the first call.
func (m *MonteCarloSplitter) Origins() []int {
	if m.origins == nil {
		return nil
	}
	dst := make([]int, len(m.origins))
	copy(dst, m.origins)
	return dst
}
