package promethee

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/mcda/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDiffPrecision is the number of decimals kept on pairwise score
	// differences before curve evaluation (0.3 − 0.1 is evaluated as 0.2).
	DefaultDiffPrecision = 2

	// DefaultAggregatePrecision is the number of decimals kept on the
	// aggregate preference matrix.
	DefaultAggregatePrecision = 3

	// NoRounding disables rounding at a stage.
	NoRounding = -1
)

// ---------- Internal panic messages ----------

const (
	panicPrecisionInvalid = "promethee: precision must be NoRounding or within [0, matrix.MaxPrecision]"
	panicNilLogger        = "promethee: WithLogger: logger is nil"
	panicNilRecorder      = "promethee: WithRecorder: recorder is nil"
)

// Recorder receives one observation per engine operation. Implementations
// must be cheap and safe for concurrent use (package metrics provides a
// Prometheus-backed one).
type Recorder interface {
	// ObservePrioritize is called once per Prioritize call.
	ObservePrioritize(outcome string, elapsed time.Duration, alternatives, criteria int)

	// ObserveWeightUpdate is called once per UpdateWeights/SetWeight call.
	ObserveWeightUpdate(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObservePrioritize(string, time.Duration, int, int) {}
func (nopRecorder) ObserveWeightUpdate(string)                      {}

// Option configures an Engine. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*options)

type options struct {
	logger        *slog.Logger
	recorder      Recorder
	diffPrec      int // NoRounding or [0, matrix.MaxPrecision]
	aggregatePrec int // NoRounding or [0, matrix.MaxPrecision]
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithRecorder sets the observation hook. The default records nothing.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic(panicNilRecorder)
	}
	return func(o *options) { o.recorder = r }
}

// WithDiffPrecision sets the decimals kept on pairwise differences.
// Pass NoRounding to evaluate curves on raw differences.
func WithDiffPrecision(prec int) Option {
	mustPrecision(prec)
	return func(o *options) { o.diffPrec = prec }
}

// WithAggregatePrecision sets the decimals kept on the aggregate matrix.
// Pass NoRounding to keep full precision.
func WithAggregatePrecision(prec int) Option {
	mustPrecision(prec)
	return func(o *options) { o.aggregatePrec = prec }
}

// WithoutRounding disables both intermediate rounding stages.
func WithoutRounding() Option {
	return func(o *options) {
		o.diffPrec = NoRounding
		o.aggregatePrec = NoRounding
	}
}

func mustPrecision(prec int) {
	if prec == NoRounding {
		return
	}
	if err := matrix.ValidatePrecision(prec); err != nil {
		panic(panicPrecisionInvalid)
	}
}

func defaultOptions() options {
	return options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder:      nopRecorder{},
		diffPrec:      DefaultDiffPrecision,
		aggregatePrec: DefaultAggregatePrecision,
	}
}

// gatherOptions applies user options over the defaults in order; later
// options win.
func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
