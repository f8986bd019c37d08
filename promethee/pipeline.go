package promethee

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/mcda/matrix"
)

// Outcome labels passed to Recorder.
const (
	OutcomeOK                  = "ok"
	OutcomeShape               = "shape"
	OutcomeTooFewAlternatives  = "too_few_alternatives"
	OutcomeInvalidScore        = "invalid_score"
	OutcomeIncompatibleWeights = "incompatible_weights"
	OutcomeInvalidWeight       = "invalid_weight"
	OutcomeUnknownCriterion    = "unknown_criterion"
	OutcomeError               = "error"
)

// Stage names used in Debug records.
const (
	stageComparison = "comparison"
	stageAggregate  = "aggregate"
	stageFlows      = "flows"
)

// Aggregate returns the n×n aggregate preference matrix for scores, where
// scores[j][i] is the score of alternative i on criterion j.
//
// Cell (i,k) is the mean over criteria of weight × degree(diff(i,k)).
// The diagonal is 0.
//
// Errors:
//   - ErrTooFewAlternatives when the engine has fewer than two alternatives.
//   - ErrScoreShape when scores is not |criteria|×|alternatives|.
//   - ErrInvalidScore for NaN/±Inf scores or differences that overflow.
//   - ErrInvalidWeight when weights are so large that the weighted sum
//     over criteria overflows float64.
//
// Complexity:
//   - Time O(k*n²), Space O(k*n²) for k criteria and n alternatives.
func (e *Engine) Aggregate(scores [][]float64) (matrix.Matrix, error) {
	return e.aggregate(scores, e.opts.logger)
}

// Prioritize runs the full outranking pipeline and returns the flows.
//
// Implementation:
//   - Stage 1: validate scores (see Aggregate for the error set).
//   - Stage 2: one weighted preference matrix per criterion.
//   - Stage 3: aggregate matrix (mean over criteria, rounded).
//   - Stage 4: positive = row sums / (n−1), negative = column sums / (n−1),
//     net = positive − negative.
//   - Stage 5: stable descending sort of net flows.
//
// Besides the Aggregate errors, Prioritize returns ErrInvalidWeight when a
// flow sum overflows float64. Every returned flow is finite.
//
// Prioritize does not modify the engine. Each call is reported to the
// configured Recorder with its outcome.
func (e *Engine) Prioritize(scores [][]float64) (out Output, err error) {
	start := time.Now()
	log := e.opts.logger.With("run_id", uuid.NewString())
	defer func() {
		e.opts.recorder.ObservePrioritize(outcomeOf(err), time.Since(start),
			len(e.alternatives), len(e.criteria))
	}()

	agg, err := e.aggregate(scores, log)
	if err != nil {
		return Output{}, err
	}

	out, err = e.flows(agg)
	if err != nil {
		log.Debug("flows failed", "stage", stageFlows, "error", err)
		return Output{}, err
	}
	log.Debug("stage done", "stage", stageFlows)

	best, _ := out.Best()
	log.Debug("prioritize done",
		"alternatives", len(e.alternatives),
		"criteria", len(e.criteria),
		"best", best.Alternative,
		"duration", time.Since(start),
	)

	return out, nil
}

func (e *Engine) aggregate(scores [][]float64, log *slog.Logger) (matrix.Matrix, error) {
	table, err := e.ingest(scores)
	if err != nil {
		log.Debug("scores rejected", "error", err)
		return nil, err
	}

	weighted := make([]matrix.Matrix, len(e.criteria))
	for j := range e.criteria {
		row, _ := table.Row(j) // j < table.Rows() by ingest
		if weighted[j], err = e.preference(j, row); err != nil {
			log.Debug("comparison failed", "stage", stageComparison,
				"criterion", e.criteria[j].Name, "error", err)
			return nil, err
		}
	}
	log.Debug("stage done", "stage", stageComparison, "matrices", len(weighted))

	agg, err := matrix.Mean(weighted...)
	if errors.Is(err, matrix.ErrNaNInf) {
		err = fmt.Errorf("Aggregate: weighted sum overflows: %w: %w", ErrInvalidWeight, err)
		log.Debug("aggregate failed", "stage", stageAggregate, "error", err)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("Aggregate: %w", err)
	}
	if e.opts.aggregatePrec != NoRounding {
		if agg, err = matrix.Round(agg, e.opts.aggregatePrec); err != nil {
			return nil, fmt.Errorf("Aggregate: %w", err)
		}
	}
	log.Debug("stage done", "stage", stageAggregate)

	return agg, nil
}

// ingest checks the score table and copies it into a criteria×alternatives Dense.
func (e *Engine) ingest(scores [][]float64) (*matrix.Dense, error) {
	n, k := len(e.alternatives), len(e.criteria)
	if n < 2 {
		return nil, fmt.Errorf("got %d: %w", n, ErrTooFewAlternatives)
	}
	if len(scores) != k {
		return nil, fmt.Errorf("got %d score rows, want %d: %w", len(scores), k, ErrScoreShape)
	}
	for j, row := range scores {
		if len(row) != n {
			return nil, fmt.Errorf("criterion %q: got %d scores, want %d: %w",
				e.criteria[j].Name, len(row), n, ErrScoreShape)
		}
	}

	table, err := matrix.FromRows(scores)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScore, err)
	}
	return table, nil
}

// preference builds the weighted preference matrix of criterion j:
//
//	P[i,k] = weight × clip(degree(round(diff(i,k))), 0, 1)
//
// where diff(i,k) = s[i] − s[k] for Maximize and s[k] − s[i] for Minimize.
func (e *Engine) preference(j int, s []float64) (matrix.Matrix, error) {
	c := e.criteria[j]
	n := len(s)

	diffs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("criterion %q: %w", c.Name, err)
	}
	var i, k int
	var d float64
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			if c.Goal == Maximize {
				d = s[i] - s[k]
			} else {
				d = s[k] - s[i]
			}
			if err = diffs.Set(i, k, d); err != nil {
				return nil, fmt.Errorf("criterion %q: %w: %w", c.Name, ErrInvalidScore, err)
			}
		}
	}

	prec := e.opts.diffPrec
	err = diffs.Apply(func(_, _ int, v float64) float64 {
		if prec != NoRounding {
			v = scalar.RoundEven(v, prec)
		}
		return c.Curve.Degree(v)
	})
	if err != nil {
		return nil, fmt.Errorf("criterion %q: %w", c.Name, err)
	}

	degrees, err := matrix.Clip(diffs, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("criterion %q: %w", c.Name, err)
	}
	weighted, err := matrix.Scale(degrees, e.weights[j])
	if err != nil {
		return nil, fmt.Errorf("criterion %q: %w", c.Name, err)
	}

	return weighted, nil
}

// flows derives the three flow lists from the aggregate matrix.
func (e *Engine) flows(agg matrix.Matrix) (Output, error) {
	if err := matrix.ValidateSquareNonNil(agg); err != nil {
		return Output{}, fmt.Errorf("flows: %w", err)
	}
	rows, err := matrix.RowSums(agg)
	if err != nil {
		return Output{}, fmt.Errorf("flows: %w", err)
	}
	cols, err := matrix.ColSums(agg)
	if err != nil {
		return Output{}, fmt.Errorf("flows: %w", err)
	}

	for i, a := range e.alternatives {
		if math.IsInf(rows[i], 0) || math.IsInf(cols[i], 0) {
			return Output{}, fmt.Errorf("flows: %q: preference sum overflows: %w", a, ErrInvalidWeight)
		}
	}

	n := len(e.alternatives)
	denom := float64(n - 1)
	out := Output{
		Negative: make([]Phi, n),
		Positive: make([]Phi, n),
		Net:      make([]Phi, n),
	}
	for i, a := range e.alternatives {
		pos, neg := rows[i]/denom, cols[i]/denom
		out.Positive[i] = Phi{Alternative: a, Value: pos}
		out.Negative[i] = Phi{Alternative: a, Value: neg}
		out.Net[i] = Phi{Alternative: a, Value: pos - neg}
	}
	slices.SortStableFunc(out.Net, func(a, b Phi) int {
		return cmp.Compare(b.Value, a.Value)
	})

	return out, nil
}

// outcomeOf maps an operation error to its Recorder label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrTooFewAlternatives):
		return OutcomeTooFewAlternatives
	case errors.Is(err, ErrScoreShape):
		return OutcomeShape
	case errors.Is(err, ErrInvalidScore):
		return OutcomeInvalidScore
	case errors.Is(err, ErrIncompatibleWeights):
		return OutcomeIncompatibleWeights
	case errors.Is(err, ErrInvalidWeight):
		return OutcomeInvalidWeight
	case errors.Is(err, ErrUnknownCriterion):
		return OutcomeUnknownCriterion
	default:
		return OutcomeError
	}
}
