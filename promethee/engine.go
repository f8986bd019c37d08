package promethee

import (
	"fmt"
	"math"
)

// Engine holds the alternatives, the criteria descriptors and the current
// weight vector. Build it with New.
type Engine struct {
	alternatives []string
	criteria     []Criterion    // descriptors; Weight fields are not read after New
	weights      []float64      // authoritative weights, positional with criteria
	byName       map[string]int // criterion name → position
	opts         options
}

// New validates and copies its inputs into a new Engine.
//
// Validation order:
//  1. at least one criterion (ErrNoCriteria);
//  2. alternative names non-empty and unique (ErrEmptyName, ErrDuplicateAlternative);
//  3. criterion names non-empty and unique (ErrEmptyName, ErrDuplicateCriterion);
//  4. goals set (ErrInvalidGoal), curves non-nil (ErrNilCurve);
//  5. weights finite and ≥ 0 (ErrInvalidWeight).
//
// Fewer than two alternatives is accepted here and rejected by Prioritize.
func New(alternatives []string, criteria []Criterion, opts ...Option) (*Engine, error) {
	if len(criteria) == 0 {
		return nil, ErrNoCriteria
	}

	seen := make(map[string]struct{}, len(alternatives))
	for i, a := range alternatives {
		if a == "" {
			return nil, fmt.Errorf("alternative %d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[a]; dup {
			return nil, fmt.Errorf("alternative %q: %w", a, ErrDuplicateAlternative)
		}
		seen[a] = struct{}{}
	}

	byName := make(map[string]int, len(criteria))
	weights := make([]float64, len(criteria))
	for j, c := range criteria {
		if c.Name == "" {
			return nil, fmt.Errorf("criterion %d: %w", j, ErrEmptyName)
		}
		if _, dup := byName[c.Name]; dup {
			return nil, fmt.Errorf("criterion %q: %w", c.Name, ErrDuplicateCriterion)
		}
		if c.Goal != Maximize && c.Goal != Minimize {
			return nil, fmt.Errorf("criterion %q: %w", c.Name, ErrInvalidGoal)
		}
		if c.Curve == nil {
			return nil, fmt.Errorf("criterion %q: %w", c.Name, ErrNilCurve)
		}
		if !validWeight(c.Weight) {
			return nil, fmt.Errorf("criterion %q: weight %g: %w", c.Name, c.Weight, ErrInvalidWeight)
		}
		byName[c.Name] = j
		weights[j] = c.Weight
	}

	e := &Engine{
		alternatives: append([]string(nil), alternatives...),
		criteria:     append([]Criterion(nil), criteria...),
		weights:      weights,
		byName:       byName,
		opts:         gatherOptions(opts...),
	}
	e.opts.logger.Debug("engine created",
		"alternatives", len(e.alternatives),
		"criteria", len(e.criteria),
	)

	return e, nil
}

// Alternatives returns a copy of the alternative identifiers in index order.
func (e *Engine) Alternatives() []string {
	return append([]string(nil), e.alternatives...)
}

// Criteria returns copies of the descriptors carrying the current weights.
func (e *Engine) Criteria() []Criterion {
	out := make([]Criterion, len(e.criteria))
	for j, c := range e.criteria {
		c.Weight = e.weights[j]
		out[j] = c
	}
	return out
}

// Weights returns a copy of the current weight vector.
func (e *Engine) Weights() []float64 {
	return append([]float64(nil), e.weights...)
}

// UpdateWeights replaces every weight positionally.
//
// The whole vector is validated before any weight changes: on error the
// engine keeps its previous weights.
//
// Errors:
//   - ErrIncompatibleWeights when len(weights) != number of criteria.
//   - ErrInvalidWeight when a value is negative, NaN or ±Inf.
func (e *Engine) UpdateWeights(weights []float64) error {
	err := e.updateWeights(weights)
	e.opts.recorder.ObserveWeightUpdate(outcomeOf(err))
	if err != nil {
		e.opts.logger.Debug("weights rejected", "error", err)
		return err
	}
	e.opts.logger.Debug("weights updated", "weights", e.weights)
	return nil
}

func (e *Engine) updateWeights(weights []float64) error {
	if len(weights) != len(e.criteria) {
		return fmt.Errorf("UpdateWeights: got %d, want %d: %w",
			len(weights), len(e.criteria), ErrIncompatibleWeights)
	}
	for j, w := range weights {
		if !validWeight(w) {
			return fmt.Errorf("UpdateWeights: criterion %q weight %g: %w",
				e.criteria[j].Name, w, ErrInvalidWeight)
		}
	}
	copy(e.weights, weights)
	return nil
}

// SetWeight replaces the weight of the named criterion.
//
// Errors:
//   - ErrUnknownCriterion, ErrInvalidWeight; the engine is unchanged on error.
func (e *Engine) SetWeight(name string, weight float64) error {
	err := e.setWeight(name, weight)
	e.opts.recorder.ObserveWeightUpdate(outcomeOf(err))
	if err != nil {
		e.opts.logger.Debug("weight rejected", "criterion", name, "error", err)
		return err
	}
	e.opts.logger.Debug("weight updated", "criterion", name, "weight", weight)
	return nil
}

func (e *Engine) setWeight(name string, weight float64) error {
	j, ok := e.byName[name]
	if !ok {
		return fmt.Errorf("SetWeight: %q: %w", name, ErrUnknownCriterion)
	}
	if !validWeight(weight) {
		return fmt.Errorf("SetWeight: criterion %q weight %g: %w", name, weight, ErrInvalidWeight)
	}
	e.weights[j] = weight
	return nil
}

// validWeight reports whether w is finite and non-negative.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
