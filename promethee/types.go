package promethee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mcda/curve"
)

// Goal is the optimisation direction of a criterion.
// The zero value is invalid so that a forgotten goal is caught by New.
type Goal int

const (
	// GoalUnset is the zero value and is rejected by New.
	GoalUnset Goal = iota
	// Maximize rewards higher scores.
	Maximize
	// Minimize rewards lower scores.
	Minimize
)

// String returns "max", "min" or "unset".
func (g Goal) String() string {
	switch g {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return "unset"
	}
}

// ParseGoal accepts "max"/"min" (case-insensitive; "maximize"/"minimize" too).
func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	default:
		return GoalUnset, fmt.Errorf("%q: %w", s, ErrInvalidGoal)
	}
}

// Criterion describes one dimension of evaluation.
//
// Weight is the initial weight; after New the engine owns the weight vector
// (see Engine.UpdateWeights and Engine.SetWeight). Name, Goal and Curve are
// fixed for the lifetime of the engine.
type Criterion struct {
	Name   string
	Weight float64
	Goal   Goal
	Curve  curve.Curve
}

// Phi is one flow value of one alternative.
type Phi struct {
	Alternative string
	Value       float64
}

// String renders "<alternative>: <value>".
func (p Phi) String() string {
	return p.Alternative + ": " + strconv.FormatFloat(p.Value, 'g', -1, 64)
}

// Output bundles the three flow lists of one Prioritize call.
//
// Negative and Positive follow the engine's alternative order. Net is the
// final ranking: sorted by value, best first, ties in alternative order.
type Output struct {
	Negative []Phi
	Positive []Phi
	Net      []Phi
}

// Ranking returns the alternatives of Net in rank order.
func (o Output) Ranking() []string {
	out := make([]string, len(o.Net))
	for i, p := range o.Net {
		out[i] = p.Alternative
	}
	return out
}

// Best returns the top-ranked alternative; ok is false for an empty Output.
func (o Output) Best() (best Phi, ok bool) {
	if len(o.Net) == 0 {
		return Phi{}, false
	}
	return o.Net[0], true
}
