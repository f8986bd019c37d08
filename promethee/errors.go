package promethee

import "errors"

// Every message is prefixed with "promethee: ". Operations wrap these
// sentinels with context; match them with errors.Is.
var (
	// ErrIncompatibleWeights indicates a weight vector whose length differs
	// from the number of criteria. Engine state is unchanged.
	ErrIncompatibleWeights = errors.New("promethee: number of weights does not match number of criteria")

	// ErrInvalidWeight indicates a negative, NaN or ±Inf weight, or weights
	// large enough to overflow the aggregate or the flows.
	ErrInvalidWeight = errors.New("promethee: weights must be finite and non-negative")

	// ErrUnknownCriterion indicates a criterion name the engine does not know.
	ErrUnknownCriterion = errors.New("promethee: unknown criterion")

	// ErrNoCriteria indicates an engine built without criteria.
	ErrNoCriteria = errors.New("promethee: at least one criterion is required")

	// ErrEmptyName indicates an empty alternative or criterion name.
	ErrEmptyName = errors.New("promethee: names must be non-empty")

	// ErrDuplicateAlternative indicates two alternatives share an identifier.
	ErrDuplicateAlternative = errors.New("promethee: duplicate alternative")

	// ErrDuplicateCriterion indicates two criteria share a name.
	ErrDuplicateCriterion = errors.New("promethee: duplicate criterion")

	// ErrInvalidGoal indicates a goal other than Maximize or Minimize.
	ErrInvalidGoal = errors.New("promethee: goal must be max or min")

	// ErrNilCurve indicates a criterion without a preference curve.
	ErrNilCurve = errors.New("promethee: criterion curve is nil")

	// ErrTooFewAlternatives indicates fewer than two alternatives; flows are
	// normalised by (n−1) and are undefined below two.
	ErrTooFewAlternatives = errors.New("promethee: at least two alternatives are required")

	// ErrScoreShape indicates a score table whose shape is not
	// (criteria × alternatives).
	ErrScoreShape = errors.New("promethee: score table shape does not match criteria and alternatives")

	// ErrInvalidScore indicates a NaN or ±Inf score, or a score difference
	// that overflows float64.
	ErrInvalidScore = errors.New("promethee: scores must be finite")
)
