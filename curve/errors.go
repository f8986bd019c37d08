package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreshold indicates a p or q threshold that is negative,
	// NaN or ±Inf (or a zero p where p is a divisor).
	ErrInvalidThreshold = errors.New("curve: thresholds must be finite and non-negative")

	// ErrThresholdOrder indicates p ≤ q for a two-threshold curve.
	ErrThresholdOrder = errors.New("curve: preference threshold p must exceed indifference threshold q")

	// ErrInvalidSpread indicates a Gaussian s that is not finite and positive.
	ErrInvalidSpread = errors.New("curve: gaussian s must be finite and positive")
)

// curveErrorf tags a sentinel with the variant and its offending parameters.
func curveErrorf(k Kind, params string, err error) error {
	return fmt.Errorf("%s(%s): %w", k, params, err)
}
