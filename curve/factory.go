package curve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a variant name or Kind value outside the closed set.
var ErrUnknownKind = errors.New("curve: unknown curve kind")

// ErrParamCount indicates New received the wrong number of parameters.
var ErrParamCount = errors.New("curve: wrong number of parameters")

// paramCount is the arity of each variant's constructor.
var paramCount = [...]int{
	KindUsual:    0,
	KindUShape:   1,
	KindVShape:   1,
	KindLinear:   2,
	KindLevel:    2,
	KindVShapeI:  2,
	KindGaussian: 1,
}

// ParseKind maps a variant name (as returned by Kind.String, case-insensitive)
// back to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// New builds a curve from its Kind and positional parameters, in constructor
// order: UShape(q), VShape(p), Linear/Level/VShapeI(p, q), Gaussian(s).
// Usual takes none.
//
// Errors:
//   - ErrUnknownKind, ErrParamCount, and the constructor sentinels.
func New(k Kind, params ...float64) (Curve, error) {
	if k < 0 || int(k) >= len(paramCount) {
		return nil, fmt.Errorf("kind %d: %w", int(k), ErrUnknownKind)
	}
	if len(params) != paramCount[k] {
		return nil, fmt.Errorf("%s: got %d, want %d: %w", k, len(params), paramCount[k], ErrParamCount)
	}

	switch k {
	case KindUsual:
		return NewUsual(), nil
	case KindUShape:
		return NewUShape(params[0])
	case KindVShape:
		return NewVShape(params[0])
	case KindLinear:
		return NewLinear(params[0], params[1])
	case KindLevel:
		return NewLevel(params[0], params[1])
	case KindVShapeI:
		return NewVShapeI(params[0], params[1])
	default: // KindGaussian
		return NewGaussian(params[0])
	}
}
