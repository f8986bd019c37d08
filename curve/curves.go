package curve

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Compile-time assertions: every variant implements Curve.
var (
	_ Curve = Usual{}
	_ Curve = UShape{}
	_ Curve = VShape{}
	_ Curve = Linear{}
	_ Curve = Level{}
	_ Curve = VShapeI{}
	_ Curve = Gaussian{}
)

// Usual is the strict curve: any positive difference is full preference.
type Usual struct{}

// NewUsual returns the Usual curve. It has no parameters and cannot fail.
func NewUsual() Usual { return Usual{} }

// Degree returns 0 if d ≤ 0, else 1.
func (Usual) Degree(d float64) float64 {
	if !(d > 0) {
		return 0
	}
	return 1
}

func (Usual) Kind() Kind     { return KindUsual }
func (Usual) String() string { return KindUsual.String() }
func (Usual) sealed()        {}

// UShape ignores differences up to the indifference threshold q.
type UShape struct{ q float64 }

// NewUShape validates q (finite, ≥ 0) and returns the curve.
func NewUShape(q float64) (UShape, error) {
	if !validThreshold(q) {
		return UShape{}, curveErrorf(KindUShape, "q="+ftoa(q), ErrInvalidThreshold)
	}
	return UShape{q: q}, nil
}

// Q returns the indifference threshold.
func (c UShape) Q() float64 { return c.q }

// Degree returns 0 if d ≤ q, else 1.
func (c UShape) Degree(d float64) float64 {
	if !(d > c.q) {
		return 0
	}
	return 1
}

func (UShape) Kind() Kind       { return KindUShape }
func (c UShape) String() string { return fmt.Sprintf("%s(q=%s)", KindUShape, ftoa(c.q)) }
func (UShape) sealed()          {}

// VShape grows linearly from 0 to 1 over (0, p].
type VShape struct{ p float64 }

// NewVShape validates p (finite, > 0) and returns the curve.
func NewVShape(p float64) (VShape, error) {
	if !validThreshold(p) || p == 0 {
		return VShape{}, curveErrorf(KindVShape, "p="+ftoa(p), ErrInvalidThreshold)
	}
	return VShape{p: p}, nil
}

// P returns the preference threshold.
func (c VShape) P() float64 { return c.p }

// Degree returns 0 if d ≤ 0, d/p rounded to Precision decimals if d ≤ p, else 1.
func (c VShape) Degree(d float64) float64 {
	if !(d > 0) {
		return 0
	}
	if d <= c.p {
		return scalar.RoundEven(d/c.p, Precision)
	}
	return 1
}

func (VShape) Kind() Kind       { return KindVShape }
func (c VShape) String() string { return fmt.Sprintf("%s(p=%s)", KindVShape, ftoa(c.p)) }
func (VShape) sealed()          {}

// Linear is indifferent up to q, then ramps linearly to strict preference at p.
type Linear struct{ p, q float64 }

// NewLinear validates p > q ≥ 0 and returns the curve.
func NewLinear(p, q float64) (Linear, error) {
	if err := validatePair(KindLinear, p, q); err != nil {
		return Linear{}, err
	}
	return Linear{p: p, q: q}, nil
}

// P returns the preference threshold.
func (c Linear) P() float64 { return c.p }

// Q returns the indifference threshold.
func (c Linear) Q() float64 { return c.q }

// Degree returns 0 if d ≤ q, (d−q)/(p−q) if q < d ≤ p, else 1.
func (c Linear) Degree(d float64) float64 {
	if !(d > c.q) {
		return 0
	}
	if d <= c.p {
		return (d - c.q) / (c.p - c.q)
	}
	return 1
}

func (Linear) Kind() Kind       { return KindLinear }
func (c Linear) String() string { return pairString(KindLinear, c.p, c.q) }
func (Linear) sealed()          {}

// Level is a three-step curve: 0, then 0.5 between q and p, then 1.
type Level struct{ p, q float64 }

// NewLevel validates p > q ≥ 0 and returns the curve.
func NewLevel(p, q float64) (Level, error) {
	if err := validatePair(KindLevel, p, q); err != nil {
		return Level{}, err
	}
	return Level{p: p, q: q}, nil
}

// P returns the preference threshold.
func (c Level) P() float64 { return c.p }

// Q returns the indifference threshold.
func (c Level) Q() float64 { return c.q }

// Degree returns 0 if d ≤ q, 0.5 if q < d ≤ p, else 1.
func (c Level) Degree(d float64) float64 {
	if !(d > c.q) {
		return 0
	}
	if d <= c.p {
		return 0.5
	}
	return 1
}

func (Level) Kind() Kind       { return KindLevel }
func (c Level) String() string { return pairString(KindLevel, c.p, c.q) }
func (Level) sealed()          {}

// VShapeI is the V-shape with indifference: a Linear ramp whose values are
// rounded to Precision decimals.
type VShapeI struct{ p, q float64 }

// NewVShapeI validates p > q ≥ 0 and returns the curve.
func NewVShapeI(p, q float64) (VShapeI, error) {
	if err := validatePair(KindVShapeI, p, q); err != nil {
		return VShapeI{}, err
	}
	return VShapeI{p: p, q: q}, nil
}

// P returns the preference threshold.
func (c VShapeI) P() float64 { return c.p }

// Q returns the indifference threshold.
func (c VShapeI) Q() float64 { return c.q }

// Degree returns 0 if d ≤ q, round((d−q)/(p−q)) if q < d ≤ p, else 1.
func (c VShapeI) Degree(d float64) float64 {
	if !(d > c.q) {
		return 0
	}
	if d <= c.p {
		return scalar.RoundEven((d-c.q)/(c.p-c.q), Precision)
	}
	return 1
}

func (VShapeI) Kind() Kind       { return KindVShapeI }
func (c VShapeI) String() string { return pairString(KindVShapeI, c.p, c.q) }
func (VShapeI) sealed()          {}

// Gaussian rises smoothly towards 1; s is the inflection point.
type Gaussian struct{ s float64 }

// NewGaussian validates s (finite, > 0) and returns the curve.
func NewGaussian(s float64) (Gaussian, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return Gaussian{}, curveErrorf(KindGaussian, "s="+ftoa(s), ErrInvalidSpread)
	}
	return Gaussian{s: s}, nil
}

// S returns the spread parameter.
func (c Gaussian) S() float64 { return c.s }

// Degree returns 0 if d ≤ 0, else 1 − e^(−d²/(2s²)) rounded to Precision decimals.
func (c Gaussian) Degree(d float64) float64 {
	if !(d > 0) {
		return 0
	}
	return scalar.RoundEven(1-math.Exp(-(d*d)/(2*c.s*c.s)), Precision)
}

func (Gaussian) Kind() Kind       { return KindGaussian }
func (c Gaussian) String() string { return fmt.Sprintf("%s(s=%s)", KindGaussian, ftoa(c.s)) }
func (Gaussian) sealed()          {}

// validThreshold reports whether t is finite and non-negative.
func validThreshold(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0
}

// validatePair checks the two-threshold contract p > q ≥ 0.
func validatePair(k Kind, p, q float64) error {
	params := "p=" + ftoa(p) + ", q=" + ftoa(q)
	if !validThreshold(p) || !validThreshold(q) {
		return curveErrorf(k, params, ErrInvalidThreshold)
	}
	if p <= q {
		return curveErrorf(k, params, ErrThresholdOrder)
	}
	return nil
}

func pairString(k Kind, p, q float64) string {
	return fmt.Sprintf("%s(p=%s, q=%s)", k, ftoa(p), ftoa(q))
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
