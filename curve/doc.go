// Package curve implements the PROMETHEE preference functions: the mapping
// from a signed score difference to a preference degree in [0,1].
//
// What & Why:
//
//	For one criterion, PROMETHEE compares two alternatives a and b through
//	d = g(a) − g(b) (already oriented so that positive favours a). A
//	preference curve turns d into a degree: 0 means indifference, 1 strict
//	preference. The shape of the curve encodes how the decision maker reads
//	small and large differences.
//
// Variants (closed set):
//
//	Usual         0 if d ≤ 0, else 1
//	UShape(q)     0 if d ≤ q, else 1
//	VShape(p)     d/p up to p, then 1
//	Linear(p,q)   0 up to q, linear ramp to 1 at p
//	Level(p,q)    0 up to q, 0.5 up to p, then 1
//	VShapeI(p,q)  as Linear, ramp rounded to Precision decimals
//	Gaussian(s)   1 − exp(−d²/(2s²)) for d > 0
//
// Parameters are validated at construction (NewX constructors); a curve that
// exists is always well formed and evaluates to 0 at d = 0, so comparing an
// alternative with itself yields no preference.
//
// Usage:
//
//	price, err := curve.NewLinear(4, 1) // p=4, q=1
//	if err != nil {
//	  // handle ErrInvalidThreshold / ErrThresholdOrder
//	}
//	deg := price.Degree(2.5) // 0.5
package curve
