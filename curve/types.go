package curve

// Precision is the number of decimals kept by the VShape, VShapeI and
// Gaussian curves.
const Precision = 3

// Kind enumerates the curve variants.
type Kind int

const (
	KindUsual Kind = iota
	KindUShape
	KindVShape
	KindLinear
	KindLevel
	KindVShapeI
	KindGaussian
)

var kindNames = [...]string{
	KindUsual:    "usual",
	KindUShape:   "u-shape",
	KindVShape:   "v-shape",
	KindLinear:   "linear",
	KindLevel:    "level",
	KindVShapeI:  "v-shape-i",
	KindGaussian: "gaussian",
}

// String returns the lower-case hyphenated variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Curve maps a signed difference to a preference degree in [0,1].
//
// Degree is non-decreasing in d, returns 0 for every d ≤ 0 and never leaves
// [0,1]. The interface is sealed: only the variants of this package
// implement it.
type Curve interface {
	// Degree returns the preference degree for difference d.
	Degree(d float64) float64

	// Kind reports the variant.
	Kind() Kind

	// String renders the variant and its parameters, e.g. "linear(p=4, q=1)".
	String() string

	sealed()
}
