package curve_test

import (
	"testing"

	"github.com/katalvlaran/mcda/curve"
)

// sink defeats dead-code elimination.
var sink float64

func BenchmarkDegree(b *testing.B) {
	g, _ := curve.NewGaussian(1.5)
	l, _ := curve.NewLinear(4, 1)
	for _, c := range []curve.Curve{curve.NewUsual(), l, g} {
		c := c
		b.Run(c.Kind().String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sink = c.Degree(float64(i%100) * 0.07)
			}
		})
	}
}
