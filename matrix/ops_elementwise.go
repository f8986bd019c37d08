// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise kernels (ew*) shared by the public
//     Clip and Round facades.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ewClipRange copies X clamping each entry into [lo, hi] (both finite).
// If lo > hi, they are swapped (normalized).
// Time: O(r*c). Space: O(r*c).
func ewClipRange(X Matrix, lo, hi float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Clip", err)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("Clip", err)
	}

	if d, ok := X.(*Dense); ok {
		n := r * c
		for idx := 0; idx < n; idx++ {
			out.data[idx] = clamp(d.data[idx], lo, hi)
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("Clip", e)
			}
			if e = out.Set(i, j, clamp(v, lo, hi)); e != nil {
				return nil, matrixErrorf("Clip", e)
			}
		}
	}
	return out, nil
}

// ewRound copies X rounding each entry to prec decimals, half to even.
// Time: O(r*c). Space: O(r*c).
func ewRound(X Matrix, prec int) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Round", err)
	}
	if err := ValidatePrecision(prec); err != nil {
		return nil, matrixErrorf("Round", err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("Round", err)
	}

	if d, ok := X.(*Dense); ok {
		n := r * c
		for idx := 0; idx < n; idx++ {
			out.data[idx] = scalar.RoundEven(d.data[idx], prec)
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("Round", e)
			}
			if e = out.Set(i, j, scalar.RoundEven(v, prec)); e != nil {
				return nil, matrixErrorf("Round", e)
			}
		}
	}
	return out, nil
}

// clamp returns v limited to [lo, hi]; assumes lo <= hi.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
