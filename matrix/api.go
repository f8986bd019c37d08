// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for the reductions and element-wise
//     transforms used by the outranking flows.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	cols := m.Cols()
	ones := make([]float64, cols)
	for j := 0; j < cols; j++ {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: T(m) then MatVec with ones(rows).
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	rows := mt.Cols() // == m.Rows()
	ones := make([]float64, rows)
	for i := 0; i < rows; i++ {
		ones[i] = 1.0
	}

	return MatVec(mt, ones)
}

// Clip returns a copy of m with elements clamped into [lo, hi] (both finite).
//
//	out[i,j] = min(max(A[i,j], lo), hi).
//
// Policy: if lo > hi, bounds are swapped. NaN/Inf bounds are rejected.
// Time: O(r*c). Space: O(r*c).
func Clip(m Matrix, lo, hi float64) (Matrix, error) {
	return ewClipRange(m, lo, hi)
}

// Round returns a copy of m with every element rounded to prec decimal
// places, ties to even (gonum scalar.RoundEven).
//
// Errors: ErrNilMatrix, ErrBadPrecision when prec is outside [0, MaxPrecision].
// Time: O(r*c). Space: O(r*c).
func Round(m Matrix, prec int) (Matrix, error) {
	return ewRound(m, prec)
}
