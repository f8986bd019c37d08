// Package matrix_test contains unit tests for the Matrix kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mcda/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Add ----------

func TestAdd_FastPathAndFallback(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustDense(t, [][]float64{{6, 5, 4}, {3, 2, 1}})
	want := [][]float64{{7, 7, 7}, {7, 7, 7}}

	for name, pair := range map[string][2]matrix.Matrix{
		"dense":    {a, b},
		"fallback": {hide{a}, b},
	} {
		got, err := matrix.Add(pair[0], pair[1])
		require.NoError(t, err, name)
		assert.Equal(t, want, ToRows(t, got), name)
	}
	// Operands are untouched.
	assert.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

func TestAdd_Errors(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}})
	b := MustDense(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	_, err = matrix.Add(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Mean ----------

func TestMean(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{0, 0.6}, {0.4, 0}})
	b := MustDense(t, [][]float64{{0, 0}, {0.8, 0}})
	c := MustDense(t, [][]float64{{0, 0.3}, {0.3, 0}})

	got, err := matrix.Mean(a, b, hide{c})
	require.NoError(t, err)
	want := [][]float64{{0, 0.3}, {0.5, 0}}
	rows := ToRows(t, got)
	for i := range want {
		assert.InDeltaSlice(t, want[i], rows[i], 1e-12)
	}

	// A single operand is copied, not aliased.
	one, err := matrix.Mean(a)
	require.NoError(t, err)
	require.NoError(t, one.Set(0, 1, 9))
	assert.Equal(t, 0.6, MustAt(t, a, 0, 1))
}

func TestMean_Errors(t *testing.T) {
	_, err := matrix.Mean()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	a := MustDense(t, [][]float64{{1, 2}})
	_, err = matrix.Mean(a, MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mean(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mean(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Transpose ----------

func TestTranspose_Rectangular(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		got, err := matrix.Transpose(in)
		require.NoError(t, err, name)
		require.Equal(t, 3, got.Rows(), name)
		require.Equal(t, 2, got.Cols(), name)
		assert.Equal(t, want, ToRows(t, got), name)
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Scale ----------

func TestScale(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, -2}, {0.5, 4}})
	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		got, err := matrix.Scale(in, 0.5)
		require.NoError(t, err, name)
		assert.Equal(t, [][]float64{{0.5, -1}, {0.25, 2}}, ToRows(t, got), name)

		zero, err := matrix.Scale(in, 0)
		require.NoError(t, err, name)
		assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, ToRows(t, zero), name)
	}
}

func TestScale_NonFinite(t *testing.T) {
	m := MustDense(t, [][]float64{{math.MaxFloat64}})
	_, err := matrix.Scale(m, 10)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Scale(m, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- MatVec / RowSums / ColSums ----------

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}
	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		y, err := matrix.MatVec(in, x)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{-2, -2}, y, name)
	}

	_, err := matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowSumsColSums(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{0, 0.3, 0.3}, {0.2, 0, 0.2}, {0.2, 0.3, 0}})
	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		rows, err := matrix.RowSums(in)
		require.NoError(t, err, name)
		assert.InDeltaSlice(t, []float64{0.6, 0.4, 0.5}, rows, 1e-12, name)

		cols, err := matrix.ColSums(in)
		require.NoError(t, err, name)
		assert.InDeltaSlice(t, []float64{0.4, 0.6, 0.5}, cols, 1e-12, name)
	}

	_, err := matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ColSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
