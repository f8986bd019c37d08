// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers shared by the kernel tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mcda/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// poisoned is a non-Dense Matrix whose At reports NaN at (row, col).
// Dense never stores NaN, so this is the only way to feed one to a kernel.
type poisoned struct {
	matrix.Matrix
	row, col int
}

func (p poisoned) At(i, j int) (float64, error) {
	if i == p.row && j == p.col {
		return math.NaN(), nil
	}
	return p.Matrix.At(i, j)
}

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// ToRows copies m into a [][]float64 for whole-matrix assertions.
func ToRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}
	return out
}
