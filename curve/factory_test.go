package curve_test

import (
	"testing"

	"github.com/katalvlaran/mcda/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind_RoundTrip(t *testing.T) {
	for k := curve.KindUsual; k <= curve.KindGaussian; k++ {
		got, err := curve.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := curve.ParseKind("  Linear ")
	require.NoError(t, err)
	assert.Equal(t, curve.KindLinear, got)

	_, err = curve.ParseKind("triangle")
	require.ErrorIs(t, err, curve.ErrUnknownKind)
	assert.Equal(t, "unknown", curve.Kind(42).String())
}

func TestNew_BuildsEveryVariant(t *testing.T) {
	tests := []struct {
		kind   curve.Kind
		params []float64
		d      float64
		want   float64
	}{
		{curve.KindUsual, nil, 1, 1},
		{curve.KindUShape, []float64{2}, 2, 0},
		{curve.KindVShape, []float64{4}, 2, 0.5},
		{curve.KindLinear, []float64{4, 1}, 2.5, 0.5},
		{curve.KindLevel, []float64{2, 1}, 1.5, 0.5},
		{curve.KindVShapeI, []float64{4, 1}, 2.5, 0.5},
		{curve.KindGaussian, []float64{1}, 0, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			c, err := curve.New(tc.kind, tc.params...)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, c.Kind())
			assert.InDelta(t, tc.want, c.Degree(tc.d), 1e-12)
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := curve.New(curve.KindLinear, 4)
	require.ErrorIs(t, err, curve.ErrParamCount)

	_, err = curve.New(curve.KindUsual, 1)
	require.ErrorIs(t, err, curve.ErrParamCount)

	_, err = curve.New(curve.Kind(-1))
	require.ErrorIs(t, err, curve.ErrUnknownKind)

	_, err = curve.New(curve.KindLinear, 1, 4)
	require.ErrorIs(t, err, curve.ErrThresholdOrder)
}
