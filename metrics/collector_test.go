package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcda/curve"
	"github.com/katalvlaran/mcda/metrics"
	"github.com/katalvlaran/mcda/promethee"
)

func newEngine(t *testing.T, reg *prometheus.Registry) *promethee.Engine {
	t.Helper()
	col, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	e, err := promethee.New([]string{"A", "B", "C"}, []promethee.Criterion{
		{Name: "price", Weight: 0.6, Goal: promethee.Minimize, Curve: curve.NewUsual()},
		{Name: "quality", Weight: 0.4, Goal: promethee.Maximize, Curve: curve.NewUsual()},
	}, promethee.WithRecorder(col))
	require.NoError(t, err)
	return e
}

func TestCollector_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := newEngine(t, reg)

	scores := [][]float64{{10, 20, 15}, {3, 5, 4}}
	_, err := e.Prioritize(scores)
	require.NoError(t, err)
	_, err = e.Prioritize(scores)
	require.NoError(t, err)
	_, err = e.Prioritize([][]float64{{1, 2}})
	require.Error(t, err)

	require.NoError(t, e.SetWeight("price", 1))
	require.Error(t, e.UpdateWeights([]float64{1}))

	expected := `
# HELP mcda_prioritize_total Prioritize calls by outcome.
# TYPE mcda_prioritize_total counter
mcda_prioritize_total{outcome="ok"} 2
mcda_prioritize_total{outcome="shape"} 1
# HELP mcda_weight_updates_total Weight update calls by outcome.
# TYPE mcda_weight_updates_total counter
mcda_weight_updates_total{outcome="incompatible_weights"} 1
mcda_weight_updates_total{outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"mcda_prioritize_total", "mcda_weight_updates_total"))

	expectedSizes := `
# HELP mcda_prioritize_alternatives Number of alternatives in the last Prioritize call.
# TYPE mcda_prioritize_alternatives gauge
mcda_prioritize_alternatives 3
# HELP mcda_prioritize_criteria Number of criteria in the last Prioritize call.
# TYPE mcda_prioritize_criteria gauge
mcda_prioritize_criteria 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expectedSizes),
		"mcda_prioritize_alternatives", "mcda_prioritize_criteria"))
}

func TestCollector_Duration(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := newEngine(t, reg)

	for i := 0; i < 3; i++ {
		_, err := e.Prioritize([][]float64{{10, 20, 15}, {3, 5, 4}})
		require.NoError(t, err)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() != "mcda_prioritize_duration_seconds" {
			continue
		}
		found = true
		require.Len(t, mf.GetMetric(), 1)
		assert.Equal(t, uint64(3), mf.GetMetric()[0].GetHistogram().GetSampleCount())
	}
	assert.True(t, found)
}

func TestCollector_DirectObservations(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	col.ObservePrioritize(promethee.OutcomeInvalidScore, 0, 4, 1)
	col.ObserveWeightUpdate(promethee.OutcomeUnknownCriterion)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestNewCollector_Errors(t *testing.T) {
	_, err := metrics.NewCollector(nil)
	require.ErrorIs(t, err, metrics.ErrNilRegisterer)

	reg := prometheus.NewRegistry()
	_, err = metrics.NewCollector(reg)
	require.NoError(t, err)

	_, err = metrics.NewCollector(reg)
	var are prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &are)
}
