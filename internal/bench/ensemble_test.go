package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/algorithms"
)

func TestEnsembleDeterministic(t *testing.T) {
	reg := algorithms.NewRegistry()

	a, err := NewEnsemble(reg, algorithms.IDMergeSort, 8, 42).Run(context.Background())
	require.NoError(t, err)
	b, err := NewEnsemble(reg, algorithms.IDMergeSort, 8, 42).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, a, 8)
	for i := range a {
		assert.Equal(t, int64(42+i), a[i].Seed)
		assert.Equal(t, a[i].Input, b[i].Input)
		assert.Equal(t, a[i].Metrics, b[i].Metrics)
		assert.Positive(t, a[i].Steps)
	}
}

func TestEnsembleErrors(t *testing.T) {
	reg := algorithms.NewRegistry()

	_, err := NewEnsemble(reg, "quick-sort", 2, 1).Run(context.Background())
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)

	_, err = NewEnsemble(reg, algorithms.IDDFS, 2, 1).Run(context.Background())
	assert.ErrorIs(t, err, algorithms.ErrNotImplemented)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewEnsemble(reg, algorithms.IDBubbleSort, 2, 1).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Steps: 10, Metrics: map[string]float64{"swaps": 2}},
		{Steps: 20, Metrics: map[string]float64{"swaps": 6}},
	}

	got := Summarize(results)
	assert.Equal(t, []Summary{
		{Name: "steps", Mean: 15, Min: 10, Max: 20},
		{Name: "swaps", Mean: 4, Min: 2, Max: 6},
	}, got)

	assert.Nil(t, Summarize(nil))
}

func TestSearchProbesBounded(t *testing.T) {
	results, err := NewEnsemble(algorithms.NewRegistry(), algorithms.IDBinarySearch, 32, 7).Run(context.Background())
	require.NoError(t, err)

	for _, s := range Summarize(results) {
		if s.Name == "probes" {
			// at most 12 values, so at most 4 probes
			assert.LessOrEqual(t, s.Max, 4.0)
			assert.GreaterOrEqual(t, s.Min, 1.0)
			return
		}
	}
	t.Fatal("no probes summary")
}
