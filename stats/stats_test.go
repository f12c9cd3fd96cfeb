package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	t.Run("EmptyReturnsNil", func(t *testing.T) {
		assert.Nil(t, Compute([]float64{}))
		assert.Nil(t, Compute[int64](nil))
	})

	t.Run("SingleValue", func(t *testing.T) {
		s := Compute([]float64{5.0})
		require.NotNil(t, s)
		assert.Equal(t, Summary{
			Count: 1, Min: 5, Max: 5, Mean: 5, Median: 5,
			StdDev: 0, P25: 5, P75: 5, P95: 5,
		}, *s)
	})

	t.Run("PopulationStdDev", func(t *testing.T) {
		s := Compute([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		require.NotNil(t, s)
		assert.Equal(t, 5.0, s.Mean)
		// sum of squared deviations is 32; 32/8 = 4
		assert.InDelta(t, 2.0, s.StdDev, 1e-12)
	})

	t.Run("UpperMiddleMedianForEvenCount", func(t *testing.T) {
		// conventional median would be 2.5
		s := Compute([]int{4, 1, 3, 2})
		require.NotNil(t, s)
		assert.Equal(t, 3.0, s.Median)
	})

	t.Run("PercentileIndices", func(t *testing.T) {
		data := make([]int, 20)
		for i := range data {
			data[i] = i
		}
		s := Compute(data)
		require.NotNil(t, s)
		assert.Equal(t, 5.0, s.P25)
		assert.Equal(t, 15.0, s.P75)
		assert.Equal(t, 19.0, s.P95)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		data := []float64{3, 1, 2}
		Compute(data)
		assert.Equal(t, []float64{3, 1, 2}, data)
	})

	t.Run("IntegerSamples", func(t *testing.T) {
		s := Compute([]int64{0, 0, 1, 0, 2})
		require.NotNil(t, s)
		assert.Equal(t, 5, s.Count)
		assert.InDelta(t, 0.6, s.Mean, 1e-12)
		assert.Equal(t, 2.0, s.Max)
	})
}

func TestCompute_OrderingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(50)
		data := make([]float64, n)
		for i := range data {
			data[i] = rng.NormFloat64() * 10
		}

		s := Compute(data)
		require.NotNil(t, s)
		assert.Equal(t, n, s.Count)
		assert.LessOrEqual(t, s.Min, s.P25)
		assert.LessOrEqual(t, s.P25, s.Median)
		assert.LessOrEqual(t, s.Median, s.P75)
		assert.LessOrEqual(t, s.P75, s.P95)
		assert.LessOrEqual(t, s.P95, s.Max)
		assert.False(t, math.IsNaN(s.StdDev))
	}
}

func TestPercentile_ClampsToLastElement(t *testing.T) {
	sorted := []float64{1, 2, 3}
	assert.Equal(t, 3.0, Percentile(sorted, 1.0))
	assert.Equal(t, 3.0, Percentile(sorted, 1.5))
	assert.Equal(t, 1.0, Percentile(sorted, 0))
	assert.Equal(t, 1.0, Percentile(sorted, -0.5))
}

func TestSumAndMinMax(t *testing.T) {
	assert.Equal(t, int64(6), Sum([]int64{1, 2, 3}))
	assert.Equal(t, 0.0, Sum[float64](nil))

	lo, hi, ok := MinMax([]int64{3, -1, 7})
	assert.True(t, ok)
	assert.Equal(t, int64(-1), lo)
	assert.Equal(t, int64(7), hi)

	_, _, ok = MinMax[float64](nil)
	assert.False(t, ok)
}
