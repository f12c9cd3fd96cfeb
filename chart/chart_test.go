package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelTimes(t *testing.T) {
	t.Run("WritesPNG", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "plots", KernelTimeFile)
		times := []float64{49.1, 50.2, 50.0, 51.3, 48.7, 60.4, 50.5}

		require.NoError(t, KernelTimes(times, DefaultConfig(out)))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), data[:4])
	})

	t.Run("EmptyIsError", func(t *testing.T) {
		err := KernelTimes(nil, DefaultConfig(filepath.Join(t.TempDir(), "x.png")))
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestCoinCounts(t *testing.T) {
	t.Run("WritesPNG", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), CoinsFoundFile)
		counts := []int64{0, 0, 0, 1, 0, 2, 0, 1}

		require.NoError(t, CoinCounts(counts, DefaultConfig(out)))
		assert.FileExists(t, out)
	})

	t.Run("SingleValue", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), CoinsFoundFile)
		require.NoError(t, CoinCounts([]int64{0, 0, 0}, DefaultConfig(out)))
		assert.FileExists(t, out)
	})

	t.Run("WideRangeUsesFixedBins", func(t *testing.T) {
		for _, counts := range [][]int64{
			{-1, 0, 1, math.MaxInt64},
			{0, 1, 1_000_000_000_000},
			{0, MaxCoinBars},
		} {
			out := filepath.Join(t.TempDir(), CoinsFoundFile)
			require.NoError(t, CoinCounts(counts, DefaultConfig(out)))
			assert.FileExists(t, out)
		}
	})

	t.Run("EmptyIsError", func(t *testing.T) {
		err := CoinCounts(nil, Config{})
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestIntegerTicks(t *testing.T) {
	ticks := integerTicks{}.Ticks(-0.5, 3.5)
	values := make([]float64, len(ticks))
	for i, tk := range ticks {
		values[i] = tk.Value
	}
	assert.Equal(t, []float64{0, 1, 2, 3}, values)
	assert.Equal(t, "2", ticks[2].Label)
}
