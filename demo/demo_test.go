package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

func TestKernelTimes(t *testing.T) {
	times := KernelTimes(1)
	assert.Len(t, times, KernelTimeSamples+SlowRunSamples)
	assert.Equal(t, times, KernelTimes(1))

	s := stats.Compute(times[:KernelTimeSamples])
	assert.InDelta(t, KernelTimeMean, s.Mean, 0.5)
	assert.InDelta(t, KernelTimeStdDev, s.StdDev, 0.5)
}

func TestCoinCounts(t *testing.T) {
	counts := CoinCounts(7)
	assert.Len(t, counts, CoinBatches)
	assert.Equal(t, counts, CoinCounts(7))
	for _, c := range counts {
		assert.GreaterOrEqual(t, c, int64(0))
	}
	// λ·n = 50 expected coins
	assert.Less(t, stats.Sum(counts), int64(150))
}
