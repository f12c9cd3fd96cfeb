// Package demo generates synthetic benchmark samples so the reports can be
// previewed before any real run exists.
package demo

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Shape of the synthetic kernel time data: a main mode plus a slower tail
// standing in for thermal throttling or system load.
const (
	KernelTimeSamples = 1000
	KernelTimeMean    = 50.0
	KernelTimeStdDev  = 2.0
	SlowRunSamples    = 50
	SlowRunMean       = 60.0
	SlowRunStdDev     = 5.0
)

// Shape of the synthetic coins-found data.
const (
	CoinBatches = 5000
	CoinLambda  = 0.01
)

// KernelTimes returns normally distributed kernel times in milliseconds.
func KernelTimes(seed uint64) []float64 {
	src := rand.NewSource(seed)
	typical := distuv.Normal{Mu: KernelTimeMean, Sigma: KernelTimeStdDev, Src: src}
	slow := distuv.Normal{Mu: SlowRunMean, Sigma: SlowRunStdDev, Src: src}

	times := make([]float64, 0, KernelTimeSamples+SlowRunSamples)
	for i := 0; i < KernelTimeSamples; i++ {
		times = append(times, typical.Rand())
	}
	for i := 0; i < SlowRunSamples; i++ {
		times = append(times, slow.Rand())
	}
	return times
}

// CoinCounts returns Poisson distributed per-batch coin counts.
func CoinCounts(seed uint64) []int64 {
	dist := distuv.Poisson{Lambda: CoinLambda, Src: rand.NewSource(seed)}

	counts := make([]int64, CoinBatches)
	for i := range counts {
		counts[i] = int64(math.Round(dist.Rand()))
	}
	return counts
}
