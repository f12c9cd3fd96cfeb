package csvreader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadHistogram(t *testing.T) {
	t.Run("ParsesRows", func(t *testing.T) {
		path := writeFile(t, "cuda_histogram.csv",
			"run,kernel_time_ms,coins_found\n0,12.5,1\n1,13.25,0\n")

		times, coins := ReadHistogram(path)
		assert.Equal(t, []float64{12.5, 13.25}, times)
		assert.Equal(t, []int64{1, 0}, coins)
	})

	t.Run("SkipsMalformedRows", func(t *testing.T) {
		path := writeFile(t, "cuda_histogram.csv",
			"kernel_time_ms,coins_found\n1.0,2\nbad,3\n4.0,oops\n5.0\n6.0,7\n")

		times, coins := ReadHistogram(path)
		assert.Equal(t, []float64{1.0, 6.0}, times)
		assert.Equal(t, []int64{2, 7}, coins)
	})

	t.Run("SkipsNonFiniteKernelTimes", func(t *testing.T) {
		path := writeFile(t, "cuda_histogram.csv",
			"kernel_time_ms,coins_found\n1.0,2\nNaN,1\n-Inf,1\n+Inf,0\ninf,4\n6.0,7\n")

		times, coins := ReadHistogram(path)
		assert.Equal(t, []float64{1.0, 6.0}, times)
		assert.Equal(t, []int64{2, 7}, coins)
	})

	t.Run("MissingFile", func(t *testing.T) {
		times, coins := ReadHistogram(filepath.Join(t.TempDir(), "missing.csv"))
		assert.Nil(t, times)
		assert.Nil(t, coins)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		path := writeFile(t, "cuda_histogram.csv", "kernel_time_ms\n1.0\n2.0\n")
		times, coins := ReadHistogram(path)
		assert.Nil(t, times)
		assert.Nil(t, coins)
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		path := writeFile(t, "cuda_histogram.csv", "kernel_time_ms,coins_found\n")
		times, coins := ReadHistogram(path)
		assert.Nil(t, times)
		assert.Nil(t, coins)
	})
}

func TestReadBenchmarks(t *testing.T) {
	t.Run("ParsesScientificNotation", func(t *testing.T) {
		path := writeFile(t, "benchmark_results.csv",
			"Implementation,Attempts,Attempts/Second,Attempts/Minute\n"+
				"CPU_Baseline,50000000,1.23e+07,7.38e+08\n"+
				"AVX2,400000000,9.80e+07,5.88e+09\n")

		results := ReadBenchmarks(path)
		require.Len(t, results, 2)
		assert.Equal(t, Benchmark{
			Name: "CPU_Baseline", Attempts: 5e7, PerSecond: 1.23e7, PerMinute: 7.38e8,
		}, results[0])
		assert.Equal(t, "AVX2", results[1].Name)
	})

	t.Run("RepeatedNameKeepsFirstPosition", func(t *testing.T) {
		path := writeFile(t, "benchmark_results.csv",
			"Implementation,Attempts,Attempts/Second,Attempts/Minute\n"+
				"CPU,1,10,600\nGPU,1,100,6000\nCPU,1,20,1200\n")

		results := ReadBenchmarks(path)
		require.Len(t, results, 2)
		assert.Equal(t, "CPU", results[0].Name)
		assert.Equal(t, 20.0, results[0].PerSecond)

		gpu, ok := results.Get("GPU")
		assert.True(t, ok)
		assert.Equal(t, 100.0, gpu.PerSecond)
	})

	t.Run("SkipsBadRows", func(t *testing.T) {
		path := writeFile(t, "benchmark_results.csv",
			"Implementation,Attempts,Attempts/Second,Attempts/Minute\n"+
				"AVX,x,1,2\nAVX512F,1,2,3\n")

		results := ReadBenchmarks(path)
		require.Len(t, results, 1)
		assert.Equal(t, "AVX512F", results[0].Name)
	})

	t.Run("SkipsNonFiniteRates", func(t *testing.T) {
		path := writeFile(t, "benchmark_results.csv",
			"Implementation,Attempts,Attempts/Second,Attempts/Minute\n"+
				"CPU,1,NaN,2\nAVX2,1,2,Inf\nCUDA,1,2,3\n")

		results := ReadBenchmarks(path)
		require.Len(t, results, 1)
		assert.Equal(t, "CUDA", results[0].Name)
	})

	t.Run("MissingFile", func(t *testing.T) {
		assert.Nil(t, ReadBenchmarks(filepath.Join(t.TempDir(), "missing.csv")))
	})

	t.Run("MalformedQuotingIsSoftFailure", func(t *testing.T) {
		path := writeFile(t, "benchmark_results.csv",
			"Implementation,Attempts,Attempts/Second,Attempts/Minute\n\"CPU,1,2,3\n")
		assert.Nil(t, ReadBenchmarks(path))
	})
}
