package summary

import (
	"math"
	"math/big"
	"sort"

	errors2 "github.com/savid/latstats/pkg/errors"
)

type MeanMode string

const (
	// MeanScaled truncates every sample to 1/10000 of a millisecond before
	// summing. Output matches the legacy stats script.
	MeanScaled MeanMode = "scaled"
	// MeanExact sums the samples directly in float64.
	MeanExact MeanMode = "exact"
)

const meanScale = 10000

type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	P99    float64
}

// Summarize sorts a copy of data and returns min, max, mean, the
// upper-middle median and the nearest-rank p99.
func Summarize(data []float64, mode MeanMode) (Stats, error) {
	n := len(data)
	if n == 0 {
		return Stats{}, &errors2.EmptyInputError{}
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	s := Stats{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: sorted[n/2],
		P99:    sorted[n*99/100],
	}

	if mode == MeanExact {
		s.Mean = exactMean(data)
	} else {
		s.Mean = scaledMean(data)
	}

	return s, nil
}

func exactMean(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}

	return sum / float64(len(data))
}

// scaledMean sums int(v*10000) exactly and divides by n*10000 with a single
// rounding. Non-finite samples have no integer form, so those fall back to
// exactMean.
func scaledMean(data []float64) float64 {
	sum := new(big.Int)
	scaled := new(big.Int)

	for _, v := range data {
		t := math.Trunc(v * meanScale)
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return exactMean(data)
		}

		big.NewFloat(t).Int(scaled)
		sum.Add(sum, scaled)
	}

	div := new(big.Int).Mul(big.NewInt(int64(len(data))), big.NewInt(meanScale))
	mean, _ := new(big.Rat).SetFrac(sum, div).Float64()

	return mean
}
