package stats

import (
	"math"
	"sort"
)

// Summary holds every statistic the report needs for one sample.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	Mode     float64
	StdDev   float64
	Variance float64
}

// Mean returns the arithmetic average, 0 for an empty sample.
func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}

	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers))
}

// Median sorts a copy ascending. Even counts average the two middle elements.
func Median(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mode returns the most frequent value. Ties go to the numerically smallest.
func Mode(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}

	frequency := make(map[float64]int)
	maxFreq := 0
	for _, n := range numbers {
		frequency[n] += 1
		if frequency[n] > maxFreq {
			maxFreq = frequency[n]
		}
	}

	mode := math.Inf(1)
	for n, freq := range frequency {
		if freq == maxFreq && n < mode {
			mode = n
		}
	}
	return mode
}

// Variance is the population variance, dividing by N rather than N-1.
func Variance(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}

	mean := Mean(numbers)
	variance := 0.0
	for _, n := range numbers {
		d := n - mean
		variance += d * d
	}
	return variance / float64(len(numbers))
}

// StdDev is the population standard deviation.
func StdDev(numbers []float64) float64 {
	return math.Sqrt(Variance(numbers))
}

// Describe computes the full summary for one sample.
func Describe(numbers []float64) Summary {
	return Summary{
		Count:    len(numbers),
		Mean:     Mean(numbers),
		Median:   Median(numbers),
		Mode:     Mode(numbers),
		StdDev:   StdDev(numbers),
		Variance: Variance(numbers),
	}
}
