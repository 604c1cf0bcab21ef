package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	testCases := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "Basic test", input: []float64{10, 20, 30}, expected: 20},
		{name: "Single value", input: []float64{7.5}, expected: 7.5},
		{name: "Negative values", input: []float64{-2, 2}, expected: 0},
		{name: "Empty input", input: nil, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Mean(tc.input)
			if !almostEqual(result, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, result)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	testCases := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "Odd count", input: []float64{3, 1, 2}, expected: 2},
		{name: "Even count", input: []float64{4, 1, 3, 2}, expected: 2.5},
		{name: "Single value", input: []float64{9}, expected: 9},
		{name: "Empty input", input: nil, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Median(tc.input)
			if !almostEqual(result, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, result)
			}
		})
	}
}

func TestMedianPermutationInvariant(t *testing.T) {
	expected := Median([]float64{5, 1, 4, 2, 3})

	permutations := [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 5, 1, 4, 2},
		{2, 4, 1, 5, 3},
	}

	for _, p := range permutations {
		if result := Median(p); result != expected {
			t.Errorf("Median(%v) == %v, want %v", p, result, expected)
		}
	}
}

func TestMode(t *testing.T) {
	testCases := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "Clear winner", input: []float64{1, 2, 2, 3}, expected: 2},
		{name: "Tie goes to smallest", input: []float64{1, 1, 2, 2, 3, 3}, expected: 1},
		{name: "All distinct", input: []float64{9, 4, 7}, expected: 4},
		{name: "Single value", input: []float64{4}, expected: 4},
		{name: "Empty input", input: nil, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Mode(tc.input)
			if result != tc.expected {
				t.Errorf("Expected: %v, got: %v", tc.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	testCases := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "Population variance", input: []float64{1, 2, 3, 4}, expected: 1.25},
		{name: "All equal is zero", input: []float64{5, 5, 5, 5}, expected: 0},
		{name: "Empty input", input: nil, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Variance(tc.input)
			if !almostEqual(result, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, result)
			}
		})
	}
}

func TestVarianceZeroOnlyWhenConstant(t *testing.T) {
	if Variance([]float64{1, 1, 1.0000001}) == 0 {
		t.Error("Variance() == 0 for a non-constant sample, want non-zero")
	}

	if Variance([]float64{-3.5, -3.5, -3.5}) != 0 {
		t.Error("Variance() != 0 for a constant sample, want 0")
	}
}

func TestStdDev(t *testing.T) {
	result := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(result, 2) {
		t.Errorf("StdDev() == %v, want 2", result)
	}

	variance := Variance([]float64{1, 2, 3, 4})
	if !almostEqual(StdDev([]float64{1, 2, 3, 4}), math.Sqrt(variance)) {
		t.Error("StdDev() is not the square root of Variance()")
	}
}

func TestDescribe(t *testing.T) {
	summary := Describe([]float64{10, 20, 20, 30})

	if summary.Count != 4 {
		t.Errorf("Describe().Count == %d, want 4", summary.Count)
	}

	if !almostEqual(summary.Mean, 20) {
		t.Errorf("Describe().Mean == %v, want 20", summary.Mean)
	}

	if !almostEqual(summary.Median, 20) {
		t.Errorf("Describe().Median == %v, want 20", summary.Median)
	}

	if summary.Mode != 20 {
		t.Errorf("Describe().Mode == %v, want 20", summary.Mode)
	}

	if !almostEqual(summary.StdDev, math.Sqrt(summary.Variance)) {
		t.Error("Describe().StdDev is not the square root of Describe().Variance")
	}
}
