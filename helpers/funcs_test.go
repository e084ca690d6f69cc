package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumAndMean(t *testing.T) {
	numbers := []float64{1, 2, 3, 4}

	assert.Equal(t, 10.0, Sum(numbers))
	assert.Equal(t, 2.5, Mean(numbers))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 0.0, Median(nil))

	// Input stays untouched
	numbers := []float64{3, 1, 2}
	Median(numbers)
	assert.Equal(t, []float64{3, 1, 2}, numbers)
}

func TestVarianceAndStdDev(t *testing.T) {
	numbers := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := Mean(numbers)

	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 4.0, Variance(numbers, mean))
	assert.Equal(t, 2.0, StdDev(numbers, mean))
}

func TestAllValuesPositive(t *testing.T) {
	assert.True(t, AllValuesPositive([]float64{1, 0, 2}))
	assert.False(t, AllValuesPositive([]float64{1, -0.1}))
}

func TestPositiveNegativeRatio(t *testing.T) {
	assert.Equal(t, 3.0, PositiveNegativeRatio([]float64{1, 2, 3, -1}))
	assert.Equal(t, 0.0, PositiveNegativeRatio([]float64{1, 2}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
}
