package services

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	decHundred = decimal.NewFromInt(100)
	decOne     = decimal.NewFromInt(1)
)

// clamp bounds v to [lo, hi]; NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScore(v float64) float64 {
	return clamp(v, 0, 100)
}

// roundScore clamps to [0,100] and rounds half away from zero.
func roundScore(v float64) int {
	return int(math.Round(clampScore(v)))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func calculateMeanFloat64(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func dec(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// nonNegative floors a currency amount at zero.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
