package analytics

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultRiskFreeRate is the risk-free rate used when none is configured.
const DefaultRiskFreeRate = 0.02

// DefaultAnnualizationDays is the number of trading days in a year.
const DefaultAnnualizationDays = 252

// degenerateEpsilon is the standard deviation below which returns count as constant.
const degenerateEpsilon = 1e-12

// MovingAverage returns the means of every window of period prices, in order.
// The sequence has len(prices)-period+1 values and can be ranged over repeatedly.
func MovingAverage(prices []float64, period int) (iter.Seq[float64], error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidArgument, period)
	}
	if period > len(prices) {
		return nil, fmt.Errorf("%w: period %d exceeds %d prices", ErrInvalidArgument, period, len(prices))
	}
	window := float64(period)
	return func(yield func(float64) bool) {
		for end := period; end <= len(prices); end++ {
			if !yield(floats.Sum(prices[end-period:end]) / window) {
				return
			}
		}
	}, nil
}

// MovingAverageValues collects MovingAverage into a slice.
func MovingAverageValues(prices []float64, period int) ([]float64, error) {
	seq, err := MovingAverage(prices, period)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(prices)-period+1)
	for v := range seq {
		out = append(out, v)
	}
	return out, nil
}

// Returns computes simple returns (p[i]-p[i-1])/p[i-1].
func Returns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInvalidArgument, len(prices))
	}
	for i, p := range prices {
		if !(p > 0) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: price at %d must be positive, got %v", ErrInvalidArgument, i, p)
		}
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return returns, nil
}

// Volatility is the population standard deviation of simple returns.
func Volatility(prices []float64) (float64, error) {
	returns, err := Returns(prices)
	if err != nil {
		return 0, err
	}
	return returnsVolatility(returns), nil
}

// returnsVolatility is the population standard deviation of already computed returns
func returnsVolatility(returns []float64) float64 {
	_, variance := stat.PopMeanVariance(returns, nil)
	return math.Sqrt(variance)
}

// SharpeRatio is (mean(returns) - riskFreeRate) / popStdDev(returns).
// Constant returns have no defined ratio and yield ErrNumericDegenerate.
func SharpeRatio(returns []float64, riskFreeRate float64) (float64, error) {
	if len(returns) == 0 {
		return 0, fmt.Errorf("%w: returns must not be empty", ErrInvalidArgument)
	}
	mean, variance := stat.PopMeanVariance(returns, nil)
	sd := math.Sqrt(variance)
	if sd <= degenerateEpsilon*math.Max(1, math.Abs(mean)) {
		return 0, fmt.Errorf("%w: returns have zero variance", ErrNumericDegenerate)
	}
	return (mean - riskFreeRate) / sd, nil
}

// AnnualizedSharpe scales daily returns to a yearly Sharpe ratio.
func AnnualizedSharpe(returns []float64, riskFreeRate float64, days int) (float64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w: annualization days must be positive", ErrInvalidArgument)
	}
	if len(returns) == 0 {
		return 0, fmt.Errorf("%w: returns must not be empty", ErrInvalidArgument)
	}
	mean, variance := stat.PopMeanVariance(returns, nil)
	sd := math.Sqrt(variance)
	if sd <= degenerateEpsilon*math.Max(1, math.Abs(mean)) {
		return 0, fmt.Errorf("%w: returns have zero variance", ErrNumericDegenerate)
	}
	n := float64(days)
	return (mean*n - riskFreeRate) / (sd * math.Sqrt(n)), nil
}

// Annualize scales a daily volatility by sqrt(days).
func Annualize(daily float64, days int) float64 {
	if days <= 0 {
		days = DefaultAnnualizationDays
	}
	return daily * math.Sqrt(float64(days))
}

// MaxDrawdown returns the largest peak-to-trough decline as a fraction, zero or negative.
func MaxDrawdown(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	peak := prices[0]
	worst := 0.0
	for _, p := range prices[1:] {
		if p > peak {
			peak = p
			continue
		}
		if peak > 0 {
			if dd := (p - peak) / peak; dd < worst {
				worst = dd
			}
		}
	}
	return worst
}
