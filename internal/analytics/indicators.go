package analytics

import (
	"math"

	"github.com/bobmcallan/greenvest/internal/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Indicator windows used by the synthesizer
const (
	RSIPeriod       = 14
	MACDFast        = 12
	MACDSlow        = 26
	MACDSignal      = 9
	BollingerPeriod = 20
	BollingerWidth  = 2.0
)

// SMA calculates the Simple Moving Average of the most recent period closes.
// Prices are chronological, so the window is the tail of the slice.
func SMA(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period {
		return 0
	}
	return floats.Sum(prices[len(prices)-period:]) / float64(period)
}

// emaSeries returns the EMA at every index from period-1 onward, seeded with the SMA
// of the first period closes.
func emaSeries(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}
	multiplier := 2.0 / float64(period+1)
	out := make([]float64, 0, len(prices)-period+1)
	ema := floats.Sum(prices[:period]) / float64(period)
	out = append(out, ema)
	for _, p := range prices[period:] {
		ema = (p-ema)*multiplier + ema
		out = append(out, ema)
	}
	return out
}

// EMA calculates the Exponential Moving Average at the latest close
func EMA(prices []float64, period int) float64 {
	series := emaSeries(prices, period)
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1]
}

// RSI calculates the Relative Strength Index over the last period changes
func RSI(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period+1 {
		return 50 // Neutral default
	}

	var gains, losses float64
	tail := prices[len(prices)-period-1:]
	for i := 1; i < len(tail); i++ {
		change := tail[i] - tail[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	if gains == 0 && losses == 0 {
		return 50
	}
	if losses == 0 {
		return 100
	}

	rs := gains / losses
	return 100 - (100 / (1 + rs))
}

// MACD calculates Moving Average Convergence Divergence.
// Returns MACD line, Signal line, and Histogram. When the MACD history is shorter
// than the signal period the signal line equals the MACD line.
func MACD(prices []float64, fastPeriod, slowPeriod, signalPeriod int) (float64, float64, float64) {
	if len(prices) < slowPeriod || fastPeriod >= slowPeriod {
		return 0, 0, 0
	}

	fast := emaSeries(prices, fastPeriod)
	slow := emaSeries(prices, slowPeriod)
	// align fast to slow: both end at the latest close
	offset := len(fast) - len(slow)
	line := make([]float64, len(slow))
	for i := range slow {
		line[i] = fast[i+offset] - slow[i]
	}

	macdLine := line[len(line)-1]
	signalLine := macdLine
	if s := emaSeries(line, signalPeriod); len(s) > 0 {
		signalLine = s[len(s)-1]
	}
	return macdLine, signalLine, macdLine - signalLine
}

// BollingerBands returns middle ± width population standard deviations over the
// last period closes. A period longer than the series uses the whole series.
func BollingerBands(prices []float64, period int, width float64) models.BollingerBands {
	if len(prices) == 0 {
		return models.BollingerBands{}
	}
	if period <= 0 || period > len(prices) {
		period = len(prices)
	}
	window := prices[len(prices)-period:]
	mean, variance := stat.PopMeanVariance(window, nil)
	sd := math.Sqrt(variance)
	return models.BollingerBands{
		Upper:  mean + width*sd,
		Middle: mean,
		Lower:  mean - width*sd,
	}
}

// DetectCrossover compares a short and long moving average at the latest close.
// Returns "golden_cross" when the short average crossed above the long one on the
// last bar, "death_cross" when it crossed below, or "none".
func DetectCrossover(prices []float64, short, long int) string {
	if short <= 0 || long <= short || len(prices) < long+1 {
		return "none"
	}
	prev := prices[:len(prices)-1]
	shortNow, longNow := SMA(prices, short), SMA(prices, long)
	shortPrev, longPrev := SMA(prev, short), SMA(prev, long)

	if shortPrev <= longPrev && shortNow > longNow {
		return "golden_cross"
	}
	if shortPrev >= longPrev && shortNow < longNow {
		return "death_cross"
	}
	return "none"
}

// ClassifyRSI classifies RSI value
func ClassifyRSI(rsi float64) string {
	if rsi >= 70 {
		return "overbought"
	}
	if rsi <= 30 {
		return "oversold"
	}
	return "neutral"
}
