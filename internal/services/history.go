package services

import (
	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/momentum"
	"github.com/cinar/indicator/v2/trend"
	"github.com/shopspring/decimal"

	"github.com/ennes0/CryptoPredictor/internal/models"
)

// historyWindow is the trailing slice of observations the history factor is
// averaged over.
const historyWindow = 7

// historyFactorWeight is the empirical scaling applied to the mean
// day-over-day change.
var historyFactorWeight = decimal.NewFromInt(2)

// TrendPercentage computes the full-series trend from the first and last
// observations of a chronologically ascending series. Fewer than two points
// yields zero. The series is taken as given, never re-sorted.
func TrendPercentage(series models.HistoricalSeries) decimal.Decimal {
	if len(series) < 2 {
		return decimal.Zero
	}

	oldest := series[0].Price
	latest := series[len(series)-1].Price
	if oldest.IsZero() {
		return decimal.Zero
	}

	return latest.Sub(oldest).Div(oldest).Mul(oneHundred)
}

// HistoryFactor is the mean day-over-day fractional change over the trailing
// seven observations, scaled by 2. Fewer than two observations in the window
// yields zero.
func HistoryFactor(series models.HistoricalSeries) decimal.Decimal {
	if len(series) < 2 {
		return decimal.Zero
	}

	recent := series
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}
	if len(recent) < 2 {
		return decimal.Zero
	}

	total := decimal.Zero
	for i := 1; i < len(recent); i++ {
		prev := recent[i-1].Price
		if prev.IsZero() {
			continue
		}
		total = total.Add(recent[i].Price.Sub(prev).Div(prev))
	}

	avg := total.Div(decimal.NewFromInt(int64(len(recent) - 1)))
	return avg.Mul(historyFactorWeight)
}

// Momentum computes the short-window auxiliary indicators shown next to the
// price history: a 7-day SMA and a 14-day RSI. Series shorter than the
// indicator period yield zero values.
func Momentum(series models.HistoricalSeries) models.MomentumSummary {
	prices := make([]float64, len(series))
	for i, p := range series {
		prices[i] = p.Price.InexactFloat64()
	}

	var summary models.MomentumSummary

	if len(prices) >= historyWindow {
		smaIndicator := trend.NewSmaWithPeriod[float64](historyWindow)
		sma := helper.ChanToSlice(smaIndicator.Compute(helper.SliceToChan(prices)))
		if len(sma) > 0 {
			summary.SMA7 = sma[len(sma)-1]
		}
	}

	if len(prices) >= 15 {
		rsiIndicator := momentum.NewRsiWithPeriod[float64](14)
		rsi := helper.ChanToSlice(rsiIndicator.Compute(helper.SliceToChan(prices)))
		if len(rsi) > 0 {
			summary.RSI14 = rsi[len(rsi)-1]
		}
	}

	return summary
}
