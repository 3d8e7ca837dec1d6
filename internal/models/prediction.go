package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timeframe labels accepted by the prediction API.
const (
	Timeframe1D  = "1d"
	Timeframe7D  = "7d"
	Timeframe30D = "30d"
	Timeframe90D = "90d"
	Timeframe1Y  = "1y"
)

// MarketSentiment is the binary bullish/bearish label derived from the sign
// of the predicted price change. Equality with the last close counts as
// bearish.
type MarketSentiment string

const (
	SentimentBullish MarketSentiment = "Bullish"
	SentimentBearish MarketSentiment = "Bearish"
)

// PredictionRequest is the canonical, validated form of a user's forecast
// request. Symbol always carries exactly one "-USD" suffix.
type PredictionRequest struct {
	Symbol        string `json:"coin_symbol"`
	Lookback      int    `json:"lookback"`
	HorizonDays   int    `json:"future_days"`
	SampleCount   int    `json:"mc_samples"`
	TrainNewModel bool   `json:"train_new_model"`
}

// ForecastPoint is a single predicted day. The upstream model is expected to
// keep LowerBound <= PredictedPrice <= UpperBound, but a violation is a
// data-quality warning, not an error.
type ForecastPoint struct {
	Date           string          `json:"Date,omitempty"`
	PredictedPrice decimal.Decimal `json:"Predicted_Price"`
	UpperBound     decimal.Decimal `json:"Upper_Bound"`
	LowerBound     decimal.Decimal `json:"Lower_Bound"`
	DailyChange    decimal.Decimal `json:"Daily_Change,omitempty"`
}

// RecentPrice is an observed close preceding the forecast window, echoed by
// the upstream service for charting.
type RecentPrice struct {
	Date        string          `json:"Date"`
	ActualPrice decimal.Decimal `json:"Actual_Price"`
}

// ForecastResult is the normalized output of one prediction call. It is
// immutable once received; a newer request supersedes it entirely.
type ForecastResult struct {
	Symbol        string          `json:"coin"`
	LastClose     decimal.Decimal `json:"last_close"`
	Points        []ForecastPoint `json:"predictions"`
	RecentPrices  []RecentPrice   `json:"recent_prices,omitempty"`
	DateGenerated string          `json:"date_generated,omitempty"`
}

// Terminal returns the last point of the forecast window, the canonical
// "where will price be at the end of the horizon" value.
func (r *ForecastResult) Terminal() ForecastPoint {
	return r.Points[len(r.Points)-1]
}

// DerivedMetrics are the financial figures computed from a forecast and an
// investment amount. Never persisted.
type DerivedMetrics struct {
	PredictedChangePct    decimal.Decimal `json:"predicted_change_pct"`
	PotentialReturnAmount decimal.Decimal `json:"potential_return_amount"`
	PotentialROIPct       decimal.Decimal `json:"potential_roi_pct"`
	Sentiment             MarketSentiment `json:"sentiment"`
	OptimisticPrice       decimal.Decimal `json:"optimistic_price"`
	PessimisticPrice      decimal.Decimal `json:"pessimistic_price"`
}

// SignalType classifies the trading signal attached to a forecast.
type SignalType string

const (
	SignalBuy  SignalType = "BUY"
	SignalSell SignalType = "SELL"
	SignalHold SignalType = "HOLD"
)

// SignalStrength grades a trading signal.
type SignalStrength string

const (
	SignalStrengthStrong   SignalStrength = "STRONG"
	SignalStrengthModerate SignalStrength = "MODERATE"
	SignalStrengthNeutral  SignalStrength = "NEUTRAL"
)

// TradingSignal is a coarse buy/sell/hold recommendation derived from the
// predicted price change.
type TradingSignal struct {
	Type     SignalType     `json:"type"`
	Strength SignalStrength `json:"strength"`
	Reason   string         `json:"reason"`
}

// PredictionOutcome bundles everything the API returns for one prediction
// cycle. Generation orders outcomes so a stale in-flight response can be
// discarded.
type PredictionOutcome struct {
	RequestID  string            `json:"request_id"`
	Generation uint64            `json:"generation"`
	Request    PredictionRequest `json:"request"`
	Forecast   *ForecastResult   `json:"forecast"`
	Metrics    DerivedMetrics    `json:"metrics"`
	Signals    []TradingSignal   `json:"signals"`
	CreatedAt  time.Time         `json:"created_at"`
}
