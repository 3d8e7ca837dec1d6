package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one observation in a historical price series.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// HistoricalSeries is a chronologically ascending price series with no
// duplicate dates. Callers sort before handing it to the analyzers.
type HistoricalSeries []PricePoint

// TrendSummary captures the display-level trend figures computed from a
// historical series.
type TrendSummary struct {
	TrendPct      decimal.Decimal `json:"trend_pct"`
	HistoryFactor decimal.Decimal `json:"history_factor"`
}

// MomentumSummary carries the auxiliary short-window indicator values
// attached to a details response.
type MomentumSummary struct {
	SMA7  float64 `json:"sma_7"`
	RSI14 float64 `json:"rsi_14"`
}
