package services

import (
	"github.com/shopspring/decimal"

	"github.com/ennes0/CryptoPredictor/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// DeriveMetrics computes the financial figures for a forecast and an
// investment amount. Pure and total over well-formed input; the client
// guarantees a non-empty point list before this is called.
//
// The terminal (last) point of the horizon is the canonical prediction. A
// zero or negative investment amount is mathematically valid here and simply
// scales the return; positivity checks belong to the caller.
func DeriveMetrics(forecast *models.ForecastResult, investmentAmount decimal.Decimal) models.DerivedMetrics {
	terminal := forecast.Terminal()

	priceDelta := terminal.PredictedPrice.Sub(forecast.LastClose)
	changePct := decimal.Zero
	if !forecast.LastClose.IsZero() {
		changePct = priceDelta.Div(forecast.LastClose).Mul(oneHundred).Round(2)
	}

	sentiment := models.SentimentBearish
	if terminal.PredictedPrice.GreaterThan(forecast.LastClose) {
		sentiment = models.SentimentBullish
	}

	return models.DerivedMetrics{
		PredictedChangePct:    changePct,
		PotentialReturnAmount: priceDelta.Mul(investmentAmount),
		PotentialROIPct:       changePct,
		Sentiment:             sentiment,
		OptimisticPrice:       terminal.UpperBound,
		PessimisticPrice:      terminal.LowerBound,
	}
}
