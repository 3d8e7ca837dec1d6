package services

import (
	"github.com/shopspring/decimal"

	"github.com/ennes0/CryptoPredictor/internal/models"
)

var (
	strongBuyThreshold    = decimal.NewFromInt(5)
	moderateBuyThreshold  = decimal.NewFromInt(2)
	strongSellThreshold   = decimal.NewFromInt(-5)
	moderateSellThreshold = decimal.NewFromInt(-2)
)

// GenerateSignals classifies the predicted change percentage into a coarse
// trading signal.
func GenerateSignals(predictedChangePct decimal.Decimal) []models.TradingSignal {
	switch {
	case predictedChangePct.GreaterThan(strongBuyThreshold):
		return []models.TradingSignal{{
			Type:     models.SignalBuy,
			Strength: models.SignalStrengthStrong,
			Reason:   "Significant upward price movement predicted",
		}}
	case predictedChangePct.GreaterThan(moderateBuyThreshold):
		return []models.TradingSignal{{
			Type:     models.SignalBuy,
			Strength: models.SignalStrengthModerate,
			Reason:   "Moderate upward price movement predicted",
		}}
	case predictedChangePct.LessThan(strongSellThreshold):
		return []models.TradingSignal{{
			Type:     models.SignalSell,
			Strength: models.SignalStrengthStrong,
			Reason:   "Significant downward price movement predicted",
		}}
	case predictedChangePct.LessThan(moderateSellThreshold):
		return []models.TradingSignal{{
			Type:     models.SignalSell,
			Strength: models.SignalStrengthModerate,
			Reason:   "Moderate downward price movement predicted",
		}}
	default:
		return []models.TradingSignal{{
			Type:     models.SignalHold,
			Strength: models.SignalStrengthNeutral,
			Reason:   "Price expected to remain relatively stable",
		}}
	}
}
