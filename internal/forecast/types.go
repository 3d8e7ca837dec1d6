package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/ennes0/CryptoPredictor/internal/models"
)

// Wire shapes of the forecasting service. Pointer fields distinguish absent
// values from legitimate zeros during schema validation.

type predictResponse struct {
	Success       bool              `json:"success"`
	Coin          string            `json:"coin"`
	LastClose     *decimal.Decimal  `json:"last_close"`
	Predictions   []wirePoint       `json:"predictions"`
	RecentPrices  []wireRecentPrice `json:"recent_prices"`
	DateGenerated string            `json:"date_generated"`
	Error         string            `json:"error"`
}

type wirePoint struct {
	Date           string           `json:"Date"`
	PredictedPrice *decimal.Decimal `json:"Predicted_Price"`
	UpperBound     *decimal.Decimal `json:"Upper_Bound"`
	LowerBound     *decimal.Decimal `json:"Lower_Bound"`
	DailyChange    *decimal.Decimal `json:"Daily_Change"`
}

type wireRecentPrice struct {
	Date        string           `json:"Date"`
	ActualPrice *decimal.Decimal `json:"Actual_Price"`
}

// errorBody is the error envelope of a non-2xx response. FastAPI-style
// services put the message under "detail", others under "error".
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (b errorBody) message() string {
	if b.Detail != "" {
		return b.Detail
	}
	return b.Error
}

type detailsRequest struct {
	Symbol string `json:"coin_symbol"`
}

type statusEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type coinsResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	Coins   []models.Coin `json:"coins"`
}
