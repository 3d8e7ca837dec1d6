package services

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ennes0/CryptoPredictor/internal/forecast"
	"github.com/ennes0/CryptoPredictor/internal/models"
)

// rawDetails mirrors the upstream details payload. Every optional field is a
// pointer so that null and absent survive as nil instead of collapsing to 0.
type rawDetails struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Image  *string `json:"image"`

	CurrentPrice          *decimal.Decimal `json:"current_price"`
	MarketCap             *decimal.Decimal `json:"market_cap"`
	MarketCapRank         *int             `json:"market_cap_rank"`
	FullyDilutedValuation *decimal.Decimal `json:"fully_diluted_valuation"`
	TotalVolume           *decimal.Decimal `json:"total_volume"`
	High24h               *decimal.Decimal `json:"high_24h"`
	Low24h                *decimal.Decimal `json:"low_24h"`

	PriceChange24h             *decimal.Decimal `json:"price_change_24h"`
	PriceChangePercentage24h   *decimal.Decimal `json:"price_change_percentage_24h"`
	PriceChangePercentage7d    *decimal.Decimal `json:"price_change_percentage_7d"`
	PriceChangePercentage30d   *decimal.Decimal `json:"price_change_percentage_30d"`
	MarketCapChange24h         *decimal.Decimal `json:"market_cap_change_24h"`
	MarketCapChangePct24h      *decimal.Decimal `json:"market_cap_change_percentage_24h"`
	CirculatingSupply          *decimal.Decimal `json:"circulating_supply"`
	TotalSupply                *decimal.Decimal `json:"total_supply"`
	MaxSupply                  *decimal.Decimal `json:"max_supply"`
	ATH                        *decimal.Decimal `json:"ath"`
	ATHChangePercentage        *decimal.Decimal `json:"ath_change_percentage"`
	ATHDate                    *string          `json:"ath_date"`
	ATL                        *decimal.Decimal `json:"atl"`
	ATLChangePercentage        *decimal.Decimal `json:"atl_change_percentage"`
	ATLDate                    *string          `json:"atl_date"`
	LastUpdated                *string          `json:"last_updated"`
	Description                *string          `json:"description"`
	GenesisDate                *string          `json:"genesis_date"`
	SentimentVotesUpPercentage *decimal.Decimal `json:"sentiment_votes_up_percentage"`

	PriceHistory []rawPricePoint `json:"price_history"`
}

type rawPricePoint struct {
	Date  string           `json:"date"`
	Price *decimal.Decimal `json:"price"`
}

// NormalizeDetails maps the heterogeneous upstream details payload into the
// typed CryptoDetails shape. It derives nothing; display formatting is a
// presentation concern. Only a top-level payload that is not a JSON object
// is an error; arbitrarily sparse input is tolerated.
func NormalizeDetails(raw json.RawMessage) (*models.CryptoDetails, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, &forecast.SchemaError{Message: "crypto details payload is not an object"}
	}

	var rd rawDetails
	if err := json.Unmarshal(raw, &rd); err != nil {
		return nil, &forecast.SchemaError{Message: "crypto details payload has malformed fields"}
	}

	details := &models.CryptoDetails{
		ID:                         rd.ID,
		Name:                       rd.Name,
		Symbol:                     rd.Symbol,
		Image:                      rd.Image,
		CurrentPrice:               rd.CurrentPrice,
		MarketCap:                  rd.MarketCap,
		MarketCapRank:              rd.MarketCapRank,
		FullyDilutedValuation:      rd.FullyDilutedValuation,
		TotalVolume:                rd.TotalVolume,
		High24h:                    rd.High24h,
		Low24h:                     rd.Low24h,
		PriceChange24h:             rd.PriceChange24h,
		PriceChangePercentage24h:   rd.PriceChangePercentage24h,
		PriceChangePercentage7d:    rd.PriceChangePercentage7d,
		PriceChangePercentage30d:   rd.PriceChangePercentage30d,
		MarketCapChange24h:         rd.MarketCapChange24h,
		MarketCapChangePct24h:      rd.MarketCapChangePct24h,
		CirculatingSupply:          rd.CirculatingSupply,
		TotalSupply:                rd.TotalSupply,
		MaxSupply:                  rd.MaxSupply,
		ATH:                        rd.ATH,
		ATHChangePercentage:        rd.ATHChangePercentage,
		ATHDate:                    rd.ATHDate,
		ATL:                        rd.ATL,
		ATLChangePercentage:        rd.ATLChangePercentage,
		ATLDate:                    rd.ATLDate,
		LastUpdated:                rd.LastUpdated,
		Description:                rd.Description,
		GenesisDate:                rd.GenesisDate,
		SentimentVotesUpPercentage: rd.SentimentVotesUpPercentage,
	}

	for _, p := range rd.PriceHistory {
		if p.Price == nil {
			continue
		}
		date, ok := parseHistoryDate(p.Date)
		if !ok {
			continue
		}
		details.PriceHistory = append(details.PriceHistory, models.PricePoint{
			Date:  date,
			Price: *p.Price,
		})
	}

	return details, nil
}

func parseHistoryDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
