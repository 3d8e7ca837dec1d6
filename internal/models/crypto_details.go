package models

import "github.com/shopspring/decimal"

// CryptoDetails is the normalized market profile of a coin. Every field that
// the upstream aggregator may omit is a pointer: absent stays nil, never
// zero, because 0 is a materially different value for fields like market cap
// or ATH.
type CryptoDetails struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Image  *string `json:"image,omitempty"`

	CurrentPrice          *decimal.Decimal `json:"current_price,omitempty"`
	MarketCap             *decimal.Decimal `json:"market_cap,omitempty"`
	MarketCapRank         *int             `json:"market_cap_rank,omitempty"`
	FullyDilutedValuation *decimal.Decimal `json:"fully_diluted_valuation,omitempty"`
	TotalVolume           *decimal.Decimal `json:"total_volume,omitempty"`
	High24h               *decimal.Decimal `json:"high_24h,omitempty"`
	Low24h                *decimal.Decimal `json:"low_24h,omitempty"`

	PriceChange24h             *decimal.Decimal `json:"price_change_24h,omitempty"`
	PriceChangePercentage24h   *decimal.Decimal `json:"price_change_percentage_24h,omitempty"`
	PriceChangePercentage7d    *decimal.Decimal `json:"price_change_percentage_7d,omitempty"`
	PriceChangePercentage30d   *decimal.Decimal `json:"price_change_percentage_30d,omitempty"`
	MarketCapChange24h         *decimal.Decimal `json:"market_cap_change_24h,omitempty"`
	MarketCapChangePct24h      *decimal.Decimal `json:"market_cap_change_percentage_24h,omitempty"`
	CirculatingSupply          *decimal.Decimal `json:"circulating_supply,omitempty"`
	TotalSupply                *decimal.Decimal `json:"total_supply,omitempty"`
	MaxSupply                  *decimal.Decimal `json:"max_supply,omitempty"`
	ATH                        *decimal.Decimal `json:"ath,omitempty"`
	ATHChangePercentage        *decimal.Decimal `json:"ath_change_percentage,omitempty"`
	ATHDate                    *string          `json:"ath_date,omitempty"`
	ATL                        *decimal.Decimal `json:"atl,omitempty"`
	ATLChangePercentage        *decimal.Decimal `json:"atl_change_percentage,omitempty"`
	ATLDate                    *string          `json:"atl_date,omitempty"`
	LastUpdated                *string          `json:"last_updated,omitempty"`
	Description                *string          `json:"description,omitempty"`
	GenesisDate                *string          `json:"genesis_date,omitempty"`
	SentimentVotesUpPercentage *decimal.Decimal `json:"sentiment_votes_up_percentage,omitempty"`

	PriceHistory HistoricalSeries `json:"price_history,omitempty"`
}

// Coin is one entry of the supported-coin list used to populate search
// suggestions.
type Coin struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Symbol    string           `json:"symbol"`
	Change24h *decimal.Decimal `json:"change_24h,omitempty"`
	Image     *string          `json:"image,omitempty"`
}
