package models

// CryptoOverview is the API shape for a details lookup: the normalized
// record plus the trend and momentum figures computed from its price
// history.
type CryptoOverview struct {
	Details  *CryptoDetails  `json:"details"`
	Trend    TrendSummary    `json:"trend"`
	Momentum MomentumSummary `json:"momentum"`
}
