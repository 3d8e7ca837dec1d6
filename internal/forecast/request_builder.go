package forecast

import (
	"strings"

	"github.com/ennes0/CryptoPredictor/internal/models"
)

// Defaults applied when a caller omits optional prediction parameters.
const (
	DefaultLookback    = 60
	DefaultSampleCount = 100
)

const usdSuffix = "-USD"

// horizonByTimeframe maps the UI timeframe labels onto forecast horizons in
// days. The set is closed; anything else is a validation error.
var horizonByTimeframe = map[string]int{
	models.Timeframe1D:  1,
	models.Timeframe7D:  7,
	models.Timeframe30D: 30,
	models.Timeframe90D: 90,
	models.Timeframe1Y:  365,
}

// RequestOptions carries the optional knobs of a prediction request. Zero
// values mean "use the default".
type RequestOptions struct {
	Lookback      int
	SampleCount   int
	TrainNewModel bool
}

// NormalizeSymbol trims the raw symbol, strips internal whitespace,
// uppercases it and appends "-USD" unless the market suffix is already
// present. Normalizing an already normalized symbol is a no-op.
func NormalizeSymbol(raw string) string {
	s := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, usdSuffix) {
		s += usdSuffix
	}
	return s
}

// BuildRequest validates and normalizes user input into a canonical
// PredictionRequest. Deterministic, no I/O.
func BuildRequest(rawSymbol, timeframeLabel string, opts RequestOptions) (*models.PredictionRequest, error) {
	symbol := NormalizeSymbol(rawSymbol)
	if symbol == "" {
		return nil, &ValidationError{Field: "symbol", Message: "must not be empty"}
	}

	horizon, ok := horizonByTimeframe[timeframeLabel]
	if !ok {
		return nil, &ValidationError{Field: "timeframe", Message: "must be one of 1d, 7d, 30d, 90d, 1y"}
	}

	lookback := opts.Lookback
	if lookback == 0 {
		lookback = DefaultLookback
	}
	if lookback < 0 {
		return nil, &ValidationError{Field: "lookback", Message: "must be positive"}
	}

	samples := opts.SampleCount
	if samples == 0 {
		samples = DefaultSampleCount
	}
	if samples < 0 {
		return nil, &ValidationError{Field: "mc_samples", Message: "must be positive"}
	}

	return &models.PredictionRequest{
		Symbol:        symbol,
		Lookback:      lookback,
		HorizonDays:   horizon,
		SampleCount:   samples,
		TrainNewModel: opts.TrainNewModel,
	}, nil
}
