package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain symbol", raw: "btc", want: "BTC-USD"},
		{name: "already suffixed", raw: "BTC-USD", want: "BTC-USD"},
		{name: "lowercase suffixed", raw: "eth-usd", want: "ETH-USD"},
		{name: "surrounding whitespace", raw: "  sol  ", want: "SOL-USD"},
		{name: "internal whitespace", raw: "d o g e", want: "DOGE-USD"},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSymbol(tt.raw))
		})
	}
}

func TestNormalizeSymbolIdempotent(t *testing.T) {
	for _, raw := range []string{"btc", "ETH-usd", " ada ", "XRP-USD"} {
		once := NormalizeSymbol(raw)
		assert.Equal(t, once, NormalizeSymbol(once), "re-normalizing %q must be a no-op", raw)
	}
}

func TestBuildRequestDefaults(t *testing.T) {
	req, err := BuildRequest("btc", "7d", RequestOptions{})
	require.NoError(t, err)

	assert.Equal(t, "BTC-USD", req.Symbol)
	assert.Equal(t, 7, req.HorizonDays)
	assert.Equal(t, 60, req.Lookback)
	assert.Equal(t, 100, req.SampleCount)
	assert.False(t, req.TrainNewModel)
}

func TestBuildRequestHorizonMapping(t *testing.T) {
	wantByLabel := map[string]int{
		"1d":  1,
		"7d":  7,
		"30d": 30,
		"90d": 90,
		"1y":  365,
	}

	for label, want := range wantByLabel {
		t.Run(label, func(t *testing.T) {
			req, err := BuildRequest("btc", label, RequestOptions{})
			require.NoError(t, err)
			assert.Equal(t, want, req.HorizonDays)
		})
	}
}

func TestBuildRequestErrors(t *testing.T) {
	tests := []struct {
		name      string
		symbol    string
		timeframe string
	}{
		{name: "empty symbol", symbol: "", timeframe: "7d"},
		{name: "whitespace symbol", symbol: "   ", timeframe: "7d"},
		{name: "unknown timeframe", symbol: "btc", timeframe: "2w"},
		{name: "empty timeframe", symbol: "btc", timeframe: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(tt.symbol, tt.timeframe, RequestOptions{})
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestBuildRequestCustomOptions(t *testing.T) {
	req, err := BuildRequest("eth", "30d", RequestOptions{
		Lookback:      90,
		SampleCount:   250,
		TrainNewModel: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 90, req.Lookback)
	assert.Equal(t, 250, req.SampleCount)
	assert.True(t, req.TrainNewModel)
}

func TestBuildRequestNegativeOptions(t *testing.T) {
	_, err := BuildRequest("btc", "7d", RequestOptions{Lookback: -1})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = BuildRequest("btc", "7d", RequestOptions{SampleCount: -10})
	assert.ErrorAs(t, err, &validationErr)
}
