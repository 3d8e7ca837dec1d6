package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ennes0/CryptoPredictor/internal/config"
	"github.com/ennes0/CryptoPredictor/internal/forecast"
	"github.com/ennes0/CryptoPredictor/internal/services"
)

// upstreamStub fakes the external forecasting service.
func upstreamStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/predict", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			assert.Equal(t, "BTC-USD", req["coin_symbol"])
		}

		_, _ = w.Write([]byte(`{
			"success": true,
			"coin": "BTC-USD",
			"last_close": 100,
			"predictions": [
				{"Predicted_Price": 101, "Upper_Bound": 104, "Lower_Bound": 99},
				{"Predicted_Price": 103, "Upper_Bound": 107, "Lower_Bound": 100},
				{"Predicted_Price": 104, "Upper_Bound": 109, "Lower_Bound": 100},
				{"Predicted_Price": 105, "Upper_Bound": 111, "Lower_Bound": 101},
				{"Predicted_Price": 107, "Upper_Bound": 114, "Lower_Bound": 102},
				{"Predicted_Price": 109, "Upper_Bound": 117, "Lower_Bound": 103},
				{"Predicted_Price": 110, "Upper_Bound": 120, "Lower_Bound": 100}
			]
		}`))
	})

	mux.HandleFunc("/crypto-details", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"id": "bitcoin",
			"name": "Bitcoin",
			"symbol": "BTC",
			"current_price": 65000,
			"market_cap": null,
			"price_history": [
				{"date": "2024-05-01", "price": 60000},
				{"date": "2024-05-02", "price": 66000}
			]
		}`))
	})

	mux.HandleFunc("/coins", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "coins": [{"id": "bitcoin", "name": "Bitcoin", "symbol": "BTC"}]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := upstreamStub(t)
	client := forecast.NewClient(&config.ForecastConfig{ServiceURL: upstream.URL, Timeout: 5}, nil)
	predictionService := services.NewPredictionService(client, nil)
	marketService := services.NewMarketDataService(client, nil, config.CacheConfig{}, nil)

	router := gin.New()
	SetupRoutes(router, nil, client, predictionService, marketService, []string{"http://localhost:3000"})
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Services.Forecast)
}

func TestCreatePrediction(t *testing.T) {
	router := newTestRouter(t)

	body := `{"symbol": "btc", "timeframe": "7d", "investment_amount": 1000}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Request struct {
			Symbol      string `json:"coin_symbol"`
			HorizonDays int    `json:"future_days"`
			Lookback    int    `json:"lookback"`
			SampleCount int    `json:"mc_samples"`
		} `json:"request"`
		Metrics struct {
			PredictedChangePct string `json:"predicted_change_pct"`
			Sentiment          string `json:"sentiment"`
			OptimisticPrice    string `json:"optimistic_price"`
		} `json:"metrics"`
		Signals []struct {
			Type string `json:"type"`
		} `json:"signals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "BTC-USD", resp.Request.Symbol)
	assert.Equal(t, 7, resp.Request.HorizonDays)
	assert.Equal(t, 60, resp.Request.Lookback)
	assert.Equal(t, 100, resp.Request.SampleCount)
	assert.Equal(t, "10", resp.Metrics.PredictedChangePct)
	assert.Equal(t, "Bullish", resp.Metrics.Sentiment)
	assert.Equal(t, "120", resp.Metrics.OptimisticPrice)
	require.Len(t, resp.Signals, 1)
	assert.Equal(t, "BUY", resp.Signals[0].Type)
}

func TestCreatePredictionValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing symbol", body: `{"timeframe": "7d"}`},
		{name: "bad timeframe", body: `{"symbol": "btc", "timeframe": "fortnight"}`},
		{name: "not json", body: `symbol=btc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetLatestPredictionEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/latest", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCryptoDetailsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/crypto-details", strings.NewReader(`{"coin_symbol": "btc"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Details struct {
			ID        string           `json:"id"`
			MarketCap *json.RawMessage `json:"market_cap"`
		} `json:"details"`
		Trend struct {
			TrendPct string `json:"trend_pct"`
		} `json:"trend"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "bitcoin", resp.Details.ID)
	assert.Nil(t, resp.Details.MarketCap, "null market cap must not serialize as 0")
	assert.Equal(t, "10", resp.Trend.TrendPct)
}

func TestCoinsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coins", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Coins []struct {
			ID string `json:"id"`
		} `json:"coins"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Coins, 1)
	assert.Equal(t, "bitcoin", resp.Coins[0].ID)
}

func TestUpstreamErrorsMapToBadGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "model unavailable"}`))
	}))
	t.Cleanup(upstream.Close)

	client := forecast.NewClient(&config.ForecastConfig{ServiceURL: upstream.URL, Timeout: 5}, nil)
	predictionService := services.NewPredictionService(client, nil)
	marketService := services.NewMarketDataService(client, nil, config.CacheConfig{}, nil)

	router := gin.New()
	SetupRoutes(router, nil, client, predictionService, marketService, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(`{"symbol": "btc"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "model unavailable")
}

func TestCORSPreflightAllowedOrigin(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/coins", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coins", nil)
	req.Header.Set("Origin", "http://evil.example")
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
