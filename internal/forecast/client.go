package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ennes0/CryptoPredictor/internal/config"
	"github.com/ennes0/CryptoPredictor/internal/models"
)

// Client is the HTTP client for the external forecasting service. It is
// stateless; request supersession ("latest request wins") is tracked by the
// caller, not here.
type Client struct {
	HTTPClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a forecasting service client from config.
func NewClient(cfg *config.ForecastConfig, logger *logrus.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(cfg.ServiceURL, "/"),
		logger:  logger,
	}
}

// Predict issues a single prediction call and normalizes the response.
// One attempt, no retries.
func (c *Client) Predict(ctx context.Context, req *models.PredictionRequest) (*models.ForecastResult, error) {
	body, status, err := c.post(ctx, "/predict", req)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, serviceErrorFromBody(status, body)
	}

	var resp predictResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "predict", Err: fmt.Errorf("decode response: %w", err)}
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "prediction failed"
		}
		return nil, &ServiceError{Message: msg}
	}

	return c.buildResult(req, &resp)
}

func (c *Client) buildResult(req *models.PredictionRequest, resp *predictResponse) (*models.ForecastResult, error) {
	if resp.LastClose == nil {
		return nil, &SchemaError{Message: "last_close is missing"}
	}
	if len(resp.Predictions) == 0 {
		return nil, &SchemaError{Message: "predictions are missing or empty"}
	}

	result := &models.ForecastResult{
		Symbol:        resp.Coin,
		LastClose:     *resp.LastClose,
		Points:        make([]models.ForecastPoint, 0, len(resp.Predictions)),
		DateGenerated: resp.DateGenerated,
	}
	if result.Symbol == "" {
		result.Symbol = req.Symbol
	}

	for i, p := range resp.Predictions {
		if p.PredictedPrice == nil {
			return nil, &SchemaError{Message: fmt.Sprintf("prediction %d lacks Predicted_Price", i)}
		}
		point := models.ForecastPoint{
			Date:           p.Date,
			PredictedPrice: *p.PredictedPrice,
		}
		if p.UpperBound != nil {
			point.UpperBound = *p.UpperBound
		}
		if p.LowerBound != nil {
			point.LowerBound = *p.LowerBound
		}
		if p.DailyChange != nil {
			point.DailyChange = *p.DailyChange
		}
		if point.LowerBound.GreaterThan(point.PredictedPrice) || point.PredictedPrice.GreaterThan(point.UpperBound) {
			c.logger.WithFields(logrus.Fields{
				"symbol": req.Symbol,
				"index":  i,
			}).Warn("Forecast point outside its confidence bounds")
		}
		result.Points = append(result.Points, point)
	}

	if len(result.Points) != req.HorizonDays {
		c.logger.WithFields(logrus.Fields{
			"symbol":   req.Symbol,
			"expected": req.HorizonDays,
			"got":      len(result.Points),
		}).Warn("Forecast length does not match requested horizon")
	}

	for _, rp := range resp.RecentPrices {
		if rp.ActualPrice == nil {
			continue
		}
		result.RecentPrices = append(result.RecentPrices, models.RecentPrice{
			Date:        rp.Date,
			ActualPrice: *rp.ActualPrice,
		})
	}

	return result, nil
}

// CryptoDetails fetches the raw details payload for a coin. The body is
// returned as-is for the normalizer to map; only the transport and the
// success envelope are checked here.
func (c *Client) CryptoDetails(ctx context.Context, symbol string) (json.RawMessage, error) {
	body, status, err := c.post(ctx, "/crypto-details", detailsRequest{Symbol: symbol})
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, serviceErrorFromBody(status, body)
	}

	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &TransportError{Op: "crypto-details", Err: fmt.Errorf("decode response: %w", err)}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "crypto details lookup failed"
		}
		return nil, &ServiceError{Message: msg}
	}

	return json.RawMessage(body), nil
}

// Coins retrieves the supported coin list used for search suggestions.
func (c *Client) Coins(ctx context.Context) ([]models.Coin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/coins", nil)
	if err != nil {
		return nil, &TransportError{Op: "coins", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	body, status, err := c.do(req, "coins")
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, serviceErrorFromBody(status, body)
	}

	var resp coinsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "coins", Err: fmt.Errorf("decode response: %w", err)}
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "coin list lookup failed"
		}
		return nil, &ServiceError{Message: msg}
	}

	return resp.Coins, nil
}

// Health checks whether the forecasting service is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &TransportError{Op: "health", Err: err}
	}

	body, status, err := c.do(req, "health")
	if err != nil {
		return err
	}
	if status >= 400 {
		return serviceErrorFromBody(status, body)
	}
	return nil
}

// BaseURL returns the configured service URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, int, error) {
	op := strings.TrimPrefix(path, "/")

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, op)
}

func (c *Client) do(req *http.Request, op string) ([]byte, int, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Error closing response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: fmt.Errorf("read response body: %w", err)}
	}

	return body, resp.StatusCode, nil
}

func serviceErrorFromBody(status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.message() != "" {
		return &ServiceError{StatusCode: status, Message: eb.message()}
	}
	return &ServiceError{StatusCode: status, Message: http.StatusText(status)}
}
