package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ennes0/CryptoPredictor/internal/forecast"
	"github.com/ennes0/CryptoPredictor/internal/models"
	"github.com/ennes0/CryptoPredictor/internal/services"
)

type PredictionHandler struct {
	service *services.PredictionService
}

func NewPredictionHandler(service *services.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// PredictRequestBody is the API form of a prediction request.
type PredictRequestBody struct {
	Symbol           string          `json:"symbol" binding:"required"`
	Timeframe        string          `json:"timeframe"`
	Lookback         int             `json:"lookback"`
	SampleCount      int             `json:"mc_samples"`
	TrainNewModel    bool            `json:"train_new_model"`
	InvestmentAmount decimal.Decimal `json:"investment_amount"`
}

// CreatePrediction runs a full prediction cycle for the requested coin.
func (h *PredictionHandler) CreatePrediction(c *gin.Context) {
	var body PredictRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	if body.Timeframe == "" {
		body.Timeframe = models.Timeframe7D
	}

	outcome, err := h.service.Predict(c.Request.Context(), services.PredictQuery{
		Symbol:           body.Symbol,
		Timeframe:        body.Timeframe,
		Lookback:         body.Lookback,
		SampleCount:      body.SampleCount,
		TrainNewModel:    body.TrainNewModel,
		InvestmentAmount: body.InvestmentAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// GetLatestPrediction returns the most recent completed outcome.
func (h *PredictionHandler) GetLatestPrediction(c *gin.Context) {
	outcome := h.service.Latest()
	if outcome == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no prediction has completed yet"})
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// respondError maps the forecast error taxonomy onto HTTP statuses. The core
// never formats user-facing messages; that happens here.
func respondError(c *gin.Context, err error) {
	var validationErr *forecast.ValidationError
	var serviceErr *forecast.ServiceError
	var schemaErr *forecast.SchemaError
	var transportErr *forecast.TransportError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, services.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &serviceErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": serviceErr.Message})
	case errors.As(err, &schemaErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": schemaErr.Error()})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "forecast service is unreachable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
