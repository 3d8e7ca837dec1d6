package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ennes0/CryptoPredictor/internal/forecast"
	"github.com/ennes0/CryptoPredictor/internal/models"
)

// ErrSuperseded marks a prediction whose response arrived after a newer
// request had already been issued. Late arrivals are discarded so a slow,
// stale response never overwrites fresher display state.
var ErrSuperseded = errors.New("prediction superseded by a newer request")

// defaultInvestmentAmount matches the dashboard's preset investment.
var defaultInvestmentAmount = decimal.NewFromInt(1000)

// Forecaster is the slice of the forecast client the prediction service
// needs.
type Forecaster interface {
	Predict(ctx context.Context, req *models.PredictionRequest) (*models.ForecastResult, error)
}

// PredictQuery is the user-facing form of a prediction request, before
// validation and normalization.
type PredictQuery struct {
	Symbol           string
	Timeframe        string
	Lookback         int
	SampleCount      int
	TrainNewModel    bool
	InvestmentAmount decimal.Decimal
}

// PredictionService runs the full prediction cycle: build the canonical
// request, call the forecasting service, derive metrics and signals. It
// keeps at most one current outcome and orders in-flight calls with a
// generation counter.
type PredictionService struct {
	forecaster Forecaster
	logger     *logrus.Logger

	generation atomic.Uint64

	mu     sync.RWMutex
	latest *models.PredictionOutcome
}

func NewPredictionService(forecaster Forecaster, logger *logrus.Logger) *PredictionService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PredictionService{
		forecaster: forecaster,
		logger:     logger,
	}
}

// Predict executes one prediction cycle. If a newer request is issued while
// this one is in flight, the stale result is discarded and ErrSuperseded is
// returned.
func (s *PredictionService) Predict(ctx context.Context, q PredictQuery) (*models.PredictionOutcome, error) {
	req, err := forecast.BuildRequest(q.Symbol, q.Timeframe, forecast.RequestOptions{
		Lookback:      q.Lookback,
		SampleCount:   q.SampleCount,
		TrainNewModel: q.TrainNewModel,
	})
	if err != nil {
		return nil, err
	}

	gen := s.generation.Add(1)

	s.logger.WithFields(logrus.Fields{
		"symbol":     req.Symbol,
		"horizon":    req.HorizonDays,
		"generation": gen,
	}).Info("Requesting prediction")

	result, err := s.forecaster.Predict(ctx, req)
	if err != nil {
		return nil, err
	}

	if gen != s.generation.Load() {
		s.logger.WithFields(logrus.Fields{
			"symbol":     req.Symbol,
			"generation": gen,
		}).Debug("Discarding stale prediction result")
		return nil, ErrSuperseded
	}

	amount := q.InvestmentAmount
	if amount.IsZero() {
		amount = defaultInvestmentAmount
	}

	metrics := DeriveMetrics(result, amount)

	outcome := &models.PredictionOutcome{
		RequestID:  uuid.NewString(),
		Generation: gen,
		Request:    *req,
		Forecast:   result,
		Metrics:    metrics,
		Signals:    GenerateSignals(metrics.PredictedChangePct),
		CreatedAt:  time.Now(),
	}

	s.store(outcome)
	return outcome, nil
}

// Latest returns the most recent completed outcome, or nil when none exists.
func (s *PredictionService) Latest() *models.PredictionOutcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *PredictionService) store(outcome *models.PredictionOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest != nil && s.latest.Generation > outcome.Generation {
		return
	}
	s.latest = outcome
}
