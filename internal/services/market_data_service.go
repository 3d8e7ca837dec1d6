package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ennes0/CryptoPredictor/internal/cache"
	"github.com/ennes0/CryptoPredictor/internal/config"
	"github.com/ennes0/CryptoPredictor/internal/forecast"
	"github.com/ennes0/CryptoPredictor/internal/models"
)

// MarketDataFetcher is the slice of the forecast client the market data
// service needs.
type MarketDataFetcher interface {
	CryptoDetails(ctx context.Context, symbol string) (json.RawMessage, error)
	Coins(ctx context.Context) ([]models.Coin, error)
}

// MarketDataService serves crypto details and the supported coin list,
// backed by the upstream forecast service with a Redis read-through cache.
type MarketDataService struct {
	fetcher    MarketDataFetcher
	cache      *cache.RedisMarketCache
	logger     *logrus.Logger
	detailsTTL time.Duration
	coinsTTL   time.Duration
}

func NewMarketDataService(fetcher MarketDataFetcher, marketCache *cache.RedisMarketCache, cfg config.CacheConfig, logger *logrus.Logger) *MarketDataService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &MarketDataService{
		fetcher:    fetcher,
		cache:      marketCache,
		logger:     logger,
		detailsTTL: time.Duration(cfg.DetailsTTL) * time.Second,
		coinsTTL:   time.Duration(cfg.CoinsTTL) * time.Second,
	}
}

// GetOverview fetches, normalizes and enriches the details for one coin.
// Trend percentage and history factor are computed here from the price
// history rather than left to every consumer.
func (s *MarketDataService) GetOverview(ctx context.Context, rawSymbol string) (*models.CryptoOverview, error) {
	symbol := forecast.NormalizeSymbol(rawSymbol)
	if symbol == "" {
		return nil, &forecast.ValidationError{Field: "symbol", Message: "must not be empty"}
	}

	cacheKey := "details:" + symbol
	if s.cache != nil {
		var cached models.CryptoOverview
		if s.cache.Get(ctx, cacheKey, &cached) {
			return &cached, nil
		}
	}

	raw, err := s.fetcher.CryptoDetails(ctx, symbol)
	if err != nil {
		return nil, err
	}

	details, err := NormalizeDetails(raw)
	if err != nil {
		return nil, err
	}

	overview := &models.CryptoOverview{
		Details: details,
		Trend: models.TrendSummary{
			TrendPct:      TrendPercentage(details.PriceHistory),
			HistoryFactor: HistoryFactor(details.PriceHistory),
		},
		Momentum: Momentum(details.PriceHistory),
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, overview, s.detailsTTL)
	}

	return overview, nil
}

// GetCoins returns the supported coin list for search suggestions.
func (s *MarketDataService) GetCoins(ctx context.Context) ([]models.Coin, error) {
	const cacheKey = "coins"
	if s.cache != nil {
		var cached []models.Coin
		if s.cache.Get(ctx, cacheKey, &cached) {
			return cached, nil
		}
	}

	coins, err := s.fetcher.Coins(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(coins) > 0 {
		s.cache.Set(ctx, cacheKey, coins, s.coinsTTL)
	}

	return coins, nil
}
