package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ennes0/CryptoPredictor/internal/services"
)

type MarketHandler struct {
	service *services.MarketDataService
}

func NewMarketHandler(service *services.MarketDataService) *MarketHandler {
	return &MarketHandler{service: service}
}

type detailsRequestBody struct {
	Symbol string `json:"coin_symbol" binding:"required"`
}

// GetCryptoDetails returns the normalized market profile of a coin together
// with its trend and momentum figures.
func (h *MarketHandler) GetCryptoDetails(c *gin.Context) {
	var body detailsRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coin_symbol is required"})
		return
	}

	overview, err := h.service.GetOverview(c.Request.Context(), body.Symbol)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetCoins returns the supported coin list for search suggestions.
func (h *MarketHandler) GetCoins(c *gin.Context) {
	coins, err := h.service.GetCoins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coins":     coins,
		"count":     len(coins),
		"timestamp": time.Now(),
	})
}
