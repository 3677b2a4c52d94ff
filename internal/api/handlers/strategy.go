package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-release/internal/api/models"
	"inventory-release/internal/strategy"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	desc := strategy.Describe()
	strategies := make([]models.StrategyInfo, 0, len(strategy.Names))
	for _, name := range strategy.Names {
		strategies = append(strategies, models.StrategyInfo{Name: name, Description: desc[name]})
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
