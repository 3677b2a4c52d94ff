package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"inventory-release/internal/api/handlers"
	"inventory-release/internal/api/middleware"
	"inventory-release/internal/store"
)

// Options wires the router's dependencies.
type Options struct {
	ScenarioDir    string
	AllowedOrigins []string
	Runs           store.RunStore
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	presets := handlers.Presets{Dir: filepath.Join(opts.ScenarioDir, "presets")}
	policyHandler := handlers.NewPolicyHandler(presets)
	simulateHandler := handlers.NewSimulateHandler(presets, opts.Runs)
	strategyHandler := handlers.NewStrategyHandler()
	scenarioHandler := handlers.NewScenarioHandler(opts.ScenarioDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/decide", policyHandler.Decide)
		api.POST("/offline", policyHandler.Offline)

		api.POST("/simulate", simulateHandler.Simulate)
		api.POST("/simulate/compare", simulateHandler.Compare)
		api.GET("/runs/:id/ledger", simulateHandler.GetLedger)

		api.GET("/strategies", strategyHandler.ListStrategies)
		api.GET("/scenarios", scenarioHandler.ListScenarios)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
