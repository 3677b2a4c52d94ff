package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-release/internal/analysis"
	"inventory-release/internal/api/models"
	"inventory-release/internal/backtest"
	"inventory-release/internal/model"
	"inventory-release/internal/store"
	"inventory-release/internal/strategy"
	"inventory-release/pkg/logger"
)

const storeTimeout = 5 * time.Second

// SimulateHandler handles simulation-related requests
type SimulateHandler struct {
	presets Presets
	runs    store.RunStore
	engine  *backtest.Engine
}

// NewSimulateHandler creates a new simulation handler
func NewSimulateHandler(presets Presets, runs store.RunStore) *SimulateHandler {
	return &SimulateHandler{presets: presets, runs: runs, engine: backtest.New()}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulateHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	params, err := h.presets.Resolve(req.Policy)
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := params.Validate(); err != nil {
		badRequest(c, err)
		return
	}
	series := model.PriceSeries{Name: req.Name, Prices: req.Prices}
	if err := series.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PRICE", err)
		return
	}

	strat, err := strategy.New(req.Strategy.Name, series.Prices, params)
	if err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.engine.Run(series, params, strat)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err)
		return
	}

	resp := models.SimulateResponse{
		Status:  "completed",
		Summary: buildSummary(series.Name, result),
	}
	if req.Options.IncludeLedger {
		resp.Ledger = result.Ledger
	}

	if h.runs != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		id, err := h.runs.Save(ctx, &store.Run{Scenario: series.Name, Result: result})
		if err != nil {
			// The run itself succeeded; only retrieval by ID is lost.
			logger.Log.Warn().Err(err).Msg("failed to store run")
		} else {
			resp.ID = id
		}
	}

	logger.Log.Info().
		Str("run_id", resp.ID).
		Str("strategy", result.Strategy).
		Int("periods", len(series.Prices)).
		Str("net_profit", resp.Summary.NetProfit).
		Msg("simulation completed")
	c.JSON(http.StatusOK, resp)
}

// GetLedger handles GET /api/v1/runs/:id/ledger
func (h *SimulateHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	if h.runs == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", errors.New("run storage is disabled"))
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	run, ok, err := h.runs.Get(ctx, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err)
		return
	}
	if !ok || run.Result == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", errors.New("run "+id+" not found or expired"))
		return
	}
	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:      run.ID,
		Status:  "completed",
		Summary: buildSummary(run.Scenario, run.Result),
		Ledger:  run.Result.Ledger,
	})
}

// Compare handles POST /api/v1/simulate/compare
func (h *SimulateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	params, err := h.presets.Resolve(req.Policy)
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := params.Validate(); err != nil {
		badRequest(c, err)
		return
	}
	series := model.PriceSeries{Name: req.Name, Prices: req.Prices}
	if err := series.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PRICE", err)
		return
	}

	names := req.Strategies
	if len(names) == 0 {
		names = strategy.Names
	}
	results := make([]*backtest.Result, 0, len(names))
	var shadow float64
	for _, name := range names {
		strat, err := strategy.New(name, series.Prices, params)
		if err != nil {
			badRequest(c, err)
			return
		}
		if orc, ok := strat.(*strategy.OracleStrategy); ok {
			shadow = orc.Result().ShadowPrice
		}
		result, err := h.engine.Run(series, params, strat)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err)
			return
		}
		results = append(results, result)
	}

	ranked := analysis.RankByRevenue(results, "offline")
	out := make([]models.ComparisonResult, len(ranked))
	for i, r := range ranked {
		out[i] = models.ComparisonResult{
			Rank:      r.Rank,
			Strategy:  r.Strategy,
			Revenue:   r.Revenue,
			NetProfit: r.NetProfit,
			Released:  r.Released,
			Ratio:     r.Ratio,
		}
	}
	c.JSON(http.StatusOK, models.CompareResponse{
		Scenario:    series.Name,
		ShadowPrice: shadow,
		Rankings:    out,
	})
}

func buildSummary(scenario string, result *backtest.Result) models.SimulateSummary {
	return models.SimulateSummary{
		Scenario:        scenario,
		Strategy:        result.Strategy,
		Periods:         len(result.Ledger),
		TotalReleased:   result.TotalReleased,
		Remaining:       result.Remaining,
		TotalRevenue:    result.TotalRevenue.StringFixed(2),
		TotalHoldingFee: result.TotalHoldingFee.StringFixed(2),
		NetProfit:       result.NetProfit.StringFixed(2),
	}
}
