package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-release/internal/api/models"
	"inventory-release/internal/policy"
)

// PolicyHandler serves single decisions and offline plans
type PolicyHandler struct {
	presets Presets
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(presets Presets) *PolicyHandler {
	return &PolicyHandler{presets: presets}
}

// Decide handles POST /api/v1/decide
func (h *PolicyHandler) Decide(c *gin.Context) {
	var req models.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	params, err := h.presets.Resolve(req.Policy)
	if err != nil {
		badRequest(c, err)
		return
	}
	eng, err := policy.NewEngine(params)
	if err != nil {
		badRequest(c, err)
		return
	}

	period := req.Period
	if period < 1 {
		period = 1
	}
	var d policy.Decision
	if req.Remaining != nil {
		d, err = eng.DecideRemaining(req.Price, *req.Remaining, period, req.IsLast)
	} else {
		d, err = eng.Decide(policy.Request{
			Price:       req.Price,
			Accumulated: req.Accumulated,
			Period:      period,
			IsLast:      req.IsLast,
		})
	}
	if err != nil {
		badRequest(c, err)
		return
	}

	resp := models.DecideResponse{
		Quantity:  d.Quantity,
		Stage:     string(d.Stage),
		Trial:     d.Trial,
		Threshold: d.Threshold,
	}
	if d.Solver != nil {
		resp.Solver = &models.SolverStatus{
			Status:     string(d.Solver.Status),
			X:          d.Solver.X,
			Iterations: d.Solver.Iterations,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Offline handles POST /api/v1/offline
func (h *PolicyHandler) Offline(c *gin.Context) {
	var req models.OfflineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	params, err := h.presets.Resolve(req.Policy)
	if err != nil {
		badRequest(c, err)
		return
	}
	res, err := policy.SolveOffline(params.Q, req.Prices, params.A, params.B, params.Delta)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OfflineResponse{
		ShadowPrice: res.ShadowPrice,
		Sales:       res.Sales,
		TotalSold:   res.TotalSold,
		Revenue:     res.Revenue,
		Residual:    res.Residual,
		Feasible:    res.Feasible,
	})
}
