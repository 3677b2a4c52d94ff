package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"inventory-release/internal/api/models"
	"inventory-release/internal/config"
	"inventory-release/internal/model"
	"inventory-release/internal/policy"
	"inventory-release/pkg/logger"
)

// Presets holds the directory that policy presets are resolved from.
type Presets struct {
	Dir string
}

// Resolve merges a request policy onto its preset (if any) and returns model params
// with defaults applied. Validation is left to the consumer.
func (p Presets) Resolve(req models.PolicyConfig) (model.PolicyParams, error) {
	cfg := config.PolicyConfig{
		Q:           req.Q,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		A:           req.A,
		B:           req.B,
		Delta:       req.Delta,
		HoldingCost: req.HoldingCost,
	}
	if req.Preset != "" {
		// Presets are plain names; anything path-like is rejected.
		if filepath.Base(req.Preset) != req.Preset {
			return model.PolicyParams{}, errors.New("preset must be a bare name")
		}
		path := filepath.Join(p.Dir, req.Preset+".yaml")
		if _, err := os.Stat(path); err != nil {
			return model.PolicyParams{}, errors.New("unknown preset " + req.Preset)
		}
		loaded, err := config.LoadUnchecked(path)
		if err != nil {
			return model.PolicyParams{}, err
		}
		cfg = config.MergePolicy(loaded.Policy, cfg)
	}
	return cfg.ToModelParams().WithDefaults(), nil
}

func fromModelPolicy(p config.PolicyConfig) models.PolicyConfig {
	return models.PolicyConfig{
		Q:           p.Q,
		MinPrice:    p.MinPrice,
		MaxPrice:    p.MaxPrice,
		A:           p.A,
		B:           p.B,
		Delta:       p.Delta,
		HoldingCost: p.HoldingCost,
	}
}

// errorCode maps domain errors onto API error codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, policy.ErrInvalidPrice):
		return "INVALID_PRICE"
	case errors.Is(err, model.ErrInvalidStock),
		errors.Is(err, model.ErrInvalidMinPrice),
		errors.Is(err, model.ErrInvalidPriceBounds),
		errors.Is(err, model.ErrInvalidDelta),
		errors.Is(err, model.ErrInvalidHolding),
		errors.Is(err, model.ErrInvalidDemandSlope):
		return "INVALID_CONFIG"
	default:
		return "INVALID_REQUEST"
	}
}

func respondError(c *gin.Context, status int, code string, err error) {
	if status >= http.StatusInternalServerError {
		logger.Log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func badRequest(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, errorCode(err), err)
}
