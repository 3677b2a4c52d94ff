package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-release/internal/api/models"
	"inventory-release/internal/config"
	"inventory-release/pkg/logger"
)

// ScenarioHandler lists the scenario YAML files shipped with the server
type ScenarioHandler struct {
	scenarioDir string
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(dir string) *ScenarioHandler {
	// Convert to absolute path for reliability
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}
	logger.Log.Info().Str("dir", dir).Msg("scenario directory")
	return &ScenarioHandler{scenarioDir: dir}
}

// Dir returns the scenario directory path
func (h *ScenarioHandler) Dir() string {
	return h.scenarioDir
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		logger.Log.Warn().Err(err).Str("dir", h.scenarioDir).Msg("failed to read scenario directory")
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.scenarioDir, entry.Name())
		info, err := loadScenarioInfo(path, entry.Name())
		if err != nil {
			logger.Log.Warn().Err(err).Str("file", path).Msg("skipping invalid scenario")
			continue
		}
		scenarios = append(scenarios, *info)
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

func loadScenarioInfo(path, filename string) (*models.ScenarioInfo, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSuffix(filename, ".yaml")
	name := cfg.Name
	if name == "" || name == filename {
		name = id
	}
	return &models.ScenarioInfo{
		ID:       id,
		Name:     name,
		File:     path,
		Periods:  len(cfg.Prices),
		Strategy: cfg.Strategy.Name,
		Policy:   fromModelPolicy(cfg.Policy),
	}, nil
}
