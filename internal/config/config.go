package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"inventory-release/internal/data"
	"inventory-release/internal/model"
)

// Config is the on-disk scenario configuration shape (YAML).
type Config struct {
	// Optional: load policy parameters from a separate YAML (e.g. examples/scenarios/presets/*.yaml).
	// If both PolicyFile and Policy are provided, Policy overrides PolicyFile.
	PolicyFile string       `yaml:"policy_file"`
	Policy     PolicyConfig `yaml:"policy"`

	// Prices are inline; PricesFile is loaded when Prices is empty.
	Name       string    `yaml:"name"`
	Prices     []float64 `yaml:"prices"`
	PricesFile string    `yaml:"prices_file"`

	Strategy StrategyConfig `yaml:"strategy"`
}

type PolicyConfig struct {
	Name        string  `yaml:"name" json:"name,omitempty"`
	Q           float64 `yaml:"q" json:"q"`
	MinPrice    float64 `yaml:"min_price" json:"min_price"`
	MaxPrice    float64 `yaml:"max_price" json:"max_price"`
	A           float64 `yaml:"a" json:"a"`
	B           float64 `yaml:"b" json:"b"`
	Delta       float64 `yaml:"delta" json:"delta,omitempty"`
	HoldingCost float64 `yaml:"holding_cost" json:"holding_cost,omitempty"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Policy.Delta == 0 {
		c.Policy.Delta = model.DefaultDelta
	}
	if c.Strategy.Name == "" {
		c.Strategy.Name = "alg-ir"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.PolicyFile != "" {
		loaded, err := loadPolicyFile(resolve(path, c.PolicyFile))
		if err != nil {
			return nil, err
		}
		c.Policy = MergePolicy(loaded, c.Policy)
	}
	if len(c.Prices) == 0 && c.PricesFile != "" {
		s, err := data.LoadPriceSeries(resolve(path, c.PricesFile))
		if err != nil {
			return nil, err
		}
		c.Prices = s.Prices
		if c.Name == "" {
			c.Name = s.Name
		}
	}
	if c.Name == "" {
		c.Name = filepath.Base(path)
	}
	return &c, nil
}

// resolve prefers interpreting rel as relative to the config file directory,
// but falls back to the provided path (relative to cwd) if that doesn't exist.
func resolve(configPath, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	cand := filepath.Join(filepath.Dir(configPath), rel)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return rel
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Strategy.Name == "" {
		return errors.New("strategy.name is required")
	}
	if err := c.Series().Validate(); err != nil {
		return fmt.Errorf("prices invalid: %w", err)
	}
	if err := c.Policy.ToModelParams().WithDefaults().Validate(); err != nil {
		return fmt.Errorf("policy config invalid: %w", err)
	}
	return nil
}

func (c *Config) Series() model.PriceSeries {
	return model.PriceSeries{Name: c.Name, Prices: c.Prices}
}

func (p PolicyConfig) ToModelParams() model.PolicyParams {
	return model.PolicyParams{
		Q:           p.Q,
		MinPrice:    p.MinPrice,
		MaxPrice:    p.MaxPrice,
		A:           p.A,
		B:           p.B,
		Delta:       p.Delta,
		HoldingCost: p.HoldingCost,
	}
}

type policyFileWrapper struct {
	Policy PolicyConfig `yaml:"policy"`
}

func loadPolicyFile(path string) (PolicyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PolicyConfig{}, err
	}
	var w policyFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PolicyConfig{}, err
	}
	return w.Policy, nil
}

// MergePolicy overlays non-zero fields from override onto base.
// This is used when loading a policy preset and then applying overrides from the config or request.
func MergePolicy(base, override PolicyConfig) PolicyConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Q != 0 {
		out.Q = override.Q
	}
	if override.MinPrice != 0 {
		out.MinPrice = override.MinPrice
	}
	if override.MaxPrice != 0 {
		out.MaxPrice = override.MaxPrice
	}
	if override.A != 0 {
		out.A = override.A
	}
	// Note: b and holding_cost may legitimately be 0, but then there is nothing to override.
	if override.B != 0 {
		out.B = override.B
	}
	if override.Delta != 0 {
		out.Delta = override.Delta
	}
	if override.HoldingCost != 0 {
		out.HoldingCost = override.HoldingCost
	}
	return out
}
