package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"inventory-release/internal/model"
)

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_InlineScenario(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "paper.yaml", `
name: paper
policy:
  q: 200
  min_price: 30
  max_price: 40
  a: 100
  b: 1
prices: [38, 35, 32, 36, 37]
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Policy.Delta != model.DefaultDelta {
		t.Errorf("delta = %v, want default", c.Policy.Delta)
	}
	if c.Strategy.Name != "alg-ir" {
		t.Errorf("strategy = %q", c.Strategy.Name)
	}
	if s := c.Series(); s.Name != "paper" || len(s.Prices) != 5 {
		t.Errorf("series = %+v", s)
	}
}

func TestLoad_PolicyAndPricesFiles(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "presets/iphone.yaml", `
policy:
  name: iphone
  q: 400
  min_price: 30
  max_price: 45
  a: 250
  b: 5
`)
	write(t, dir, "prices/season.json", `{"name":"season","prices":[40,41,39]}`)
	path := write(t, dir, "scenario.yaml", `
policy_file: presets/iphone.yaml
policy:
  holding_cost: 0.05
prices_file: prices/season.json
strategy:
  name: uniform
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Policy.Q != 400 || c.Policy.HoldingCost != 0.05 || c.Policy.Name != "iphone" {
		t.Errorf("policy = %+v", c.Policy)
	}
	if c.Name != "season" || len(c.Prices) != 3 {
		t.Errorf("name=%q prices=%v", c.Name, c.Prices)
	}
	if c.Strategy.Name != "uniform" {
		t.Errorf("strategy = %q", c.Strategy.Name)
	}
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := write(t, t.TempDir(), "bad.yaml", `
policy: {q: 100, min_price: 40, max_price: 30, a: 100, b: 1}
prices: [35]
`)
	_, err := Load(path)
	if !errors.Is(err, model.ErrInvalidPriceBounds) {
		t.Errorf("err = %v, want ErrInvalidPriceBounds", err)
	}
}

func TestLoad_NoPrices(t *testing.T) {
	path := write(t, t.TempDir(), "empty.yaml", `
policy: {q: 100, min_price: 30, max_price: 40, a: 100, b: 1}
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for missing prices")
	}
}

func TestMergePolicy(t *testing.T) {
	base := PolicyConfig{Q: 100, MinPrice: 30, MaxPrice: 40, A: 100, B: 1, Delta: 0.2}
	got := MergePolicy(base, PolicyConfig{Q: 250, HoldingCost: 1})
	want := PolicyConfig{Q: 250, MinPrice: 30, MaxPrice: 40, A: 100, B: 1, Delta: 0.2, HoldingCost: 1}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReadServer_EnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("CACHE_ENABLED", "true")

	s := readServer(viper.New())
	if s.Port != "9090" {
		t.Errorf("port = %q", s.Port)
	}
	if len(s.AllowedOrigins) != 2 || s.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("origins = %v", s.AllowedOrigins)
	}
	if !s.Cache.Enabled || s.Cache.TTLSeconds != 3600 {
		t.Errorf("cache = %+v", s.Cache)
	}
	if s.IsProduction() {
		t.Error("default env should not be production")
	}
}
