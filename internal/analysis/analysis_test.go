package analysis

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"inventory-release/internal/backtest"
	"inventory-release/internal/model"
)

func TestComputeSeriesStats(t *testing.T) {
	s := ComputeSeriesStats(model.PriceSeries{Name: "paper", Prices: []float64{38, 35, 32, 36, 37}})
	if s.Count != 5 || s.MinPrice != 32 || s.MaxPrice != 38 {
		t.Errorf("got %+v", s)
	}
	if math.Abs(s.MeanPrice-35.6) > 1e-9 {
		t.Errorf("mean = %v", s.MeanPrice)
	}
	// sorted 32,35,36,37,38: p05 at pos 0.2 -> 32.6, p95 at pos 3.8 -> 37.8
	if math.Abs(s.P05Price-32.6) > 1e-9 || math.Abs(s.P95Price-37.8) > 1e-9 {
		t.Errorf("p05=%v p95=%v", s.P05Price, s.P95Price)
	}
	if got := ComputeSeriesStats(model.PriceSeries{}); got.Count != 0 {
		t.Errorf("empty series count = %d", got.Count)
	}
}

func TestCompetitiveRatio(t *testing.T) {
	if r := CompetitiveRatio(90, 100); r != 0.9 {
		t.Errorf("ratio = %v", r)
	}
	if r := CompetitiveRatio(90, 0); r != 0 {
		t.Errorf("zero benchmark ratio = %v", r)
	}
}

func TestRankByRevenue(t *testing.T) {
	mk := func(name string, net int64) *backtest.Result {
		return &backtest.Result{
			Strategy:     name,
			TotalRevenue: decimal.NewFromInt(net),
			NetProfit:    decimal.NewFromInt(net),
		}
	}
	ranked := RankByRevenue([]*backtest.Result{
		mk("uniform", 6000), mk("offline", 8000), nil, mk("alg-ir", 7200),
	}, "offline")
	if len(ranked) != 3 {
		t.Fatalf("len = %d", len(ranked))
	}
	want := []string{"offline", "alg-ir", "uniform"}
	for i, r := range ranked {
		if r.Strategy != want[i] || r.Rank != i+1 {
			t.Errorf("rank %d = %+v, want %s", i+1, r, want[i])
		}
	}
	if math.Abs(ranked[1].Ratio-0.9) > 1e-12 {
		t.Errorf("alg-ir ratio = %v", ranked[1].Ratio)
	}
}

func TestRankSeriesByOfflineRevenue(t *testing.T) {
	params := model.PolicyParams{Q: 200, MinPrice: 30, MaxPrice: 40, A: 100, B: 1}
	ranked := RankSeriesByOfflineRevenue([]model.PriceSeries{
		{Name: "low", Prices: []float64{31, 31, 31}},
		{Name: "bad", Prices: nil},
		{Name: "high", Prices: []float64{39, 39, 39}},
	}, params)
	if len(ranked) != 2 {
		t.Fatalf("len = %d", len(ranked))
	}
	if ranked[0].Name != "high" {
		t.Errorf("first = %q", ranked[0].Name)
	}
}
