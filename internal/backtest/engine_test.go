package backtest

import (
	"bytes"
	"encoding/csv"
	"math"
	"path/filepath"
	"testing"

	"inventory-release/internal/model"
	"inventory-release/internal/strategy"
)

var paperSeries = model.PriceSeries{Name: "paper", Prices: []float64{38, 35, 32, 36, 37}}

func paperParams() model.PolicyParams {
	return model.PolicyParams{Q: 200, MinPrice: 30, MaxPrice: 40, A: 100, B: 1}
}

type fixedStrategy struct{ qty float64 }

func (s fixedStrategy) Name() string { return "fixed" }

func (s fixedStrategy) Decide(strategy.Context) (model.Release, error) {
	return model.Release{Quantity: s.qty, Stage: model.StageBaseline}, nil
}

func TestRun_UniformTotals(t *testing.T) {
	p := paperParams()
	p.HoldingCost = 1
	strat, _ := strategy.NewUniformStrategy(len(paperSeries.Prices))

	res, err := New().Run(paperSeries, p, strat)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range res.Ledger {
		if math.Abs(r.Released-40) > 1e-9 {
			t.Errorf("period %d released %v, want 40", r.Period, r.Released)
		}
	}
	if got := res.TotalRevenue.StringFixed(2); got != "7120.00" {
		t.Errorf("revenue = %s", got)
	}
	if got := res.TotalHoldingFee.StringFixed(2); got != "400.00" {
		t.Errorf("holding = %s", got)
	}
	if got := res.NetProfit.StringFixed(2); got != "6720.00" {
		t.Errorf("net = %s", got)
	}
	last := res.Ledger[len(res.Ledger)-1]
	if math.Abs(last.CumNetProfit-6720) > 1e-6 {
		t.Errorf("cum net = %v", last.CumNetProfit)
	}
	if res.Remaining > 1e-9 {
		t.Errorf("remaining = %v", res.Remaining)
	}
}

func TestRun_ClipsToStock(t *testing.T) {
	res, err := New().Run(paperSeries, paperParams(), fixedStrategy{qty: 150})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{150, 50, 0, 0, 0}
	for i, r := range res.Ledger {
		if r.Released != want[i] {
			t.Errorf("period %d released %v, want %v", r.Period, r.Released, want[i])
		}
		if r.Requested != 150 {
			t.Errorf("period %d requested %v", r.Period, r.Requested)
		}
	}
	if res.Ledger[2].Stage != model.StageOutOfStock {
		t.Errorf("stage after stock-out = %q", res.Ledger[2].Stage)
	}
	if res.TotalReleased != 200 {
		t.Errorf("total released = %v", res.TotalReleased)
	}
}

func TestRun_OnlinePolicySellsEverything(t *testing.T) {
	strat, err := strategy.NewOnlineStrategy(paperParams())
	if err != nil {
		t.Fatal(err)
	}
	res, err := New().Run(paperSeries, paperParams(), strat)
	if err != nil {
		t.Fatal(err)
	}
	if res.Strategy != "alg-ir" {
		t.Errorf("strategy = %q", res.Strategy)
	}
	wantStages := []model.Stage{
		model.StageMyopic, model.StageMyopic, model.StageRationing, model.StageRationing, model.StageLiquidation,
	}
	for i, r := range res.Ledger {
		if r.Stage != wantStages[i] {
			t.Errorf("period %d stage = %q, want %q", r.Period, r.Stage, wantStages[i])
		}
		if r.Released < 0 {
			t.Errorf("period %d released negative %v", r.Period, r.Released)
		}
	}
	if math.Abs(res.TotalReleased-200) > 1e-6 {
		t.Errorf("total released = %v", res.TotalReleased)
	}
}

func TestRun_Errors(t *testing.T) {
	strat := fixedStrategy{qty: 1}
	if _, err := New().Run(paperSeries, paperParams(), nil); err == nil {
		t.Error("nil strategy accepted")
	}
	if _, err := New().Run(model.PriceSeries{}, paperParams(), strat); err == nil {
		t.Error("empty series accepted")
	}
	if _, err := New().Run(paperSeries, model.PolicyParams{}, strat); err == nil {
		t.Error("zero stock accepted")
	}
}

func TestEncodeLedgerCSV(t *testing.T) {
	res, err := New().Run(paperSeries, paperParams(), fixedStrategy{qty: 10})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeLedgerCSV(&buf, res.Ledger); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(paperSeries.Prices)+1 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][3] != "stage" || rows[1][3] != "baseline" {
		t.Errorf("stage column = %q / %q", rows[0][3], rows[1][3])
	}
	if rows[1][6] != "380.000000" {
		t.Errorf("revenue column = %q", rows[1][6])
	}
}

func TestWriteLedgerCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := WriteLedgerCSV(path, []LedgerRow{{Index: 0, Period: 1, Price: 10}}); err != nil {
		t.Fatal(err)
	}
}
