package strategy

import (
	"math"
	"testing"

	"inventory-release/internal/model"
)

func paperParams() model.PolicyParams {
	return model.PolicyParams{Q: 200, MinPrice: 30, MaxPrice: 40, A: 100, B: 1}
}

var paperPrices = []float64{38, 35, 32, 36, 37}

func TestNew_ByName(t *testing.T) {
	cases := map[string]string{
		"":        "alg-ir",
		"alg-ir":  "alg-ir",
		"Offline": "offline",
		"uniform": "uniform",
	}
	for in, want := range cases {
		s, err := New(in, paperPrices, paperParams())
		if err != nil {
			t.Fatalf("New(%q): %v", in, err)
		}
		if s.Name() != want {
			t.Errorf("New(%q).Name() = %q, want %q", in, s.Name(), want)
		}
	}
	if _, err := New("nope", paperPrices, paperParams()); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestOnlineStrategy_NameReflectsHolding(t *testing.T) {
	p := paperParams()
	p.HoldingCost = 0.5
	s, err := NewOnlineStrategy(p)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "alg-ir-h" {
		t.Errorf("name = %q", s.Name())
	}
}

func TestOnlineStrategy_FirstPeriodIsMyopic(t *testing.T) {
	s, err := NewOnlineStrategy(paperParams())
	if err != nil {
		t.Fatal(err)
	}
	rel, err := s.Decide(Context{Index: 0, Period: 1, Price: 38, Remaining: 200})
	if err != nil {
		t.Fatal(err)
	}
	if rel.Stage != model.StageMyopic {
		t.Errorf("stage = %q", rel.Stage)
	}
	if math.Abs(rel.Quantity-54.85) > 0.05 {
		t.Errorf("quantity = %v, want ~54.85", rel.Quantity)
	}
}

func TestOnlineStrategy_InvalidPrice(t *testing.T) {
	s, _ := NewOnlineStrategy(paperParams())
	if _, err := s.Decide(Context{Period: 1, Price: 0}); err == nil {
		t.Error("expected error for zero price")
	}
}

func TestOracleStrategy_ReplaysPlan(t *testing.T) {
	s, err := NewOracleStrategy(paperPrices, paperParams())
	if err != nil {
		t.Fatal(err)
	}
	res := s.Result()
	for i := range paperPrices {
		rel, _ := s.Decide(Context{Index: i})
		if rel.Quantity != res.Sales[i] || rel.Stage != model.StageOffline {
			t.Errorf("period %d: got %+v, want %v", i, rel, res.Sales[i])
		}
	}
	rel, _ := s.Decide(Context{Index: 99})
	if rel.Quantity != 0 {
		t.Errorf("out of range index released %v", rel.Quantity)
	}
}

func TestOracleStrategy_NoPrices(t *testing.T) {
	if _, err := NewOracleStrategy(nil, paperParams()); err == nil {
		t.Error("expected error")
	}
}

func TestUniformStrategy(t *testing.T) {
	s, err := NewUniformStrategy(4)
	if err != nil {
		t.Fatal(err)
	}
	rel, _ := s.Decide(Context{Index: 0, Remaining: 100})
	if rel.Quantity != 25 {
		t.Errorf("first = %v, want 25", rel.Quantity)
	}
	rel, _ = s.Decide(Context{Index: 2, Remaining: 40})
	if rel.Quantity != 20 {
		t.Errorf("third = %v, want 20", rel.Quantity)
	}
	rel, _ = s.Decide(Context{Index: 3, IsLast: true, Remaining: 13})
	if rel.Quantity != 13 {
		t.Errorf("last = %v, want 13", rel.Quantity)
	}
	rel, _ = s.Decide(Context{Index: 1, Remaining: -5})
	if rel.Quantity != 0 {
		t.Errorf("negative remaining released %v", rel.Quantity)
	}
	if _, err := NewUniformStrategy(0); err == nil {
		t.Error("expected error for zero periods")
	}
}
