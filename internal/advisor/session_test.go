package advisor

import (
	"errors"
	"math"
	"testing"

	"inventory-release/internal/model"
)

func iphoneParams() model.PolicyParams {
	return model.PolicyParams{Q: 200, MinPrice: 30, MaxPrice: 45, A: 250, B: 5}
}

func TestSession_AdvancesAndLiquidates(t *testing.T) {
	s, err := NewSession(iphoneParams())
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for day, p := range []float64{40, 38, 42} {
		adv, err := s.Advise(p, false)
		if err != nil {
			t.Fatal(err)
		}
		if adv.Day != day+1 {
			t.Errorf("day = %d, want %d", adv.Day, day+1)
		}
		if adv.Quantity < 0 {
			t.Errorf("negative quantity %v", adv.Quantity)
		}
		if math.Abs(adv.ExpectedRevenue-adv.Quantity*p) > 1e-9 {
			t.Errorf("expected revenue = %v", adv.ExpectedRevenue)
		}
		total += adv.Quantity
	}
	before := s.Remaining()
	if math.Abs(before-(200-total)) > 1e-9 {
		t.Errorf("remaining = %v, want %v", before, 200-total)
	}

	adv, err := s.Advise(35, true)
	if err != nil {
		t.Fatal(err)
	}
	if adv.Stage != model.StageLiquidation || math.Abs(adv.Quantity-before) > 1e-9 {
		t.Errorf("last day: %+v, want liquidation of %v", adv, before)
	}
	if !s.Closed() || s.Remaining() != 0 {
		t.Errorf("session not closed after last day")
	}
	if _, err := s.Advise(40, false); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("err = %v, want ErrSessionClosed", err)
	}
}

func TestSession_InvalidPriceDoesNotAdvance(t *testing.T) {
	s, _ := NewSession(iphoneParams())
	if _, err := s.Advise(-1, false); err == nil {
		t.Fatal("expected error")
	}
	if s.Day() != 1 || s.Remaining() != 200 {
		t.Errorf("state changed on error: day=%d remaining=%v", s.Day(), s.Remaining())
	}
}

func TestSession_Warn(t *testing.T) {
	s, _ := NewSession(iphoneParams())
	if !s.Warn(4.5) {
		t.Error("4.5 should warn")
	}
	if s.Warn(30) {
		t.Error("30 should not warn")
	}
}

func TestNewSession_InvalidParams(t *testing.T) {
	if _, err := NewSession(model.PolicyParams{Q: 10, MinPrice: 40, MaxPrice: 30}); err == nil {
		t.Error("expected error")
	}
}
