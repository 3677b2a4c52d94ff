package model

import (
	"errors"
	"math"
)

// DefaultDelta is the half-width of the demand shock support when none is configured.
const DefaultDelta = 0.2

var (
	ErrInvalidStock       = errors.New("Q must be > 0")
	ErrInvalidMinPrice    = errors.New("min price m must be > 0")
	ErrInvalidPriceBounds = errors.New("max price M must be > min price m")
	ErrInvalidDelta       = errors.New("delta must be in (0, 1)")
	ErrInvalidHolding     = errors.New("holding cost h must be >= 0")
	ErrInvalidDemandSlope = errors.New("demand curve a - b*p must be >= 0 for p in [m, M]")
)

// PolicyParams defines the seller and market parameters of one run.
// Units:
// - Q: units of stock
// - MinPrice/MaxPrice/HoldingCost: currency per unit (HoldingCost per unit per period)
// - A, B: mean demand is A - B*price
// - Delta: relative half-width of the demand shock, 0..1
type PolicyParams struct {
	Q           float64
	MinPrice    float64
	MaxPrice    float64
	A           float64
	B           float64
	Delta       float64
	HoldingCost float64
}

// Theta is the price ratio M/m.
func (p PolicyParams) Theta() float64 {
	return p.MaxPrice / p.MinPrice
}

// MeanDemand is a - b*price.
func (p PolicyParams) MeanDemand(price float64) float64 {
	return p.A - p.B*price
}

func (p PolicyParams) Validate() error {
	if !(p.Q > 0) || math.IsInf(p.Q, 0) {
		return ErrInvalidStock
	}
	if !(p.MinPrice > 0) {
		return ErrInvalidMinPrice
	}
	if !(p.MaxPrice > p.MinPrice) || math.IsInf(p.MaxPrice, 0) {
		return ErrInvalidPriceBounds
	}
	if !(p.Delta > 0 && p.Delta < 1) {
		return ErrInvalidDelta
	}
	if !(p.HoldingCost >= 0) {
		return ErrInvalidHolding
	}
	if p.B < 0 || p.MeanDemand(p.MaxPrice) < 0 || p.MeanDemand(p.MinPrice) < 0 {
		return ErrInvalidDemandSlope
	}
	return nil
}

// WithDefaults fills Delta when unset.
func (p PolicyParams) WithDefaults() PolicyParams {
	if p.Delta == 0 {
		p.Delta = DefaultDelta
	}
	return p
}
