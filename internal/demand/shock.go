package demand

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ProbEpsilon bounds quantile arguments away from 0 and 1.
const ProbEpsilon = 1e-6

var ErrInvalidDelta = errors.New("delta must be in (0, 1)")

// TruncatedShock is the multiplicative demand shock Z.
// Z follows a unit-scale normal centred at 1, truncated to [1-Delta, 1+Delta].
// Realized demand at price p is meanDemand(p) * Z.
type TruncatedShock struct {
	Delta float64

	lo   float64 // Φ(-Delta)
	mass float64 // Φ(Delta) - Φ(-Delta)
}

func New(delta float64) (TruncatedShock, error) {
	if !(delta > 0 && delta < 1) {
		return TruncatedShock{}, ErrInvalidDelta
	}
	lo := distuv.UnitNormal.CDF(-delta)
	hi := distuv.UnitNormal.CDF(delta)
	return TruncatedShock{Delta: delta, lo: lo, mass: hi - lo}, nil
}

// Support returns the closed interval Z lives on.
func (d TruncatedShock) Support() (float64, float64) {
	return 1 - d.Delta, 1 + d.Delta
}

// Quantile returns F^-1(prob). prob is saturated into [ProbEpsilon, 1-ProbEpsilon]
// so boundary probabilities never produce infinities.
func (d TruncatedShock) Quantile(prob float64) float64 {
	prob = clampProb(prob)
	return 1 + distuv.UnitNormal.Quantile(d.lo+prob*d.mass)
}

// InverseCDF is Quantile without the epsilon guard; prob is only clipped to [0, 1].
// The offline solver applies its own clamp before calling it.
func (d TruncatedShock) InverseCDF(prob float64) float64 {
	prob = math.Max(0, math.Min(1, prob))
	return 1 + distuv.UnitNormal.Quantile(d.lo+prob*d.mass)
}

// CDF returns P(Z <= x).
func (d TruncatedShock) CDF(x float64) float64 {
	lo, hi := d.Support()
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x <= lo:
		return 0
	case x >= hi:
		return 1
	}
	v := (distuv.UnitNormal.CDF(x-1) - d.lo) / d.mass
	return math.Max(0, math.Min(1, v))
}

func clampProb(p float64) float64 {
	if math.IsNaN(p) || p < ProbEpsilon {
		return ProbEpsilon
	}
	if p > 1-ProbEpsilon {
		return 1 - ProbEpsilon
	}
	return p
}
