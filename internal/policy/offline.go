package policy

import (
	"errors"
	"fmt"
	"math"

	"inventory-release/internal/demand"
	"inventory-release/internal/model"
	"inventory-release/internal/solver"

	"gonum.org/v1/gonum/floats"
)

// offlineProbCap keeps the offline quantile argument strictly below 1.
const offlineProbCap = 0.9999999

// OfflineResult is the hindsight plan for a full price sequence.
type OfflineResult struct {
	// ShadowPrice is the uniform floor λ* that clears Q against all prices.
	ShadowPrice float64
	Sales       []float64
	TotalSold   float64
	Revenue     float64
	// Residual is Q - TotalSold. Sales jump at λ = p_i, so when Q falls inside a
	// jump λ* lands on that price and the residual stays non-zero.
	Residual float64
	// Feasible is false when total achievable demand is below Q; the plan then
	// sells everything it can at λ* = 0.
	Feasible bool
	Solver   solver.Result
}

// OfflineSales is the quantity sold at price p under floor lambda.
// Mean demand is floored at zero so prices above a/b never produce negative sales.
func OfflineSales(shock demand.TruncatedShock, a, b, p, lambda float64) float64 {
	if p <= lambda {
		return 0
	}
	prob := math.Max(0, math.Min(offlineProbCap, 1-lambda/p))
	return math.Max(0, a-b*p) * shock.InverseCDF(prob)
}

// SolveOffline finds the shadow price λ* in [0, max(prices)] such that the
// per-period sales sum to q.
func SolveOffline(q float64, prices []float64, a, b, delta float64) (OfflineResult, error) {
	if len(prices) == 0 {
		return OfflineResult{}, errors.New("no prices")
	}
	if !(q > 0) {
		return OfflineResult{}, fmt.Errorf("offline: %w", model.ErrInvalidStock)
	}
	shock, err := demand.New(delta)
	if err != nil {
		return OfflineResult{}, fmt.Errorf("offline: %w", err)
	}
	for _, p := range prices {
		if !(p > 0) || math.IsInf(p, 0) {
			return OfflineResult{}, fmt.Errorf("offline: %w", ErrInvalidPrice)
		}
	}

	sales := make([]float64, len(prices))
	total := func(lambda float64) float64 {
		for i, p := range prices {
			sales[i] = OfflineSales(shock, a, b, p, lambda)
		}
		return floats.Sum(sales)
	}

	res := solver.Brent(func(lambda float64) float64 {
		return q - total(lambda)
	}, 0, floats.Max(prices), solver.Options{XTol: 1e-6})

	lambda := 0.0
	if res.Status == solver.Found {
		lambda = res.X
	}

	out := OfflineResult{
		ShadowPrice: lambda,
		Sales:       make([]float64, len(prices)),
		Solver:      res,
	}
	for i, p := range prices {
		x := OfflineSales(shock, a, b, p, lambda)
		out.Sales[i] = x
		out.Revenue += p * x
	}
	out.TotalSold = floats.Sum(out.Sales)
	out.Residual = q - out.TotalSold
	out.Feasible = res.Status == solver.Found
	return out, nil
}
