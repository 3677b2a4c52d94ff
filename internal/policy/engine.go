package policy

import (
	"errors"
	"fmt"
	"math"

	"inventory-release/internal/demand"
	"inventory-release/internal/model"
	"inventory-release/internal/solver"
)

// Fixed policy constants.
const (
	// Below lowBand*D_mean marginal revenue is the full price; above highBand*D_mean it is zero.
	lowBand  = 0.8
	highBand = 1.2

	// When holding cost pushes the effective floor to degenerateFloor or below,
	// the penalty saturates at degenerateTheta.
	degenerateFloor = 0.1
	degenerateTheta = 1000.0
)

var ErrInvalidPrice = errors.New("price must be a finite value > 0")

// Engine is the two-stage threshold release policy (ALG-IR), optionally with a
// per-period holding cost (ALG-IR-H). It holds only read-only configuration, so a
// single Engine can serve any number of concurrent sessions.
type Engine struct {
	params model.PolicyParams
	shock  demand.TruncatedShock
}

func NewEngine(params model.PolicyParams) (*Engine, error) {
	params = params.WithDefaults()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("policy params invalid: %w", err)
	}
	shock, err := demand.New(params.Delta)
	if err != nil {
		return nil, fmt.Errorf("policy params invalid: %w", err)
	}
	return &Engine{params: params, shock: shock}, nil
}

func (e *Engine) Params() model.PolicyParams { return e.params }

// Request is one period's input. Accumulated is stock already sold before this period.
type Request struct {
	Price       float64
	Accumulated float64
	Period      int
	IsLast      bool
}

// Decision is the engine's output for a period.
type Decision struct {
	Quantity  float64
	Stage     model.Stage
	Trial     float64 // stage-1 trial quantity (0 on liquidation)
	Threshold float64 // threshold in force for the period
	Solver    *solver.Result
}

// Bounds returns (theta_t, effective m) for period t after holding-cost deflation.
// Without deflation these are exactly (M/m, m).
func (e *Engine) Bounds(t int) (float64, float64) {
	deduction := e.holdingDeduction(t)
	if deduction == 0 {
		return e.params.Theta(), e.params.MinPrice
	}
	effM := e.params.MaxPrice - deduction
	effm := e.params.MinPrice - deduction
	if effm <= degenerateFloor {
		return degenerateTheta, degenerateFloor
	}
	return effM / effm, effm
}

// Threshold is the accumulated-sales level where stage 2 begins in period t.
func (e *Engine) Threshold(t int) float64 {
	theta, _ := e.Bounds(t)
	return e.params.Q / (1 + math.Log(theta))
}

// Penalty is the marginal opportunity cost φ(z, t) of having sold z units in total.
// It is flat at the effective floor up to the threshold and grows exponentially
// after it, reaching the effective ceiling at z = Q.
func (e *Engine) Penalty(z float64, t int) float64 {
	theta, effm := e.Bounds(t)
	k := 1 + math.Log(theta)
	if z <= e.params.Q/k {
		return effm
	}
	return effm * math.Exp(k/e.params.Q*z-1)
}

// MarginalRevenue is d/dx of expected revenue at price p, net of the holding
// cost accumulated by period t.
func (e *Engine) MarginalRevenue(x, p float64, t int) float64 {
	mean := e.params.MeanDemand(p)
	var mr float64
	switch {
	case x <= lowBand*mean:
		mr = p
	case x >= highBand*mean:
		mr = 0
	default:
		mr = p * (1 - e.shock.CDF(x/mean))
	}
	return mr - e.holdingDeduction(t)
}

// TrialQuantity is the myopic stage-1 quantity D_mean(p) * F^-1(1 - m/p).
func (e *Engine) TrialQuantity(p float64) float64 {
	prob := 1 - e.params.MinPrice/p
	if prob <= 0 {
		return 0
	}
	return e.params.MeanDemand(p) * e.shock.Quantile(prob)
}

// Decide returns the release quantity for one period. It is a pure function of
// the request: callers own and advance Accumulated and Period.
func (e *Engine) Decide(req Request) (Decision, error) {
	if !(req.Price > 0) || math.IsInf(req.Price, 0) {
		return Decision{}, ErrInvalidPrice
	}
	t := req.Period
	if t < 1 {
		t = 1
	}
	threshold := e.Threshold(t)
	remaining := e.params.Q - req.Accumulated

	if req.IsLast {
		return Decision{
			Quantity:  math.Max(0, remaining),
			Stage:     model.StageLiquidation,
			Threshold: threshold,
		}, nil
	}

	trial := e.TrialQuantity(req.Price)
	if req.Accumulated+trial <= threshold {
		return Decision{
			Quantity:  math.Max(0, trial),
			Stage:     model.StageMyopic,
			Trial:     trial,
			Threshold: threshold,
		}, nil
	}

	remaining = math.Max(0, remaining)
	balance := func(x float64) float64 {
		return e.MarginalRevenue(x, req.Price, t) - e.Penalty(req.Accumulated+x, t)
	}
	res := solver.Brent(balance, 0, remaining, solver.Options{})

	return Decision{
		Quantity:  rootQuantity(res),
		Stage:     model.StageRationing,
		Trial:     trial,
		Threshold: threshold,
		Solver:    &res,
	}, nil
}

// DecideRemaining is the inventory-on-hand form of Decide used by the advisor.
// An empty stock short-circuits to a zero release.
func (e *Engine) DecideRemaining(price, remaining float64, t int, isLast bool) (Decision, error) {
	if remaining <= 0 {
		return Decision{Stage: model.StageOutOfStock, Threshold: e.Threshold(t)}, nil
	}
	return e.Decide(Request{
		Price:       price,
		Accumulated: e.params.Q - remaining,
		Period:      t,
		IsLast:      isLast,
	})
}

// rootQuantity maps a solver outcome to a release. An unbracketed balance takes
// the endpoint the solver picked; a numerical failure releases nothing.
func rootQuantity(res solver.Result) float64 {
	switch res.Status {
	case solver.Found, solver.NotBracketed:
		return math.Max(0, res.X)
	default:
		return 0
	}
}

func (e *Engine) holdingDeduction(t int) float64 {
	if t < 1 {
		t = 1
	}
	return float64(t-1) * e.params.HoldingCost
}
