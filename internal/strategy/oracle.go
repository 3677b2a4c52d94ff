package strategy

import (
	"fmt"

	"inventory-release/internal/model"
	"inventory-release/internal/policy"
)

// OracleStrategy is the hindsight benchmark. It solves the shadow-price plan
// for the whole price sequence up front and replays it period by period.
//
// Notes:
// - The plan ignores holding cost; it is the revenue upper bound the online
//   policy is compared against.
// - When total demand cannot absorb Q the plan sells what it can at λ* = 0.
type OracleStrategy struct {
	plan   []float64
	result policy.OfflineResult
}

func NewOracleStrategy(prices []float64, params model.PolicyParams) (*OracleStrategy, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("no prices")
	}
	params = params.WithDefaults()
	res, err := policy.SolveOffline(params.Q, prices, params.A, params.B, params.Delta)
	if err != nil {
		return nil, err
	}
	return &OracleStrategy{plan: res.Sales, result: res}, nil
}

func (s *OracleStrategy) Name() string { return "offline" }

// Result is the solved hindsight plan.
func (s *OracleStrategy) Result() policy.OfflineResult { return s.result }

func (s *OracleStrategy) Decide(ctx Context) (model.Release, error) {
	if ctx.Index < 0 || ctx.Index >= len(s.plan) {
		return model.Release{Stage: model.StageOffline}, nil
	}
	return model.Release{Quantity: s.plan[ctx.Index], Stage: model.StageOffline}, nil
}
