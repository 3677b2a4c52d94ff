package strategy

import (
	"inventory-release/internal/model"
	"inventory-release/internal/policy"
)

// OnlineStrategy plays the two-stage threshold policy. It only sees the
// current price and the stock already sold.
type OnlineStrategy struct {
	engine *policy.Engine
}

func NewOnlineStrategy(params model.PolicyParams) (*OnlineStrategy, error) {
	eng, err := policy.NewEngine(params)
	if err != nil {
		return nil, err
	}
	return &OnlineStrategy{engine: eng}, nil
}

func (s *OnlineStrategy) Name() string {
	if s.engine.Params().HoldingCost > 0 {
		return "alg-ir-h"
	}
	return "alg-ir"
}

func (s *OnlineStrategy) Engine() *policy.Engine { return s.engine }

func (s *OnlineStrategy) Decide(ctx Context) (model.Release, error) {
	d, err := s.engine.Decide(policy.Request{
		Price:       ctx.Price,
		Accumulated: ctx.Accumulated,
		Period:      ctx.Period,
		IsLast:      ctx.IsLast,
	})
	if err != nil {
		return model.Release{}, err
	}
	return model.Release{Quantity: d.Quantity, Stage: d.Stage}, nil
}
