package strategy

import (
	"fmt"
	"math"

	"inventory-release/internal/model"
)

// UniformStrategy spreads the remaining stock evenly over the periods left,
// ignoring price. It is the naive baseline in comparisons.
type UniformStrategy struct {
	Periods int
}

func NewUniformStrategy(periods int) (*UniformStrategy, error) {
	if periods <= 0 {
		return nil, fmt.Errorf("uniform strategy needs periods > 0, got %d", periods)
	}
	return &UniformStrategy{Periods: periods}, nil
}

func (s *UniformStrategy) Name() string { return "uniform" }

func (s *UniformStrategy) Decide(ctx Context) (model.Release, error) {
	left := s.Periods - ctx.Index
	if ctx.IsLast || left <= 1 {
		return model.Release{Quantity: math.Max(0, ctx.Remaining), Stage: model.StageBaseline}, nil
	}
	return model.Release{Quantity: math.Max(0, ctx.Remaining) / float64(left), Stage: model.StageBaseline}, nil
}
