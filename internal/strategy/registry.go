package strategy

import (
	"fmt"
	"strings"

	"inventory-release/internal/model"
)

// Names lists the strategies New can build, in display order.
var Names = []string{"alg-ir", "offline", "uniform"}

// Describe returns a one-line description per strategy name.
func Describe() map[string]string {
	return map[string]string{
		"alg-ir":  "online two-stage threshold policy; becomes alg-ir-h when holding_cost > 0",
		"offline": "hindsight shadow-price plan over the full price sequence",
		"uniform": "releases remaining stock evenly over the periods left",
	}
}

// New builds a strategy by name for the given price sequence.
func New(name string, prices []float64, params model.PolicyParams) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "alg-ir", "alg-ir-h", "online":
		return NewOnlineStrategy(params)
	case "offline", "oracle":
		return NewOracleStrategy(prices, params)
	case "uniform":
		return NewUniformStrategy(len(prices))
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
