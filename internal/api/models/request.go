package models

// PolicyConfig is the seller/market block shared by every request.
type PolicyConfig struct {
	// Optional preset name looked up in the scenario presets directory (e.g. "iphone").
	// Non-zero fields below override the preset.
	Preset      string  `json:"preset,omitempty"`
	Q           float64 `json:"q"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	A           float64 `json:"a"`
	B           float64 `json:"b"`
	Delta       float64 `json:"delta,omitempty"`
	HoldingCost float64 `json:"holding_cost,omitempty"`
}

// DecideRequest asks for one period's release.
// Either Accumulated (stock already sold) or Remaining (stock on hand) may be given;
// Remaining wins when set.
type DecideRequest struct {
	Policy      PolicyConfig `json:"policy"`
	Price       float64      `json:"price" binding:"required"`
	Period      int          `json:"period,omitempty"` // 1-based, default 1
	Accumulated float64      `json:"accumulated,omitempty"`
	Remaining   *float64     `json:"remaining,omitempty"`
	IsLast      bool         `json:"is_last,omitempty"`
}

// SimulateRequest runs one strategy over a price series.
type SimulateRequest struct {
	Name     string          `json:"name,omitempty"`
	Policy   PolicyConfig    `json:"policy"`
	Prices   []float64       `json:"prices" binding:"required,min=1"`
	Strategy StrategyConfig  `json:"strategy,omitempty"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// StrategyConfig selects a strategy by name; empty means alg-ir.
type StrategyConfig struct {
	Name string `json:"name,omitempty"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// CompareRequest runs several strategies over the same series.
type CompareRequest struct {
	Name       string       `json:"name,omitempty"`
	Policy     PolicyConfig `json:"policy"`
	Prices     []float64    `json:"prices" binding:"required,min=1"`
	Strategies []string     `json:"strategies,omitempty"` // default: all
}

// OfflineRequest solves the hindsight plan for a full price series.
type OfflineRequest struct {
	Policy PolicyConfig `json:"policy"`
	Prices []float64    `json:"prices" binding:"required,min=1"`
}
