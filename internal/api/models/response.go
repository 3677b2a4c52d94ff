package models

import "inventory-release/internal/backtest"

// DecideResponse is one period's recommendation.
type DecideResponse struct {
	Quantity  float64       `json:"quantity"`
	Stage     string        `json:"stage"`
	Trial     float64       `json:"trial"`
	Threshold float64       `json:"threshold"`
	Solver    *SolverStatus `json:"solver,omitempty"`
}

// SolverStatus reports how the stage-2 root search ended.
type SolverStatus struct {
	Status     string  `json:"status"`
	X          float64 `json:"x"`
	Iterations int     `json:"iterations"`
}

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID      string               `json:"id,omitempty"`
	Status  string               `json:"status"`
	Summary SimulateSummary      `json:"summary"`
	Ledger  []backtest.LedgerRow `json:"ledger,omitempty"`
}

// SimulateSummary contains aggregated run results
type SimulateSummary struct {
	Scenario        string  `json:"scenario"`
	Strategy        string  `json:"strategy"`
	Periods         int     `json:"periods"`
	TotalReleased   float64 `json:"total_released"`
	Remaining       float64 `json:"remaining"`
	TotalRevenue    string  `json:"total_revenue"`
	TotalHoldingFee string  `json:"total_holding_fee"`
	NetProfit       string  `json:"net_profit"`
}

// CompareResponse ranks strategies by net profit.
type CompareResponse struct {
	Scenario    string             `json:"scenario"`
	ShadowPrice float64            `json:"shadow_price"`
	Rankings    []ComparisonResult `json:"rankings"`
}

// ComparisonResult contains results for one strategy
type ComparisonResult struct {
	Rank      int     `json:"rank"`
	Strategy  string  `json:"strategy"`
	Revenue   float64 `json:"revenue"`
	NetProfit float64 `json:"net_profit"`
	Released  float64 `json:"released"`
	Ratio     float64 `json:"competitive_ratio"`
}

// OfflineResponse is the hindsight shadow-price plan.
type OfflineResponse struct {
	ShadowPrice float64   `json:"shadow_price"`
	Sales       []float64 `json:"sales"`
	TotalSold   float64   `json:"total_sold"`
	Revenue     float64   `json:"revenue"`
	Residual    float64   `json:"residual"`
	Feasible    bool      `json:"feasible"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScenarioInfo represents one scenario file
type ScenarioInfo struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	File     string       `json:"file"`
	Periods  int          `json:"periods"`
	Strategy string       `json:"strategy,omitempty"`
	Policy   PolicyConfig `json:"policy"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
