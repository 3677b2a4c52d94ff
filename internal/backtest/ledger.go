package backtest

import (
	"github.com/shopspring/decimal"

	"inventory-release/internal/model"
)

// LedgerRow is one row of per-period output.
// This is the primary artifact for "what happened" in a run.
type LedgerRow struct {
	Index  int         `json:"index"`
	Period int         `json:"period"`
	Price  float64     `json:"price"`
	Stage  model.Stage `json:"stage"`

	Requested float64 `json:"requested"`
	Released  float64 `json:"released"`

	Revenue      float64 `json:"revenue"`
	HoldingFee   float64 `json:"holding_fee"`
	NetProfit    float64 `json:"net_profit"`
	CumNetProfit float64 `json:"cum_net_profit"`

	Accumulated float64 `json:"accumulated"`
	Remaining   float64 `json:"remaining"`
}

type Result struct {
	Strategy string      `json:"strategy"`
	Ledger   []LedgerRow `json:"ledger"`

	TotalReleased float64 `json:"total_released"`
	Remaining     float64 `json:"remaining"`

	// Money totals are summed in decimal and rounded to cents.
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalHoldingFee decimal.Decimal `json:"total_holding_fee"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}
