package backtest

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"inventory-release/internal/model"
	"inventory-release/internal/strategy"
)

// centsPlaces is the rounding applied to reported money totals.
const centsPlaces = 2

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run drives a strategy over a price series starting from a full stock of params.Q.
// Requested releases are clipped to the stock on hand, so the run never sells
// more than Q in total.
func (e *Engine) Run(series model.PriceSeries, params model.PolicyParams, strat strategy.Strategy) (*Result, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if !(params.Q > 0) {
		return nil, model.ErrInvalidStock
	}

	ledger := make([]LedgerRow, 0, len(series.Prices))
	accumulated := 0.0
	revenue := decimal.Zero
	fees := decimal.Zero
	cum := 0.0

	for _, pp := range series.Periods() {
		remaining := math.Max(0, params.Q-accumulated)
		rel, err := strat.Decide(strategy.Context{
			Index:       pp.Index,
			Period:      pp.Period,
			IsLast:      pp.IsLast,
			Price:       pp.Price,
			Accumulated: accumulated,
			Remaining:   remaining,
		})
		if err != nil {
			return nil, fmt.Errorf("period %d decide: %w", pp.Period, err)
		}

		requested := rel.Quantity
		released := math.Min(math.Max(0, requested), remaining)
		stage := rel.Stage
		if remaining <= 0 && stage != model.StageLiquidation {
			stage = model.StageOutOfStock
		}
		accumulated += released

		rev := released * pp.Price
		fee := released * float64(pp.Period-1) * params.HoldingCost
		net := rev - fee
		cum += net
		revenue = revenue.Add(decimal.NewFromFloat(rev))
		fees = fees.Add(decimal.NewFromFloat(fee))

		ledger = append(ledger, LedgerRow{
			Index:  pp.Index,
			Period: pp.Period,
			Price:  pp.Price,
			Stage:  stage,

			Requested: requested,
			Released:  released,

			Revenue:      rev,
			HoldingFee:   fee,
			NetProfit:    net,
			CumNetProfit: cum,

			Accumulated: accumulated,
			Remaining:   math.Max(0, params.Q-accumulated),
		})
	}

	return &Result{
		Strategy:        strat.Name(),
		Ledger:          ledger,
		TotalReleased:   accumulated,
		Remaining:       math.Max(0, params.Q-accumulated),
		TotalRevenue:    revenue.Round(centsPlaces),
		TotalHoldingFee: fees.Round(centsPlaces),
		NetProfit:       revenue.Sub(fees).Round(centsPlaces),
	}, nil
}
