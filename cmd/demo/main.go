package main

import (
	"flag"
	"fmt"
	"os"

	"inventory-release/internal/backtest"
	"inventory-release/internal/config"
	"inventory-release/internal/model"
	"inventory-release/internal/policy"
	"inventory-release/internal/strategy"
	"inventory-release/pkg/logger"
)

// Demo:
// - Use the five-period worked example (or a scenario YAML via --config)
// - Run the online policy period by period, printing each decision
// - Solve the hindsight plan for the same prices and compare revenue
func main() {
	cfgPath := flag.String("config", "", "Path to scenario YAML (optional)")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/ledger.csv)")
	flag.Parse()

	params := model.PolicyParams{Q: 200, MinPrice: 30, MaxPrice: 40, A: 100, B: 1, Delta: model.DefaultDelta}
	series := model.PriceSeries{Name: "paper", Prices: []float64{38, 35, 32, 36, 37}}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("load config")
		}
		params = cfg.Policy.ToModelParams().WithDefaults()
		series = cfg.Series()
	}

	eng, err := policy.NewEngine(params)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("build engine")
	}

	fmt.Printf("Scenario %s: Q=%.0f m=%.2f M=%.2f demand=%.1f-%.1fp h=%.2f\n",
		series.Name, params.Q, params.MinPrice, params.MaxPrice, params.A, params.B, params.HoldingCost)
	fmt.Printf("Stage-2 threshold (period 1): %.2f\n\n", eng.Threshold(1))

	fmt.Printf("%-6s %-8s %-14s %-10s %-10s %-10s\n", "t", "price", "stage", "trial", "release", "sold")
	sold := 0.0
	for _, pp := range series.Periods() {
		d, err := eng.Decide(policy.Request{
			Price:       pp.Price,
			Accumulated: sold,
			Period:      pp.Period,
			IsLast:      pp.IsLast,
		})
		if err != nil {
			logger.Log.Fatal().Err(err).Int("period", pp.Period).Msg("decide")
		}
		sold += d.Quantity
		fmt.Printf("%-6d %-8.2f %-14s %-10.2f %-10.2f %-10.2f\n", pp.Period, pp.Price, d.Stage, d.Trial, d.Quantity, sold)
	}

	online, err := strategy.NewOnlineStrategy(params)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("build strategy")
	}
	res, err := backtest.New().Run(series, params, online)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("run")
	}

	off, err := policy.SolveOffline(params.Q, series.Prices, params.A, params.B, params.Delta)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("offline")
	}

	net, _ := res.NetProfit.Float64()
	fmt.Printf("\nOnline net profit:   %s\n", res.NetProfit.StringFixed(2))
	fmt.Printf("Offline revenue:     %.2f (λ*=%.4f, sold %.2f, feasible=%v)\n", off.Revenue, off.ShadowPrice, off.TotalSold, off.Feasible)
	if off.Revenue > 0 {
		fmt.Printf("Online / offline:    %.3f\n", net/off.Revenue)
	}

	if *outCSV != "" {
		if err := backtest.WriteLedgerCSV(*outCSV, res.Ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote ledger to %s\n", *outCSV)
	}
}
