package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"inventory-release/internal/analysis"
	"inventory-release/internal/backtest"
	"inventory-release/internal/config"
	"inventory-release/internal/model"
	"inventory-release/internal/policy"
	"inventory-release/internal/strategy"
	"inventory-release/pkg/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	configFlag := &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to scenario YAML",
		Required: true,
	}
	return &cli.App{
		Name:  "release",
		Usage: "Online inventory release: simulate, compare and advise",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "simulate",
				Usage: "Run one strategy over a scenario and write the ledger CSV",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{Name: "strategy", Usage: "Override strategy.name from the config"},
					&cli.StringFlag{Name: "out", Value: "results/ledger.csv", Usage: "Output CSV path"},
				},
				Action: cmdSimulate,
			},
			{
				Name:   "offline",
				Usage:  "Solve the hindsight shadow-price plan for a scenario",
				Flags:  []cli.Flag{configFlag},
				Action: cmdOffline,
			},
			{
				Name:   "compare",
				Usage:  "Run every strategy over a scenario and rank by net profit",
				Flags:  []cli.Flag{configFlag},
				Action: cmdCompare,
			},
			{
				Name:      "rank",
				Usage:     "Rank scenarios by hindsight revenue",
				ArgsUsage: "scenario.yaml [scenario.yaml | dir ...]",
				Action:    cmdRank,
			},
			{
				Name:  "advise",
				Usage: "Interactive day-by-day release advice",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "q", Usage: "Initial stock", Required: true},
					&cli.Float64Flag{Name: "min", Usage: "Floor price m", Required: true},
					&cli.Float64Flag{Name: "max", Usage: "Ceiling price M", Required: true},
					&cli.Float64Flag{Name: "a", Value: 250, Usage: "Demand intercept"},
					&cli.Float64Flag{Name: "b", Value: 5, Usage: "Demand slope"},
					&cli.Float64Flag{Name: "h", Usage: "Holding cost per unit per day"},
					&cli.Float64Flag{Name: "delta", Value: model.DefaultDelta, Usage: "Demand shock half-width"},
				},
				Action: cmdAdvise,
			},
		},
	}
}

func cmdSimulate(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	name := cfg.Strategy.Name
	if s := c.String("strategy"); s != "" {
		name = s
	}
	series := cfg.Series()
	params := cfg.Policy.ToModelParams()

	strat, err := strategy.New(name, series.Prices, params)
	if err != nil {
		return err
	}
	res, err := backtest.New().Run(series, params, strat)
	if err != nil {
		return err
	}

	outPath := c.String("out")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := backtest.WriteLedgerCSV(outPath, res.Ledger); err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Wrote %d rows to %s\n", len(res.Ledger), outPath)
	fmt.Fprintf(w, "%-8s %-8s %-14s %-10s %-10s\n", "period", "price", "stage", "released", "remaining")
	for _, r := range res.Ledger {
		fmt.Fprintf(w, "%-8d %-8.2f %-14s %-10.2f %-10.2f\n", r.Period, r.Price, r.Stage, r.Released, r.Remaining)
	}
	fmt.Fprintf(w, "Strategy=%s Revenue=%s Holding=%s Net=%s Unsold=%.2f\n",
		res.Strategy,
		res.TotalRevenue.StringFixed(2),
		res.TotalHoldingFee.StringFixed(2),
		res.NetProfit.StringFixed(2),
		res.Remaining,
	)
	return nil
}

func cmdOffline(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	p := cfg.Policy.ToModelParams().WithDefaults()
	res, err := policy.SolveOffline(p.Q, cfg.Prices, p.A, p.B, p.Delta)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Shadow price λ*=%.4f feasible=%v solver=%s\n", res.ShadowPrice, res.Feasible, res.Solver.Status)
	fmt.Fprintf(w, "%-8s %-8s %-10s\n", "period", "price", "sales")
	for i, x := range res.Sales {
		fmt.Fprintf(w, "%-8d %-8.2f %-10.2f\n", i+1, cfg.Prices[i], x)
	}
	fmt.Fprintf(w, "Total sold=%.2f of %.2f Revenue=%.2f\n", res.TotalSold, p.Q, res.Revenue)
	return nil
}

func cmdCompare(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	series := cfg.Series()
	params := cfg.Policy.ToModelParams()

	engine := backtest.New()
	results := make([]*backtest.Result, 0, len(strategy.Names))
	for _, name := range strategy.Names {
		strat, err := strategy.New(name, series.Prices, params)
		if err != nil {
			return err
		}
		res, err := engine.Run(series, params, strat)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		results = append(results, res)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%-4s %-10s %-12s %-12s %-10s %-6s\n", "rank", "strategy", "revenue", "net", "released", "ratio")
	for _, r := range analysis.RankByRevenue(results, "offline") {
		fmt.Fprintf(w, "%-4d %-10s %-12.2f %-12.2f %-10.2f %-6.3f\n", r.Rank, r.Strategy, r.Revenue, r.NetProfit, r.Released, r.Ratio)
	}
	return nil
}

func cmdRank(c *cli.Context) error {
	paths, err := expandScenarioPaths(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no scenario files given")
	}

	// Each scenario carries its own policy.
	var ranked []analysis.Potential
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			logger.Log.Warn().Err(err).Str("file", p).Msg("skipping scenario")
			continue
		}
		pot, err := analysis.ComputePotential(cfg.Series(), cfg.Policy.ToModelParams())
		if err != nil {
			logger.Log.Warn().Err(err).Str("file", p).Msg("skipping scenario")
			continue
		}
		ranked = append(ranked, pot)
	}
	analysis.SortByOfflineRevenue(ranked)

	w := c.App.Writer
	fmt.Fprintf(w, "%-4s %-20s %-8s %-10s %-13s %-10s %-12s\n", "rank", "scenario", "count", "p95-p05", "min/max", "λ*", "offline$")
	for i, r := range ranked {
		fmt.Fprintf(w, "%-4d %-20s %-8d %-10.2f %-6.1f/%-6.1f %-10.3f %-12.2f\n",
			i+1, r.Name, r.Count, r.SpreadP95P05, r.MinPrice, r.MaxPrice, r.ShadowPrice, r.OfflineRevenue)
	}
	return nil
}

func expandScenarioPaths(args []string) ([]string, error) {
	var out []string
	for _, p := range args {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			out = append(out, filepath.Join(p, e.Name()))
		}
	}
	return out, nil
}
