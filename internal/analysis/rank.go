package analysis

import (
	"sort"

	"inventory-release/internal/backtest"
	"inventory-release/internal/model"
)

// RankedRun is one strategy's outcome in a comparison.
type RankedRun struct {
	Rank      int     `json:"rank"`
	Strategy  string  `json:"strategy"`
	Revenue   float64 `json:"revenue"`
	NetProfit float64 `json:"net_profit"`
	Released  float64 `json:"released"`
	// Ratio is NetProfit over the benchmark's net profit; 0 when there is no benchmark.
	Ratio float64 `json:"ratio"`
}

// CompetitiveRatio is online/offline, or 0 when offline is not positive.
func CompetitiveRatio(online, offline float64) float64 {
	if !(offline > 0) {
		return 0
	}
	return online / offline
}

// RankByRevenue sorts runs by descending net profit, breaking ties by name.
// Ratios are taken against the run named benchmark when present.
func RankByRevenue(results []*backtest.Result, benchmark string) []RankedRun {
	var bench float64
	for _, r := range results {
		if r != nil && r.Strategy == benchmark {
			bench, _ = r.NetProfit.Float64()
		}
	}

	out := make([]RankedRun, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		rev, _ := r.TotalRevenue.Float64()
		net, _ := r.NetProfit.Float64()
		out = append(out, RankedRun{
			Strategy:  r.Strategy,
			Revenue:   rev,
			NetProfit: net,
			Released:  r.TotalReleased,
			Ratio:     CompetitiveRatio(net, bench),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].NetProfit != out[j].NetProfit {
			return out[i].NetProfit > out[j].NetProfit
		}
		return out[i].Strategy < out[j].Strategy
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// RankSeriesByOfflineRevenue computes potentials per scenario and sorts
// descending by hindsight revenue. Scenarios the solver rejects are skipped.
func RankSeriesByOfflineRevenue(series []model.PriceSeries, params model.PolicyParams) []Potential {
	out := make([]Potential, 0, len(series))
	for _, s := range series {
		p, err := ComputePotential(s, params)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	SortByOfflineRevenue(out)
	return out
}

// SortByOfflineRevenue orders potentials by descending hindsight revenue.
func SortByOfflineRevenue(ps []Potential) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].OfflineRevenue > ps[j].OfflineRevenue
	})
}
