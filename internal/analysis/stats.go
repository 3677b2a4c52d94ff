package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"inventory-release/internal/model"
	"inventory-release/internal/policy"
)

// SeriesStats summarises a price scenario.
type SeriesStats struct {
	Name  string `json:"name"`
	Count int    `json:"count"`

	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MeanPrice float64 `json:"mean_price"`
	P05Price  float64 `json:"p05_price"`
	P95Price  float64 `json:"p95_price"`

	SpreadP95P05 float64 `json:"spread_p95_p05"`
}

func ComputeSeriesStats(series model.PriceSeries) SeriesStats {
	s := SeriesStats{Name: series.Name}
	if len(series.Prices) == 0 {
		return s
	}
	vals := append([]float64(nil), series.Prices...)
	sort.Float64s(vals)

	s.Count = len(vals)
	s.MinPrice = floats.Min(vals)
	s.MaxPrice = floats.Max(vals)
	s.MeanPrice = stat.Mean(vals, nil)
	s.P05Price = percentileSorted(vals, 0.05)
	s.P95Price = percentileSorted(vals, 0.95)
	s.SpreadP95P05 = s.P95Price - s.P05Price
	return s
}

// Potential is a scenario summary plus the hindsight revenue for a given seller.
type Potential struct {
	SeriesStats
	ShadowPrice    float64 `json:"shadow_price"`
	OfflineRevenue float64 `json:"offline_revenue"`
}

func ComputePotential(series model.PriceSeries, params model.PolicyParams) (Potential, error) {
	p := Potential{SeriesStats: ComputeSeriesStats(series)}
	params = params.WithDefaults()
	res, err := policy.SolveOffline(params.Q, series.Prices, params.A, params.B, params.Delta)
	if err != nil {
		return p, err
	}
	p.ShadowPrice = res.ShadowPrice
	p.OfflineRevenue = res.Revenue
	return p, nil
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
