package model

import "errors"

// PriceSeries matches the JSON shape of a price scenario file.
//
// Example:
// {
//   "name": "paper",
//   "prices": [38, 35, 32, 36, 37]
// }
type PriceSeries struct {
	Name   string    `json:"name" yaml:"name"`
	Prices []float64 `json:"prices" yaml:"prices"`
}

// PricePeriod is one period of a series. Period is 1-based.
type PricePeriod struct {
	Index  int
	Period int
	Price  float64
	IsLast bool
}

// Periods expands the series into per-period tuples in order.
func (s PriceSeries) Periods() []PricePeriod {
	out := make([]PricePeriod, len(s.Prices))
	for i, p := range s.Prices {
		out[i] = PricePeriod{
			Index:  i,
			Period: i + 1,
			Price:  p,
			IsLast: i == len(s.Prices)-1,
		}
	}
	return out
}

func (s PriceSeries) Validate() error {
	if len(s.Prices) == 0 {
		return errors.New("price series is empty")
	}
	for _, p := range s.Prices {
		if !(p > 0) {
			return errors.New("prices must be > 0")
		}
	}
	return nil
}
