package catalog

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PriceStats summarizes starting prices for a group of packages
type PriceStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// TypeStats holds statistics for one retreat type
type TypeStats struct {
	Packages   int         `json:"packages"`
	Departures int         `json:"departures"`
	Prices     *PriceStats `json:"prices,omitempty"`
}

// Stats contains catalog statistics
type Stats struct {
	TotalPackages int                       `json:"totalPackages"`
	ComingSoon    int                       `json:"comingSoon"`
	Prices        *PriceStats               `json:"prices,omitempty"`
	Types         map[RetreatType]TypeStats `json:"types"`
}

// Stats computes catalog statistics. Every retreat type appears in the
// result, including types with no packages.
func (s *Store) Stats() Stats {
	st := Stats{
		TotalPackages: len(s.packages),
		Types:         make(map[RetreatType]TypeStats, len(RetreatTypes())),
	}

	all := make([]float64, 0, len(s.packages))
	for _, p := range s.packages {
		all = append(all, p.PriceFrom)
		if p.ComingSoon() {
			st.ComingSoon++
		}
	}
	st.Prices = priceStats(all)

	for _, t := range RetreatTypes() {
		pkgs := s.FilterByType(t)
		ts := TypeStats{Packages: len(pkgs)}
		prices := make([]float64, len(pkgs))
		for i, p := range pkgs {
			prices[i] = p.PriceFrom
			ts.Departures += len(p.Departures)
		}
		ts.Prices = priceStats(prices)
		st.Types[t] = ts
	}

	return st
}

func priceStats(prices []float64) *PriceStats {
	if len(prices) == 0 {
		return nil
	}
	return &PriceStats{
		Min:  floats.Min(prices),
		Max:  floats.Max(prices),
		Mean: stat.Mean(prices, nil),
	}
}
