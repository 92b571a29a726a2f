package report

import (
	"math"
	"sort"

	"github.com/angeloszaimis/locust-compare/internal/validator"
)

// Summary condenses the ratio series of a verdict. Non-finite ratios are
// counted but excluded from the statistics.
type Summary struct {
	Compared  int     `json:"compared"`
	Offending int     `json:"offending"`
	NonFinite int     `json:"non_finite"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Mean      float64 `json:"mean"`
	P50       float64 `json:"p50"`
	P95       float64 `json:"p95"`
}

func Summarize(v validator.Verdict) Summary {
	s := Summary{
		Compared:  len(v.Comparisons),
		Offending: len(v.Offending()),
	}

	finite := make([]float64, 0, len(v.Comparisons))
	for _, r := range v.Ratios() {
		if math.IsInf(r, 0) || math.IsNaN(r) {
			s.NonFinite++
			continue
		}
		finite = append(finite, r)
	}

	if len(finite) == 0 {
		return s
	}

	sort.Float64s(finite)

	s.Min = finite[0]
	s.Max = finite[len(finite)-1]
	s.Mean = average(finite)
	s.P50 = percentile(finite, 0.50)
	s.P95 = percentile(finite, 0.95)

	return s
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
