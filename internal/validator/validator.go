package validator

import (
	"math"
	"strings"

	"github.com/angeloszaimis/locust-compare/internal/dataset"
)

// Ratio returns newV/oldV. A missing or zero old value yields +Inf and a
// missing new value yields NaN.
func Ratio(newV, oldV dataset.Value) (float64, bool) {
	if oldV.IsMissing() {
		return math.Inf(1), true
	}
	o, ok := oldV.Float()
	if !ok {
		return 0, false
	}
	if o == 0 {
		return math.Inf(1), true
	}

	if newV.IsMissing() {
		return math.NaN(), true
	}
	n, ok := newV.Float()
	if !ok {
		return 0, false
	}

	return n / o, true
}

// Validate compares column across every row of merged and classifies the
// result against factor.
func Validate(merged *dataset.MergedTable, column string, factor float64) (Verdict, error) {
	if !validFactor(factor) {
		return Verdict{}, ErrInvalidFactor
	}

	newCol, oldCol := dataset.NewColumn(column), dataset.OldColumn(column)
	if !merged.HasColumn(newCol) || !merged.HasColumn(oldCol) {
		return Verdict{}, &ColumnNotFoundError{Column: column, Available: baseColumns(merged)}
	}

	v := Verdict{
		Column:      column,
		Factor:      factor,
		Comparisons: make([]Comparison, 0, merged.Len()),
	}

	for _, rec := range merged.Records {
		c := Comparison{
			Name: rec.Name,
			New:  rec.Get(newCol),
			Old:  rec.Get(oldCol),
		}

		ratio, ok := Ratio(c.New, c.Old)
		if !ok {
			bad, col := c.Old, oldCol
			if _, numeric := c.Old.Float(); numeric || c.Old.IsMissing() {
				bad, col = c.New, newCol
			}
			return Verdict{}, &NonNumericError{Name: rec.Name, Column: col, Raw: bad.String()}
		}
		c.Ratio = ratio

		v.Comparisons = append(v.Comparisons, c)
	}

	v.Outcome = classify(v.Ratios(), factor)

	return v, nil
}

func classify(ratios []float64, factor float64) Outcome {
	for _, r := range ratios {
		if r > factor {
			return Fail
		}
	}

	// An empty series compared nothing and cannot pass.
	if len(ratios) == 0 {
		return Error
	}

	for _, r := range ratios {
		if !(r < factor) {
			return Error
		}
	}

	return Pass
}

// baseColumns lists metrics present with both suffixes.
func baseColumns(merged *dataset.MergedTable) []string {
	var out []string
	for _, col := range merged.MetricColumns() {
		base, ok := strings.CutSuffix(col, dataset.SuffixNew)
		if ok && merged.HasColumn(dataset.OldColumn(base)) {
			out = append(out, base)
		}
	}
	return out
}
