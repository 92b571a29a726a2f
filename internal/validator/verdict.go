package validator

import (
	"errors"
	"fmt"
	"math"

	"github.com/angeloszaimis/locust-compare/internal/dataset"
)

type Outcome int

const (
	Pass Outcome = iota
	Fail
	Error
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Comparison is one row of the compared sub-table.
type Comparison struct {
	Name  string
	New   dataset.Value
	Old   dataset.Value
	Ratio float64
}

type Verdict struct {
	Outcome     Outcome
	Column      string
	Factor      float64
	Comparisons []Comparison
}

// Offending returns the rows that did not stay strictly below the factor.
func (v Verdict) Offending() []Comparison {
	var out []Comparison
	for _, c := range v.Comparisons {
		if !(c.Ratio < v.Factor) {
			out = append(out, c)
		}
	}
	return out
}

// Ratios returns the ratio series in row order.
func (v Verdict) Ratios() []float64 {
	out := make([]float64, len(v.Comparisons))
	for i, c := range v.Comparisons {
		out[i] = c.Ratio
	}
	return out
}

// Err converts a non-passing verdict to a *ThresholdError.
func (v Verdict) Err() error {
	if v.Outcome == Pass {
		return nil
	}
	return &ThresholdError{Verdict: v}
}

var (
	ErrThresholdFail          = errors.New("threshold exceeded")
	ErrThresholdIndeterminate = errors.New("threshold result inconclusive")
	ErrInvalidFactor          = errors.New("factor must be a positive finite number")
)

// ThresholdError carries a FAIL or ERROR verdict. It matches
// ErrThresholdFail or ErrThresholdIndeterminate with errors.Is.
type ThresholdError struct {
	Verdict Verdict
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("%v: column %q, factor %g, %d of %d rows not below factor",
		e.Unwrap(), e.Verdict.Column, e.Verdict.Factor,
		len(e.Verdict.Offending()), len(e.Verdict.Comparisons))
}

func (e *ThresholdError) Unwrap() error {
	if e.Verdict.Outcome == Fail {
		return ErrThresholdFail
	}
	return ErrThresholdIndeterminate
}

// ColumnNotFoundError reports a metric whose _new or _old variant is absent
// from the merged table.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in both runs (available: %v)", e.Column, e.Available)
}

// NonNumericError reports a cell in the compared column that is not a number.
type NonNumericError struct {
	Name   string
	Column string
	Raw    string
}

func (e *NonNumericError) Error() string {
	return fmt.Sprintf("row %q column %q: %q is not numeric", e.Name, e.Column, e.Raw)
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
