package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/angeloszaimis/locust-compare/internal/dataset"
	"github.com/angeloszaimis/locust-compare/internal/validator"
)

var (
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Headline is the one-line description of an outcome.
func Headline(o validator.Outcome) string {
	switch o {
	case validator.Pass:
		return "Success! All requests are below the given threshold factor"
	case validator.Fail:
		return "Regression: one of the requests is above the given threshold factor"
	default:
		return "Inconclusive: no request is above the threshold factor, but not all are below it"
	}
}

// Text writes a human-readable diagnostic for v.
func Text(w io.Writer, v validator.Verdict) error {
	style := errorStyle
	switch v.Outcome {
	case validator.Pass:
		style = passStyle
	case validator.Fail:
		style = failStyle
	}

	newCol, oldCol := dataset.NewColumn(v.Column), dataset.OldColumn(v.Column)

	_, err := fmt.Fprintf(w, "%s %s\n%s %s, %s\n%s %s\n",
		style.Render(v.Outcome.String()), Headline(v.Outcome),
		labelStyle.Render("Columns:"), newCol, oldCol,
		labelStyle.Render("Given factor:"), FormatRatio(v.Factor),
	)
	if err != nil {
		return err
	}

	if offending := v.Offending(); len(offending) > 0 {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", labelStyle.Render("Offending:"), render(newCol, oldCol, offending)); err != nil {
			return err
		}
	}

	s := Summarize(v)
	_, err = fmt.Fprintf(w, "%s\n%s\n%s compared=%d offending=%d non-finite=%d max=%s mean=%s p95=%s\n",
		labelStyle.Render("Factors:"), render(newCol, oldCol, v.Comparisons),
		labelStyle.Render("Summary:"), s.Compared, s.Offending, s.NonFinite,
		FormatRatio(s.Max), FormatRatio(s.Mean), FormatRatio(s.P95),
	)

	return err
}

// FormatRatio prints the shortest exact form of r; Inf and NaN are spelled
// out.
func FormatRatio(r float64) string {
	switch {
	case math.IsInf(r, 1):
		return "+Inf"
	case math.IsInf(r, -1):
		return "-Inf"
	case math.IsNaN(r):
		return "NaN"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func render(newCol, oldCol string, cs []validator.Comparison) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(dataset.KeyColumn, newCol, oldCol, "ratio")

	for _, c := range cs {
		t.Row(c.Name, cell(c.New), cell(c.Old), FormatRatio(c.Ratio))
	}

	return t.String()
}

func cell(v dataset.Value) string {
	if v.IsMissing() {
		return "-"
	}
	return v.String()
}
