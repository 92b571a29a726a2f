package report

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/angeloszaimis/locust-compare/internal/dataset"
	"github.com/angeloszaimis/locust-compare/internal/validator"
)

// Ratio marshals finite values as JSON numbers and the rest as strings,
// since JSON has no representation for Inf or NaN.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return json.Marshal(f)
}

type Row struct {
	Name  string `json:"name"`
	New   string `json:"new"`
	Old   string `json:"old"`
	Ratio Ratio  `json:"ratio"`
}

type Document struct {
	Verdict     string  `json:"verdict"`
	Column      string  `json:"column"`
	NewColumn   string  `json:"new_column"`
	OldColumn   string  `json:"old_column"`
	Factor      float64 `json:"factor"`
	Summary     Summary `json:"summary"`
	Offending   []Row   `json:"offending"`
	Comparisons []Row   `json:"comparisons"`
}

func NewDocument(v validator.Verdict) Document {
	return Document{
		Verdict:     v.Outcome.String(),
		Column:      v.Column,
		NewColumn:   dataset.NewColumn(v.Column),
		OldColumn:   dataset.OldColumn(v.Column),
		Factor:      v.Factor,
		Summary:     Summarize(v),
		Offending:   rows(v.Offending()),
		Comparisons: rows(v.Comparisons),
	}
}

// JSON writes the verdict as an indented JSON document.
func JSON(w io.Writer, v validator.Verdict) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(v))
}

func rows(cs []validator.Comparison) []Row {
	out := make([]Row, 0, len(cs))
	for _, c := range cs {
		out = append(out, Row{
			Name:  c.Name,
			New:   c.New.String(),
			Old:   c.Old.String(),
			Ratio: Ratio(c.Ratio),
		})
	}
	return out
}
