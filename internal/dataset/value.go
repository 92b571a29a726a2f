package dataset

import (
	"strconv"
	"strings"
)

// Value is a single table cell. The zero value is Missing.
type Value struct {
	raw     string
	present bool
}

// Missing returns the marker used for cells absent from one side of a merge.
func Missing() Value {
	return Value{}
}

// NewValue wraps a raw cell as read from the source file.
func NewValue(raw string) Value {
	return Value{raw: raw, present: true}
}

// missingMarkers are the cell texts result files use for "no value".
// Older Locust versions write N/A for percentiles of entries with no requests.
var missingMarkers = map[string]bool{
	"":     true,
	"N/A":  true,
	"n/a":  true,
	"NA":   true,
	"NaN":  true,
	"nan":  true,
	"NULL": true,
	"null": true,
}

// ParseValue wraps a cell read from a result file, mapping missing-value
// markers to Missing.
func ParseValue(raw string) Value {
	if missingMarkers[strings.TrimSpace(raw)] {
		return Missing()
	}
	return NewValue(raw)
}

// Number builds a present numeric value.
func Number(f float64) Value {
	return NewValue(strconv.FormatFloat(f, 'f', -1, 64))
}

func (v Value) IsMissing() bool {
	return !v.present
}

// Float parses the cell as a number. ok is false for Missing cells and for
// text that is not numeric.
func (v Value) Float() (f float64, ok bool) {
	if !v.present {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// String returns the raw text, or an empty string when Missing.
func (v Value) String() string {
	return v.raw
}
