package dataset

import "fmt"

// KeyColumn is the column Locust uses to name each request entry.
const KeyColumn = "Name"

const (
	SuffixNew = "_new"
	SuffixOld = "_old"
)

// Record is one row of a Table.
type Record struct {
	Name   string
	Values map[string]Value
}

// Get returns the cell for column, or Missing if the record has none.
func (r Record) Get(column string) Value {
	return r.Values[column]
}

// Table is an ordered set of records sharing one header. Columns includes
// the key column first.
type Table struct {
	Key     string
	Columns []string
	Records []Record
}

// HasColumn reports whether column is part of the header.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// MetricColumns returns the header without the key column.
func (t *Table) MetricColumns() []string {
	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c != t.Key {
			cols = append(cols, c)
		}
	}
	return cols
}

func (t *Table) Len() int {
	return len(t.Records)
}

// MergedTable is the outer join of a current and a previous Table.
type MergedTable struct {
	Table
}

// NewColumn and OldColumn name the suffixed variants of a metric column.
func NewColumn(column string) string { return column + SuffixNew }
func OldColumn(column string) string { return column + SuffixOld }

// DataLoadError reports an input table that is missing or cannot be parsed.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load table: %v", e.Err)
	}
	return fmt.Sprintf("load table %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
