package dataset

import "sort"

// Merge outer-joins current and previous on key. Every key present in either
// table yields a row; rows are ordered by key. A key repeated on both sides
// yields one row per pairing.
func Merge(current, previous *Table, key string) *MergedTable {
	newCols := suffixed(current, SuffixNew)
	oldCols := suffixed(previous, SuffixOld)

	columns := make([]string, 0, 1+len(newCols)+len(oldCols))
	columns = append(columns, key)
	columns = append(columns, newCols...)
	columns = append(columns, oldCols...)

	merged := &MergedTable{Table: Table{Key: key, Columns: columns}}

	curByKey := index(current)
	prevByKey := index(previous)

	for _, name := range unionKeys(curByKey, prevByKey) {
		curRecs := curByKey[name]
		prevRecs := prevByKey[name]

		// A nil side stands in for the missing half of the join.
		if len(curRecs) == 0 {
			curRecs = []*Record{nil}
		}
		if len(prevRecs) == 0 {
			prevRecs = []*Record{nil}
		}

		for _, cur := range curRecs {
			for _, prev := range prevRecs {
				rec := Record{
					Name:   name,
					Values: make(map[string]Value, len(columns)-1),
				}
				fill(rec.Values, cur, current, SuffixNew)
				fill(rec.Values, prev, previous, SuffixOld)
				merged.Records = append(merged.Records, rec)
			}
		}
	}

	return merged
}

func suffixed(t *Table, suffix string) []string {
	cols := t.MetricColumns()
	for i, c := range cols {
		cols[i] = c + suffix
	}
	return cols
}

// fill copies src's metric cells into dst under suffixed names. A nil src
// marks every column of t as Missing.
func fill(dst map[string]Value, src *Record, t *Table, suffix string) {
	for _, col := range t.MetricColumns() {
		if src == nil {
			dst[col+suffix] = Missing()
			continue
		}
		dst[col+suffix] = src.Get(col)
	}
}

func index(t *Table) map[string][]*Record {
	idx := make(map[string][]*Record, len(t.Records))
	for i := range t.Records {
		rec := &t.Records[i]
		idx[rec.Name] = append(idx[rec.Name], rec)
	}
	return idx
}

func unionKeys(a, b map[string][]*Record) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
