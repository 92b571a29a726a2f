// Package dataset loads Locust result tables from CSV and merges a current
// and a previous run into one comparison table.
//
// Merging is a full outer join on a key column (normally "Name"). Every
// non-key column is suffixed: "_new" for the current run and "_old" for the
// previous one. Cells that exist on one side only are Missing, never zero.
//
//	cur, err := dataset.Load(fs, "example_distribution.csv", dataset.KeyColumn)
//	prev, err := dataset.Load(fs, "example_distribution_previous.csv", dataset.KeyColumn)
//	merged := dataset.Merge(cur, prev, dataset.KeyColumn)
package dataset
