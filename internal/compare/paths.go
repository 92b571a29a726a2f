package compare

import (
	"fmt"
	"path/filepath"
)

// ResultSet selects one of the two tables Locust writes per run.
type ResultSet string

const (
	Distribution ResultSet = "distribution"
	Requests     ResultSet = "requests"
)

// ResultSets lists every table rotated together as a baseline.
var ResultSets = []ResultSet{Distribution, Requests}

// Paths is the file layout for one prefix.
type Paths struct {
	Dir    string
	Prefix string
}

func NewPaths(dir, prefix string) Paths {
	return Paths{Dir: dir, Prefix: prefix}
}

// Current is the file written by the latest Locust run.
func (p Paths) Current(set ResultSet) string {
	return p.join(fmt.Sprintf("%s_%s.csv", p.Prefix, set))
}

// Previous is the baseline the current run is compared against.
func (p Paths) Previous(set ResultSet) string {
	return p.join(fmt.Sprintf("%s_%s_previous.csv", p.Prefix, set))
}

// Comparison is where a merged table is written.
func (p Paths) Comparison(set ResultSet) string {
	return p.join(fmt.Sprintf("%s_comparison_%s.csv", p.Prefix, set))
}

func (p Paths) join(name string) string {
	if p.Dir == "" {
		return name
	}
	return filepath.Join(p.Dir, name)
}
