package compare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/angeloszaimis/locust-compare/internal/baseline"
	"github.com/angeloszaimis/locust-compare/internal/dataset"
	"github.com/angeloszaimis/locust-compare/internal/validator"
)

var ErrMissingThreshold = errors.New("column name is required for this option")

// Request selects one operation and its threshold arguments.
type Request struct {
	Operation Operation
	Column    string
	Factor    float64
}

// Report is the outcome of Run. Verdict is set for compare operations,
// Written for create_comparison and Baseline for create_baseline.
type Report struct {
	Operation Operation
	Verdict   *validator.Verdict
	Written   string
	Baseline  baseline.Result
}

type Comparer struct {
	fs     afero.Fs
	paths  Paths
	logger *slog.Logger
}

func NewComparer(fs afero.Fs, paths Paths, logger *slog.Logger) *Comparer {
	return &Comparer{
		fs:     fs,
		paths:  paths,
		logger: logger.With(slog.String("prefix", paths.Prefix)),
	}
}

// Run executes req. A FAIL or ERROR verdict is not an error here; callers
// inspect Report.Verdict or use Verdict.Err.
func (c *Comparer) Run(ctx context.Context, req Request) (Report, error) {
	rep := Report{Operation: req.Operation}

	if err := ctx.Err(); err != nil {
		return rep, err
	}

	switch req.Operation {
	case CreateBaseline:
		res, err := c.CreateBaseline()
		rep.Baseline = res
		return rep, err

	case CompareResultsDistribution, CompareResultsRequests:
		if req.Column == "" {
			return rep, ErrMissingThreshold
		}
		v, err := c.CompareResults(req.Operation.ResultSet(), req.Column, req.Factor)
		if err != nil {
			return rep, err
		}
		rep.Verdict = &v
		return rep, nil

	case CreateComparisonDistribution, CreateComparisonRequests:
		path, err := c.CreateComparison(req.Operation.ResultSet())
		rep.Written = path
		return rep, err

	default:
		return rep, &UnknownOperationError{Operation: string(req.Operation)}
	}
}

// Comparison loads the current and previous tables of set and merges them.
func (c *Comparer) Comparison(set ResultSet) (*dataset.MergedTable, error) {
	current, err := dataset.Load(c.fs, c.paths.Current(set), dataset.KeyColumn)
	if err != nil {
		return nil, err
	}

	previous, err := dataset.Load(c.fs, c.paths.Previous(set), dataset.KeyColumn)
	if err != nil {
		return nil, err
	}

	merged := dataset.Merge(current, previous, dataset.KeyColumn)

	c.logger.Debug("Merged result tables",
		slog.String("set", string(set)),
		slog.Int("current_rows", current.Len()),
		slog.Int("previous_rows", previous.Len()),
		slog.Int("merged_rows", merged.Len()))

	return merged, nil
}

// CompareResults validates column of set against factor.
func (c *Comparer) CompareResults(set ResultSet, column string, factor float64) (validator.Verdict, error) {
	merged, err := c.Comparison(set)
	if err != nil {
		return validator.Verdict{}, err
	}

	v, err := validator.Validate(merged, column, factor)
	if err != nil {
		return validator.Verdict{}, fmt.Errorf("validate %s: %w", set, err)
	}

	c.logger.Info("Compared results",
		slog.String("set", string(set)),
		slog.String("column", column),
		slog.Float64("factor", factor),
		slog.String("verdict", v.Outcome.String()),
		slog.Int("offending", len(v.Offending())))

	return v, nil
}

// CreateComparison writes the merged table of set and returns its path.
func (c *Comparer) CreateComparison(set ResultSet) (string, error) {
	merged, err := c.Comparison(set)
	if err != nil {
		return "", err
	}

	path := c.paths.Comparison(set)
	if err := dataset.Save(c.fs, path, &merged.Table); err != nil {
		return "", err
	}

	c.logger.Info("Created comparison", slog.String("file", path), slog.Int("rows", merged.Len()))

	return path, nil
}

// CreateBaseline rotates every result set of the current run into the
// previous slot.
func (c *Comparer) CreateBaseline() (baseline.Result, error) {
	pairs := make([]baseline.Pair, 0, len(ResultSets))
	for _, set := range ResultSets {
		pairs = append(pairs, baseline.Pair{
			Current:  c.paths.Current(set),
			Previous: c.paths.Previous(set),
		})
	}

	return baseline.Rotate(c.fs, pairs, c.logger)
}
