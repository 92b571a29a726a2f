package main

import (
	"errors"
	"fmt"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/angeloszaimis/locust-compare/internal/compare"
	"github.com/angeloszaimis/locust-compare/internal/validator"
)

const (
	exitOK = iota
	exitFail
	exitIndeterminate
	exitError
	exitUsage
)

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var (
		unknown *compare.UnknownOperationError
		invalid validation.Errors
		usage   *usageError
	)

	switch {
	case errors.Is(err, validator.ErrThresholdFail):
		return exitFail
	case errors.Is(err, validator.ErrThresholdIndeterminate):
		return exitIndeterminate
	case errors.As(err, &unknown),
		errors.As(err, &invalid),
		errors.As(err, &usage),
		errors.Is(err, compare.ErrMissingThreshold),
		errors.Is(err, validator.ErrInvalidFactor):
		return exitUsage
	default:
		return exitError
	}
}

func reportError(w io.Writer, err error) {
	var thresholdErr *validator.ThresholdError
	if errors.As(err, &thresholdErr) {
		fmt.Fprintf(w, "%s: %v\n", thresholdErr.Verdict.Outcome, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// usageError marks bad flags or arguments rejected before any work starts.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
