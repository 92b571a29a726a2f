package compare

import (
	"fmt"
	"strings"
)

type Operation string

const (
	CreateBaseline               Operation = "create_baseline"
	CompareResultsDistribution   Operation = "compare_results_distribution"
	CompareResultsRequests       Operation = "compare_results_requests"
	CreateComparisonDistribution Operation = "create_comparison_distribution"
	CreateComparisonRequests     Operation = "create_comparison_requests"
)

// Operations lists every supported selector in help order.
var Operations = []Operation{
	CreateBaseline,
	CompareResultsDistribution,
	CompareResultsRequests,
	CreateComparisonDistribution,
	CreateComparisonRequests,
}

// UnknownOperationError reports a selector that is not one of Operations.
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("invalid option %q, valid options: %s", e.Operation, strings.Join(OperationNames(), ", "))
}

func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == s {
			return op, nil
		}
	}
	return "", &UnknownOperationError{Operation: s}
}

func OperationNames() []string {
	names := make([]string, len(Operations))
	for i, op := range Operations {
		names[i] = string(op)
	}
	return names
}

// NeedsThreshold reports whether op validates against a column and factor.
func (op Operation) NeedsThreshold() bool {
	return op == CompareResultsDistribution || op == CompareResultsRequests
}

// ResultSet returns the table op works on. It is empty for CreateBaseline.
func (op Operation) ResultSet() ResultSet {
	switch op {
	case CompareResultsDistribution, CreateComparisonDistribution:
		return Distribution
	case CompareResultsRequests, CreateComparisonRequests:
		return Requests
	default:
		return ""
	}
}
