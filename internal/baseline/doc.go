// Package baseline rotates the current run's result files into the
// "previous" slot so the next run can be compared against them.
package baseline
