// Package report renders a comparison verdict for people and for machines.
//
// Text output names the outcome, the compared columns, the factor used, the
// offending rows, and the full ratio series. JSON output carries the same
// data plus a Summary of the finite ratios:
//
//	report.Text(os.Stdout, verdict)
//	report.JSON(os.Stdout, verdict)
package report
