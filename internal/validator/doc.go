// Package validator decides whether a current run regressed against its
// baseline for one metric column of a merged table.
//
// For every row the ratio new/old is computed. The verdict is:
//
//   - FAIL if any ratio is greater than the factor (checked first)
//   - PASS if every ratio is strictly below the factor
//   - ERROR otherwise, for example when a ratio equals the factor exactly
//
// A missing or zero baseline value yields +Inf, so it can never pass.
package validator
