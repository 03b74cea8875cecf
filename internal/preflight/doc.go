// Package preflight provides readiness checks for the Grocy API and the
// filesystem path grocymenu writes to.
//
// The CLI "grocymenu check" command runs RunAll and renders the results; the
// individual checks (CheckGrocy, CheckOutputDir) can be used on their own.
// Checks never abort: each failure is reported as a Result with a detail line.
package preflight
