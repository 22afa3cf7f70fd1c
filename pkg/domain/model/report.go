package model

import "fmt"

// ImportReport accumulates the outcome of a per-row import loop. One bad row
// never aborts the batch; it lands here as a warning instead.
type ImportReport struct {
	Created  int
	Skipped  int
	Failed   int
	Warnings []string
}

// Warnf records a per-row warning
func (r *ImportReport) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Skip records a skipped row with a warning
func (r *ImportReport) Skip(format string, args ...any) {
	r.Skipped++
	r.Warnf(format, args...)
}

// Fail records a failed row with a warning
func (r *ImportReport) Fail(format string, args ...any) {
	r.Failed++
	r.Warnf(format, args...)
}

// Summary returns a one-line description of the report
func (r *ImportReport) Summary() string {
	return fmt.Sprintf("%d created, %d skipped, %d failed", r.Created, r.Skipped, r.Failed)
}
