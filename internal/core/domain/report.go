package domain

import "time"

// CheckName identifies which check produced a report.
type CheckName string

const (
	// CheckRecipeBump is the recipe-changes-must-bump-the-version check.
	CheckRecipeBump CheckName = "recipe-bump"
	// CheckLockCompleteness is the installed-versus-locked check.
	CheckLockCompleteness CheckName = "lock-completeness"
)

// Report is the persisted outcome of one check, kept as a CI artifact.
type Report struct {
	Check      CheckName   `json:"check"`
	Base       string      `json:"base,omitzero"`
	Head       string      `json:"head,omitzero"`
	CheckedAt  time.Time   `json:"checked_at,omitzero"`
	Violations []Violation `json:"violations"`
	// Unused lists locked packages that were never installed.
	// It is only filled when unused lock reporting is enabled.
	Unused []string `json:"unused,omitempty"`
}

// Failed reports whether the report carries any violation.
func (r *Report) Failed() bool {
	return len(r.Violations) > 0
}
