package analyzer

import (
	"fmt"
	"strings"

	"github.com/gqlex/gqlint/internal/lexer"
)

// Result accumulates the findings of one lint run. Diagnostics are kept
// in three per-severity buckets, each in insertion order. A Result is
// owned by a single run while populated and treated as read-only by the
// caller once returned
type Result struct {
	Filename string

	errors   []Diagnostic
	warnings []Diagnostic
	infos    []Diagnostic
}

// NewResult creates an empty result
func NewResult(filename string) *Result {
	return &Result{Filename: filename}
}

// Add dispatches a diagnostic into the bucket matching its severity
func (r *Result) Add(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		r.errors = append(r.errors, d)
	case SeverityWarning:
		r.warnings = append(r.warnings, d)
	default:
		r.infos = append(r.infos, d)
	}
}

// AddAll adds a batch of diagnostics in order
func (r *Result) AddAll(diags []Diagnostic) {
	for _, d := range diags {
		r.Add(d)
	}
}

// AddError records an error-severity finding
func (r *Result) AddError(rule, message string, pos lexer.Position) {
	r.errors = append(r.errors, Diagnostic{
		Rule:     rule,
		Severity: SeverityError,
		Message:  message,
		Pos:      pos,
	})
}

// AddWarning records a warning-severity finding
func (r *Result) AddWarning(rule, message string, pos lexer.Position) {
	r.warnings = append(r.warnings, Diagnostic{
		Rule:     rule,
		Severity: SeverityWarning,
		Message:  message,
		Pos:      pos,
	})
}

// AddInfo records an info-severity finding
func (r *Result) AddInfo(rule, message string, pos lexer.Position) {
	r.infos = append(r.infos, Diagnostic{
		Rule:     rule,
		Severity: SeverityInfo,
		Message:  message,
		Pos:      pos,
	})
}

// Merge appends another result's buckets onto this one, preserving the
// relative order within each bucket
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.errors = append(r.errors, other.errors...)
	r.warnings = append(r.warnings, other.warnings...)
	r.infos = append(r.infos, other.infos...)
}

// HasErrors returns true if there are any error-level diagnostics
func (r *Result) HasErrors() bool { return len(r.errors) > 0 }

// HasWarnings returns true if there are any warning-level diagnostics
func (r *Result) HasWarnings() bool { return len(r.warnings) > 0 }

// HasInfo returns true if there are any info-level diagnostics
func (r *Result) HasInfo() bool { return len(r.infos) > 0 }

// HasIssues returns true if the result holds any diagnostic at all
func (r *Result) HasIssues() bool {
	return len(r.errors) > 0 || len(r.warnings) > 0 || len(r.infos) > 0
}

// ErrorCount returns the number of error diagnostics
func (r *Result) ErrorCount() int { return len(r.errors) }

// WarningCount returns the number of warning diagnostics
func (r *Result) WarningCount() int { return len(r.warnings) }

// InfoCount returns the number of info diagnostics
func (r *Result) InfoCount() int { return len(r.infos) }

// Count returns the total number of diagnostics
func (r *Result) Count() int {
	return len(r.errors) + len(r.warnings) + len(r.infos)
}

// All returns every diagnostic: errors first, then warnings, then info,
// each bucket in insertion order
func (r *Result) All() []Diagnostic {
	all := make([]Diagnostic, 0, r.Count())
	all = append(all, r.errors...)
	all = append(all, r.warnings...)
	all = append(all, r.infos...)
	return all
}

// ByLevel returns the diagnostics of the given severity, in order
func (r *Result) ByLevel(s Severity) []Diagnostic {
	var src []Diagnostic
	switch s {
	case SeverityError:
		src = r.errors
	case SeverityWarning:
		src = r.warnings
	default:
		src = r.infos
	}
	out := make([]Diagnostic, len(src))
	copy(out, src)
	return out
}

// ByRule returns the diagnostics produced by the given rule id
func (r *Result) ByRule(rule string) []Diagnostic {
	return r.Filter(func(d Diagnostic) bool { return d.Rule == rule })
}

// ByCategory returns the diagnostics of the given category
func (r *Result) ByCategory(category Category) []Diagnostic {
	return r.Filter(func(d Diagnostic) bool { return d.Category == category })
}

// Filter returns the diagnostics matching the predicate, in All order
func (r *Result) Filter(pred func(Diagnostic) bool) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.All() {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}

// AtOrAbove returns diagnostics at or above the given severity
func (r *Result) AtOrAbove(min Severity) []Diagnostic {
	return r.Filter(func(d Diagnostic) bool { return d.Severity >= min })
}

// Equal reports whether two results hold structurally equal diagnostics
// in the same order, bucket by bucket
func (r *Result) Equal(other *Result) bool {
	if other == nil {
		return false
	}
	return equalBucket(r.errors, other.errors) &&
		equalBucket(r.warnings, other.warnings) &&
		equalBucket(r.infos, other.infos)
}

func equalBucket(a, b []Diagnostic) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Summary returns a one-line human readable summary,
// e.g. "3 error(s), 1 warning(s)" or "No issues found"
func (r *Result) Summary() string {
	var parts []string
	if n := len(r.errors); n > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", n))
	}
	if n := len(r.warnings); n > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", n))
	}
	if n := len(r.infos); n > 0 {
		parts = append(parts, fmt.Sprintf("%d info", n))
	}
	if len(parts) == 0 {
		return "No issues found"
	}
	return strings.Join(parts, ", ")
}
