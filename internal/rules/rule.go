package rules

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// Rule is the interface that all linting rules must implement
type Rule interface {
	// ID returns the unique rule identifier (e.g., SEC001)
	ID() string

	// Name returns a human-readable name for the rule
	Name() string

	// Description returns a detailed description of what the rule checks
	Description() string

	// Category returns the rule category
	Category() analyzer.Category

	// Severity returns the default severity
	Severity() analyzer.Severity

	// Check analyzes the document and returns diagnostics
	Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic
}

// BaseRule provides common functionality for rules
type BaseRule struct {
	RuleID          string
	RuleName        string
	RuleDescription string
	RuleCategory    analyzer.Category
	RuleSeverity    analyzer.Severity
}

func (r *BaseRule) ID() string                  { return r.RuleID }
func (r *BaseRule) Name() string                { return r.RuleName }
func (r *BaseRule) Description() string         { return r.RuleDescription }
func (r *BaseRule) Category() analyzer.Category { return r.RuleCategory }
func (r *BaseRule) Severity() analyzer.Severity { return r.RuleSeverity }

// NewDiagnostic creates a diagnostic builder for this rule
func (r *BaseRule) NewDiagnostic() *analyzer.DiagnosticBuilder {
	return analyzer.NewDiagnostic(r.RuleID, r.RuleCategory).
		WithSeverity(r.RuleSeverity)
}
