package analyzer

import (
	"fmt"
	"strings"

	"github.com/gqlex/gqlint/internal/lexer"
)

// Severity represents the severity of a diagnostic.
// The order is total: Info < Warning < Error
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name to a Severity.
// Matching is case-insensitive; unknown names map to SeverityWarning
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	case "info":
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// Category represents the category of a rule
type Category string

const (
	CategorySecurity     Category = "security"
	CategoryPerformance  Category = "performance"
	CategoryBestPractice Category = "bestpractice"
	CategoryStyle        Category = "style"
)

// Engine-produced rule ids for failures that are not rule findings
const (
	RuleEmptyQuery = "EMPTY_QUERY"
	RuleParseError = "PARSE_ERROR"
	RuleRulePanic  = "RULE_PANIC"
)

// Diagnostic represents one linting finding. Diagnostics are immutable
// values: rules build them and never touch them again
type Diagnostic struct {
	Rule     string         // rule ID (e.g., SEC001)
	Category Category       // rule category
	Severity Severity       // issue severity
	Message  string         // human-readable message
	Pos      lexer.Position // start position
	EndPos   lexer.Position // end position
	Context  string         // source context (the problematic line)
	Help     string         // help message with suggestion
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s at %s", d.Rule, d.Severity, d.Message, d.Pos)
}

// Equal reports structural equality of two diagnostics
func (d Diagnostic) Equal(other Diagnostic) bool {
	return d == other
}

// DiagnosticBuilder helps construct diagnostics
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic creates a new diagnostic builder
func NewDiagnostic(rule string, category Category) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			Rule:     rule,
			Category: category,
			Severity: SeverityWarning, // default
		},
	}
}

// WithSeverity sets the severity
func (b *DiagnosticBuilder) WithSeverity(s Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithMessage sets the message
func (b *DiagnosticBuilder) WithMessage(msg string) *DiagnosticBuilder {
	b.diag.Message = msg
	return b
}

// WithMessagef sets a formatted message
func (b *DiagnosticBuilder) WithMessagef(format string, args ...interface{}) *DiagnosticBuilder {
	b.diag.Message = fmt.Sprintf(format, args...)
	return b
}

// WithPos sets the position
func (b *DiagnosticBuilder) WithPos(pos lexer.Position) *DiagnosticBuilder {
	b.diag.Pos = pos
	return b
}

// WithRange sets the position range
func (b *DiagnosticBuilder) WithRange(pos, endPos lexer.Position) *DiagnosticBuilder {
	b.diag.Pos = pos
	b.diag.EndPos = endPos
	return b
}

// WithNode sets the position range from an AST node
func (b *DiagnosticBuilder) WithNode(n interface {
	Pos() lexer.Position
	End() lexer.Position
}) *DiagnosticBuilder {
	if n != nil {
		b.diag.Pos = n.Pos()
		b.diag.EndPos = n.End()
	}
	return b
}

// WithContext sets the source context
func (b *DiagnosticBuilder) WithContext(ctx string) *DiagnosticBuilder {
	b.diag.Context = ctx
	return b
}

// WithHelp sets the help message
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.diag.Help = help
	return b
}

// Build returns the constructed diagnostic
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
