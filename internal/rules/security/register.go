package security

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// Rule interface for security rules
type Rule interface {
	ID() string
	Name() string
	Description() string
	Category() analyzer.Category
	Severity() analyzer.Severity
	Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic
}

var rules []Rule

// Register adds a rule to the security rules list
func Register(rule Rule) {
	rules = append(rules, rule)
}

// All returns all security rules
func All() []Rule {
	return rules
}
