package security

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// SEC005Complexity scores the whole document and compares it against
// the configured ceiling
type SEC005Complexity struct{}

func (r *SEC005Complexity) ID() string                  { return "SEC005" }
func (r *SEC005Complexity) Name() string                { return "complexity" }
func (r *SEC005Complexity) Category() analyzer.Category { return analyzer.CategorySecurity }
func (r *SEC005Complexity) Severity() analyzer.Severity { return analyzer.SeverityError }

func (r *SEC005Complexity) Description() string {
	return "A cheap proxy for execution cost: every field scores itself plus its arguments, directives and immediate children."
}

func (r *SEC005Complexity) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxComplexity := ctx.Int(config.KeyMaxComplexity, 100)

	score := 0
	ctx.Walk(func(n parser.Node) {
		f, ok := n.(*parser.Field)
		if !ok {
			return
		}
		score += 1 + len(f.Arguments) + len(f.Directives)
		if f.Selections != nil {
			score += len(f.Selections.Selections)
		}
	})

	if score <= maxComplexity {
		return nil
	}
	return []analyzer.Diagnostic{
		analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Query complexity score %d exceeds the limit of %d", score, maxComplexity).
			WithNode(doc).
			WithHelp("Trim selections or raise max_complexity if the cost is genuinely acceptable").
			Build(),
	}
}

func init() {
	Register(&SEC005Complexity{})
}
