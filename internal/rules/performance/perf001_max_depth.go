package performance

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// PERF001MaxDepth checks nesting depth against the configured ceiling
type PERF001MaxDepth struct{}

func (r *PERF001MaxDepth) ID() string                  { return "PERF001" }
func (r *PERF001MaxDepth) Name() string                { return "max-depth" }
func (r *PERF001MaxDepth) Category() analyzer.Category { return analyzer.CategoryPerformance }
func (r *PERF001MaxDepth) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *PERF001MaxDepth) Description() string {
	return "Deeply nested queries multiply resolver work per level; keep nesting under the configured depth."
}

func (r *PERF001MaxDepth) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxDepth := ctx.Int(config.KeyMaxDepth, 7)
	depth := ctx.MaxDepth()
	if depth <= maxDepth {
		return nil
	}
	return []analyzer.Diagnostic{
		analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Query depth is %d (limit %d)", depth, maxDepth).
			WithNode(doc).
			WithHelp("Flatten the query or split it into several requests").
			Build(),
	}
}

func init() {
	Register(&PERF001MaxDepth{})
}
