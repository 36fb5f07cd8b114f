package performance

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// PERF003SelectionBreadth checks individual selection-set sizes
type PERF003SelectionBreadth struct{}

func (r *PERF003SelectionBreadth) ID() string                  { return "PERF003" }
func (r *PERF003SelectionBreadth) Name() string                { return "selection-breadth" }
func (r *PERF003SelectionBreadth) Category() analyzer.Category { return analyzer.CategoryPerformance }
func (r *PERF003SelectionBreadth) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *PERF003SelectionBreadth) Description() string {
	return "A very wide selection set resolves every entry for every parent object; keep each set under the configured size."
}

func (r *PERF003SelectionBreadth) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxSize := ctx.Int(config.KeyMaxSelectionSet, 20)

	var diags []analyzer.Diagnostic
	ctx.Walk(func(n parser.Node) {
		set, ok := n.(*parser.SelectionSet)
		if !ok || len(set.Selections) <= maxSize {
			return
		}
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Selection set has %d entries (limit %d)", len(set.Selections), maxSize).
			WithNode(set).
			WithContext(ctx.GetLine(set.Pos().Line)).
			Build())
	})
	return diags
}

func init() {
	Register(&PERF003SelectionBreadth{})
}
