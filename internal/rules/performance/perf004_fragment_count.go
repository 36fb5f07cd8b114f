package performance

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// PERF004FragmentCount checks the number of fragment definitions
type PERF004FragmentCount struct{}

func (r *PERF004FragmentCount) ID() string                  { return "PERF004" }
func (r *PERF004FragmentCount) Name() string                { return "fragment-count" }
func (r *PERF004FragmentCount) Category() analyzer.Category { return analyzer.CategoryPerformance }
func (r *PERF004FragmentCount) Severity() analyzer.Severity { return analyzer.SeverityInfo }

func (r *PERF004FragmentCount) Description() string {
	return "Documents with many fragments are expensive to expand and usually fetch overlapping data."
}

func (r *PERF004FragmentCount) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxFragments := ctx.Int(config.KeyMaxFragments, 10)
	frags := ctx.Fragments()
	if len(frags) <= maxFragments {
		return nil
	}
	return []analyzer.Diagnostic{
		analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Document defines %d fragments (limit %d)", len(frags), maxFragments).
			WithNode(frags[maxFragments]).
			WithContext(ctx.GetLine(frags[maxFragments].Pos().Line)).
			Build(),
	}
}

func init() {
	Register(&PERF004FragmentCount{})
}
