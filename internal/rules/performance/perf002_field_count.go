package performance

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// PERF002FieldCount checks document-wide field and argument totals
type PERF002FieldCount struct{}

func (r *PERF002FieldCount) ID() string                  { return "PERF002" }
func (r *PERF002FieldCount) Name() string                { return "field-count" }
func (r *PERF002FieldCount) Category() analyzer.Category { return analyzer.CategoryPerformance }
func (r *PERF002FieldCount) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *PERF002FieldCount) Description() string {
	return "The total number of fields and arguments bounds response size and resolver fan-out."
}

func (r *PERF002FieldCount) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxFields := ctx.Int(config.KeyMaxFields, 50)
	maxArgs := ctx.Int(config.KeyMaxArguments, 30)

	var diags []analyzer.Diagnostic

	if n := ctx.FieldCount(); n > maxFields {
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Document selects %d fields (limit %d)", n, maxFields).
			WithNode(doc).
			Build())
	}
	if n := ctx.ArgumentCount(); n > maxArgs {
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Document passes %d arguments (limit %d)", n, maxArgs).
			WithNode(doc).
			Build())
	}
	return diags
}

func init() {
	Register(&PERF002FieldCount{})
}
