package bestpractice

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP001RedundantAlias checks for aliases identical to the field name
type BP001RedundantAlias struct{}

func (r *BP001RedundantAlias) ID() string                  { return "BP001" }
func (r *BP001RedundantAlias) Name() string                { return "redundant-alias" }
func (r *BP001RedundantAlias) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP001RedundantAlias) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *BP001RedundantAlias) Description() string {
	return "An alias identical to the underlying field name adds noise without changing the response shape."
}

func (r *BP001RedundantAlias) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	for _, field := range ctx.FindFields(func(f *parser.Field) bool {
		return f.Alias != "" && f.Alias == f.Name
	}) {
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Alias %q is identical to the field name", field.Alias).
			WithNode(field).
			WithContext(ctx.GetLine(field.Pos().Line)).
			WithHelp("Drop the alias; the response name is unchanged").
			Build())
	}

	return diags
}

func init() {
	Register(&BP001RedundantAlias{})
}
