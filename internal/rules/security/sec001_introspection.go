package security

import (
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// SEC001Introspection checks for introspection fields in the document
type SEC001Introspection struct{}

func (r *SEC001Introspection) ID() string                  { return "SEC001" }
func (r *SEC001Introspection) Name() string                { return "introspection" }
func (r *SEC001Introspection) Category() analyzer.Category { return analyzer.CategorySecurity }
func (r *SEC001Introspection) Severity() analyzer.Severity { return analyzer.SeverityError }

func (r *SEC001Introspection) Description() string {
	return "Introspection exposes the full schema to clients. Production queries should not select __schema, __type or other reserved fields."
}

func (r *SEC001Introspection) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	if ctx.Bool(config.KeyAllowIntrospection, false) {
		return nil
	}

	var diags []analyzer.Diagnostic

	for _, field := range ctx.FindFields(func(f *parser.Field) bool {
		return strings.HasPrefix(f.Name, analyzer.IntrospectionPrefix)
	}) {
		switch field.Name {
		case "__schema", "__type":
			// The canonical introspection roots reveal everything
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityError).
				WithMessagef("Introspection root %q must not be queried", field.Name).
				WithNode(field).
				WithContext(ctx.GetLine(field.Pos().Line)).
				WithHelp("Disable introspection in production or remove the selection").
				Build())
		default:
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityWarning).
				WithMessagef("Introspection field %q", field.Name).
				WithNode(field).
				WithContext(ctx.GetLine(field.Pos().Line)).
				Build())
		}
	}

	if len(diags) > 0 {
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(analyzer.SeverityWarning).
			WithMessage("Document contains introspection queries").
			WithNode(doc).
			Build())
	}

	return diags
}

func init() {
	Register(&SEC001Introspection{})
}
