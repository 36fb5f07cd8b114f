package bestpractice

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP006OperationNaming checks for anonymous operations
type BP006OperationNaming struct{}

func (r *BP006OperationNaming) ID() string                  { return "BP006" }
func (r *BP006OperationNaming) Name() string                { return "operation-naming" }
func (r *BP006OperationNaming) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP006OperationNaming) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *BP006OperationNaming) Description() string {
	return "Named operations show up in logs, traces and persisted-query stores; anonymous ones do not. More than one anonymous operation makes the document invalid."
}

func (r *BP006OperationNaming) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	var anonymous []*parser.OperationDefinition
	for _, op := range ctx.Operations() {
		if op.Name != "" {
			continue
		}
		anonymous = append(anonymous, op)
		if op.Shorthand {
			// A bare `{ ... }` document is idiomatic; it only becomes a
			// problem when another anonymous operation joins it
			continue
		}
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(analyzer.SeverityWarning).
			WithMessagef("Anonymous %s operation", op.Operation).
			WithNode(op).
			WithContext(ctx.GetLine(op.Pos().Line)).
			WithHelp("Give the operation a name, e.g. `"+op.Operation+" GetThing { ... }`").
			Build())
	}

	if len(anonymous) > 1 {
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(analyzer.SeverityError).
			WithMessagef("Document contains %d anonymous operations; at most one is allowed", len(anonymous)).
			WithNode(anonymous[1]).
			WithContext(ctx.GetLine(anonymous[1].Pos().Line)).
			Build())
	}

	return diags
}

func init() {
	Register(&BP006OperationNaming{})
}
