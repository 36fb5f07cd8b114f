package bestpractice

import (
	"regexp"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP007ArgumentHygiene checks per-field argument ceilings and directive naming
type BP007ArgumentHygiene struct{}

func (r *BP007ArgumentHygiene) ID() string                  { return "BP007" }
func (r *BP007ArgumentHygiene) Name() string                { return "argument-hygiene" }
func (r *BP007ArgumentHygiene) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP007ArgumentHygiene) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *BP007ArgumentHygiene) Description() string {
	return "Fields with many arguments usually want an input object; directive names should be lowerCamelCase and not on the forbidden list."
}

var directiveNamePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

func (r *BP007ArgumentHygiene) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxArgs := ctx.Int(config.KeyMaxArgumentsPerField, 5)
	forbidden := make(map[string]bool)
	for _, name := range ctx.Strings(config.KeyForbiddenDirectives, nil) {
		forbidden[name] = true
	}

	var diags []analyzer.Diagnostic

	ctx.Walk(func(n parser.Node) {
		switch v := n.(type) {
		case *parser.Field:
			if len(v.Arguments) > maxArgs {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(analyzer.SeverityWarning).
					WithMessagef("Field %q takes %d arguments (limit %d)", v.Name, len(v.Arguments), maxArgs).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					WithHelp("Group related arguments into an input object").
					Build())
			}
		case *parser.Directive:
			if forbidden[v.Name] {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(analyzer.SeverityWarning).
					WithMessagef("Directive @%s is on the forbidden list", v.Name).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					Build())
			} else if !directiveNamePattern.MatchString(v.Name) {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(analyzer.SeverityWarning).
					WithMessagef("Directive @%s should be lowerCamelCase", v.Name).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					Build())
			}
		}
	})

	return diags
}

func init() {
	Register(&BP007ArgumentHygiene{})
}
