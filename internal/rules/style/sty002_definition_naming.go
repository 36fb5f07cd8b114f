package style

import (
	"regexp"
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// STY002DefinitionNaming checks that operation and fragment names are UpperCamelCase
type STY002DefinitionNaming struct{}

func (r *STY002DefinitionNaming) ID() string                  { return "STY002" }
func (r *STY002DefinitionNaming) Name() string                { return "definition-naming" }
func (r *STY002DefinitionNaming) Category() analyzer.Category { return analyzer.CategoryStyle }
func (r *STY002DefinitionNaming) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *STY002DefinitionNaming) Description() string {
	return "Operation and fragment names should be UpperCamelCase so they stand out from field names."
}

var upperCamelCase = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

func (r *STY002DefinitionNaming) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	for _, op := range ctx.Operations() {
		if op.Name == "" {
			// Anonymous operations are BP006's concern
			continue
		}
		if !upperCamelCase.MatchString(op.Name) {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(r.Severity()).
				WithMessagef("Operation %q should be UpperCamelCase", op.Name).
				WithNode(op).
				WithContext(ctx.GetLine(op.Pos().Line)).
				WithHelp("Rename the operation to "+toUpperCamel(op.Name)).
				Build())
		}
	}

	for _, frag := range ctx.Fragments() {
		if frag.Name == "" {
			continue
		}
		if !upperCamelCase.MatchString(frag.Name) {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(r.Severity()).
				WithMessagef("Fragment %q should be UpperCamelCase", frag.Name).
				WithNode(frag).
				WithContext(ctx.GetLine(frag.Pos().Line)).
				WithHelp("Rename the fragment to "+toUpperCamel(frag.Name)).
				Build())
		}
	}

	return diags
}

func toUpperCamel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func init() {
	Register(&STY002DefinitionNaming{})
}
