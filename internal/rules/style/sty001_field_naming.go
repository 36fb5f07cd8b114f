package style

import (
	"regexp"
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// STY001FieldNaming checks that field and argument names are lowerCamelCase
type STY001FieldNaming struct{}

func (r *STY001FieldNaming) ID() string                  { return "STY001" }
func (r *STY001FieldNaming) Name() string                { return "field-naming" }
func (r *STY001FieldNaming) Category() analyzer.Category { return analyzer.CategoryStyle }
func (r *STY001FieldNaming) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *STY001FieldNaming) Description() string {
	return "Field and argument names should be lowerCamelCase for consistency with common GraphQL style."
}

var lowerCamelCase = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

func (r *STY001FieldNaming) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	ctx.Walk(func(n parser.Node) {
		switch v := n.(type) {
		case *parser.Field:
			// Introspection names carry a reserved prefix, not a style choice
			if strings.HasPrefix(v.Name, analyzer.IntrospectionPrefix) {
				return
			}
			if !lowerCamelCase.MatchString(v.Name) {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(r.Severity()).
					WithMessagef("Field %q should be lowerCamelCase", v.Name).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					WithHelp("Rename the field to "+toLowerCamel(v.Name)).
					Build())
			}
			if v.Alias != "" && !lowerCamelCase.MatchString(v.Alias) {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(r.Severity()).
					WithMessagef("Alias %q should be lowerCamelCase", v.Alias).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					Build())
			}
		case *parser.Argument:
			if !lowerCamelCase.MatchString(v.Name) {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(r.Severity()).
					WithMessagef("Argument %q should be lowerCamelCase", v.Name).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					WithHelp("Rename the argument to "+toLowerCamel(v.Name)).
					Build())
			}
		}
	})

	return diags
}

// toLowerCamel lowers the leading run of uppercase characters
func toLowerCamel(s string) string {
	if s == "" {
		return s
	}
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return s
	}
	return strings.ToLower(s[:i]) + s[i:]
}

func init() {
	Register(&STY001FieldNaming{})
}
