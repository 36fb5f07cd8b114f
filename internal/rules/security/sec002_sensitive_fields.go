package security

import (
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// SEC002SensitiveFields checks field and argument names against the
// configured sensitive-data vocabulary
type SEC002SensitiveFields struct{}

func (r *SEC002SensitiveFields) ID() string                  { return "SEC002" }
func (r *SEC002SensitiveFields) Name() string                { return "sensitive-fields" }
func (r *SEC002SensitiveFields) Category() analyzer.Category { return analyzer.CategorySecurity }
func (r *SEC002SensitiveFields) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *SEC002SensitiveFields) Description() string {
	return "Names suggesting credentials, financial or personal data deserve a second look: should this query carry them at all, and is the transport trusted?"
}

func (r *SEC002SensitiveFields) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	terms := ctx.Strings(config.KeySensitiveFieldTerms, nil)

	var diags []analyzer.Diagnostic

	ctx.Walk(func(n parser.Node) {
		switch v := n.(type) {
		case *parser.Field:
			if term := matchSensitive(v.Name, terms); term != "" {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(r.Severity()).
					WithMessagef("Field %q matches sensitive term %q", v.Name, term).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					WithHelp("Confirm the field is intended for this client and transported securely").
					Build())
			}
		case *parser.Argument:
			if term := matchSensitive(v.Name, terms); term != "" {
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(r.Severity()).
					WithMessagef("Argument %q matches sensitive term %q", v.Name, term).
					WithNode(v).
					WithContext(ctx.GetLine(v.Pos().Line)).
					Build())
			}
		}
	})

	return diags
}

// matchSensitive does a case-insensitive substring match, also with
// separators stripped so snake_case terms match camelCase names
func matchSensitive(name string, terms []string) string {
	lower := strings.ToLower(name)
	flat := strings.NewReplacer("_", "", "-", "").Replace(lower)
	for _, term := range terms {
		t := strings.ToLower(term)
		tf := strings.NewReplacer("_", "", "-", "").Replace(t)
		if strings.Contains(lower, t) || strings.Contains(flat, tf) {
			return term
		}
	}
	return ""
}

func init() {
	Register(&SEC002SensitiveFields{})
}
