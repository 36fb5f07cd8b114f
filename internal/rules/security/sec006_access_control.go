package security

import (
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// SEC006AccessControl surfaces field names that look like privileged
// surfaces. It never decides allow/deny; authorization belongs to a
// separate layer and this rule only queues candidates for review
type SEC006AccessControl struct{}

func (r *SEC006AccessControl) ID() string                  { return "SEC006" }
func (r *SEC006AccessControl) Name() string                { return "access-control" }
func (r *SEC006AccessControl) Category() analyzer.Category { return analyzer.CategorySecurity }
func (r *SEC006AccessControl) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *SEC006AccessControl) Description() string {
	return "Fields named like admin or internal surfaces should be confirmed against the authorization rules before this query ships."
}

func (r *SEC006AccessControl) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	terms := ctx.Strings(config.KeyAccessControlTerms, nil)

	var diags []analyzer.Diagnostic
	for _, field := range ctx.FindFields(nil) {
		lower := strings.ToLower(field.Name)
		for _, term := range terms {
			if !strings.Contains(lower, strings.ToLower(term)) {
				continue
			}
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(r.Severity()).
				WithMessagef("Field %q matches access-control term %q; review authorization", field.Name, term).
				WithNode(field).
				WithContext(ctx.GetLine(field.Pos().Line)).
				Build())
			break
		}
	}
	return diags
}

func init() {
	Register(&SEC006AccessControl{})
}
