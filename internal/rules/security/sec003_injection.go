package security

import (
	"regexp"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// SEC003Injection scans string argument values and names for injection
// patterns. Purely lexical; it never executes anything
type SEC003Injection struct{}

func (r *SEC003Injection) ID() string                  { return "SEC003" }
func (r *SEC003Injection) Name() string                { return "injection" }
func (r *SEC003Injection) Category() analyzer.Category { return analyzer.CategorySecurity }
func (r *SEC003Injection) Severity() analyzer.Severity { return analyzer.SeverityError }

func (r *SEC003Injection) Description() string {
	return "String values and names carrying SQL, script or path-traversal payloads indicate an injection attempt against the backing data source."
}

// Three independent pattern classes. A hit in any of them is an error
var injectionPatterns = []struct {
	pattern *regexp.Regexp
	kind    string
}{
	{regexp.MustCompile(`(?i)(union\s+select|select\s+.+\s+from|insert\s+into|delete\s+from|drop\s+(table|database)|'\s*(or|and)\s+.+=|;\s*--|\bexec\b|/\*.*\*/)`), "SQL injection"},
	{regexp.MustCompile(`(?i)(<\s*script|javascript\s*:|on(error|load|click|mouseover)\s*=|<\s*iframe|alert\s*\()`), "script injection"},
	{regexp.MustCompile(`(\.\./|\.\.\\|%2e%2e%2f|%2e%2e/)`), "path traversal"},
}

// unsafeChars is the softer heuristic: characters that frequently
// appear in payloads but also in legitimate text
var unsafeChars = regexp.MustCompile(`['";]`)

func (r *SEC003Injection) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	scan := func(text, what string, node parser.Node) {
		matched := false
		for _, p := range injectionPatterns {
			if p.pattern.MatchString(text) {
				matched = true
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(analyzer.SeverityError).
					WithMessagef("%s contains a %s pattern: %q", what, p.kind, truncate(text, 40)).
					WithNode(node).
					WithContext(ctx.GetLine(node.Pos().Line)).
					Build())
			}
		}
		if !matched && unsafeChars.MatchString(text) {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityWarning).
				WithMessagef("%s contains unsafe characters: %q", what, truncate(text, 40)).
				WithNode(node).
				WithContext(ctx.GetLine(node.Pos().Line)).
				Build())
		}
	}

	ctx.Walk(func(n parser.Node) {
		switch v := n.(type) {
		case *parser.StringValue:
			scan(v.Value, "String value", v)
		case *parser.Argument:
			scan(v.Name, "Argument name", v)
		case *parser.FragmentDefinition:
			scan(v.Name, "Fragment name", v)
		case *parser.OperationDefinition:
			if v.Name != "" {
				scan(v.Name, "Operation name", v)
			}
		}
	})

	return diags
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func init() {
	Register(&SEC003Injection{})
}
