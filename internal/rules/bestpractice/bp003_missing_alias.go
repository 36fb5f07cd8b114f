package bestpractice

import (
	"sort"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP003MissingAlias flags field names selected unaliased in more than
// one selection set across the document
type BP003MissingAlias struct{}

func (r *BP003MissingAlias) ID() string                  { return "BP003" }
func (r *BP003MissingAlias) Name() string                { return "missing-alias" }
func (r *BP003MissingAlias) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP003MissingAlias) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *BP003MissingAlias) Description() string {
	return "When the same field name is selected in several places without aliases, merged results are easy to confuse. Advisory heuristic."
}

// Common leaf names that legitimately recur everywhere
var aliasExemptNames = map[string]bool{
	"id": true, "name": true, "typename": true,
}

func (r *BP003MissingAlias) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	// Count the selection sets each unaliased, non-leaf field name occurs in
	occurrences := make(map[string][]*parser.Field)
	ctx.Walk(func(n parser.Node) {
		set, ok := n.(*parser.SelectionSet)
		if !ok {
			return
		}
		perSet := make(map[string]bool)
		for _, field := range set.Fields() {
			if field.Alias != "" || field.IsLeaf() || perSet[field.Name] {
				continue
			}
			perSet[field.Name] = true
			occurrences[field.Name] = append(occurrences[field.Name], field)
		}
	})

	names := make([]string, 0, len(occurrences))
	for name, fields := range occurrences {
		if len(fields) > 1 && !aliasExemptNames[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var diags []analyzer.Diagnostic
	for _, name := range names {
		fields := occurrences[name]
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Field %q is selected in %d places without an alias", name, len(fields)).
			WithNode(fields[1]).
			WithContext(ctx.GetLine(fields[1].Pos().Line)).
			WithHelp("Alias the repeated selections so results stay distinguishable").
			Build())
	}

	return diags
}

func init() {
	Register(&BP003MissingAlias{})
}
