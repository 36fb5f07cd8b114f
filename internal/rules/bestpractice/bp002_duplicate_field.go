package bestpractice

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP002DuplicateField checks for the same response name appearing twice
// in one selection set
type BP002DuplicateField struct{}

func (r *BP002DuplicateField) ID() string                  { return "BP002" }
func (r *BP002DuplicateField) Name() string                { return "duplicate-field" }
func (r *BP002DuplicateField) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP002DuplicateField) Severity() analyzer.Severity { return analyzer.SeverityError }

func (r *BP002DuplicateField) Description() string {
	return "Selecting the same response name twice in one selection set is a structural conflict: one entry shadows the other."
}

func (r *BP002DuplicateField) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	ctx.Walk(func(n parser.Node) {
		set, ok := n.(*parser.SelectionSet)
		if !ok {
			return
		}
		seen := make(map[string]*parser.Field)
		reported := make(map[string]bool)
		for _, field := range set.Fields() {
			name := field.ResponseName()
			if _, dup := seen[name]; dup && !reported[name] {
				reported[name] = true
				diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
					WithSeverity(r.Severity()).
					WithMessagef("Field %q selected more than once in the same selection set", name).
					WithNode(field).
					WithContext(ctx.GetLine(field.Pos().Line)).
					WithHelp("Remove the duplicate or give it a distinct alias").
					Build())
				continue
			}
			seen[name] = field
		}
	})

	return diags
}

func init() {
	Register(&BP002DuplicateField{})
}
