package bestpractice

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP008Overfetch flags selection shapes that usually fetch more than
// the client needs. All checks here are advisory heuristics
type BP008Overfetch struct{}

func (r *BP008Overfetch) ID() string                  { return "BP008" }
func (r *BP008Overfetch) Name() string                { return "overfetch" }
func (r *BP008Overfetch) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP008Overfetch) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *BP008Overfetch) Description() string {
	return "Very wide selection sets, fetch-everything shapes and single-field nesting chains suggest the query selects more than it uses."
}

// catchAllNames is the "fetch everything common" vocabulary: a set
// selecting most of these at once looks like a copy-paste of the type
var catchAllNames = []string{
	"id", "name", "title", "description", "status", "type",
	"url", "email", "createdAt", "updatedAt",
}

func (r *BP008Overfetch) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	threshold := ctx.Int(config.KeyOverfetchThreshold, 10)

	var diags []analyzer.Diagnostic

	ctx.Walk(func(n parser.Node) {
		set, ok := n.(*parser.SelectionSet)
		if !ok {
			return
		}
		fields := set.Fields()

		if len(fields) > threshold {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityWarning).
				WithMessagef("Selection set has %d fields (threshold %d); select only what the client uses", len(fields), threshold).
				WithNode(set).
				WithContext(ctx.GetLine(set.Pos().Line)).
				Build())
		}

		if matches := countCatchAll(fields); matches >= 6 {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityInfo).
				WithMessagef("Selection set matches a fetch-everything shape (%d generic fields)", matches).
				WithNode(set).
				WithContext(ctx.GetLine(set.Pos().Line)).
				Build())
		}
	})

	// Single-field nesting chains: a { b { c } } where every level
	// selects exactly one field
	for _, field := range ctx.FindFields(nil) {
		if depth := singleFieldChain(field); depth >= 3 {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityInfo).
				WithMessagef("Field %q starts a %d-level single-field nesting chain", field.Name, depth).
				WithNode(field).
				WithContext(ctx.GetLine(field.Pos().Line)).
				WithHelp("Flatten the query if the intermediate objects are unused").
				Build())
			break // one report per document is enough
		}
	}

	return diags
}

func countCatchAll(fields []*parser.Field) int {
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f.Name] = true
	}
	matches := 0
	for _, name := range catchAllNames {
		if present[name] {
			matches++
		}
	}
	return matches
}

// singleFieldChain returns the length of the chain of selection sets
// holding exactly one field, starting at the given field
func singleFieldChain(field *parser.Field) int {
	depth := 1
	for field.Selections != nil && len(field.Selections.Selections) == 1 {
		next, ok := field.Selections.Selections[0].(*parser.Field)
		if !ok {
			break
		}
		depth++
		field = next
	}
	return depth
}

func init() {
	Register(&BP008Overfetch{})
}
