package bestpractice

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP004FragmentHygiene checks fragment definitions and spreads: unused
// definitions, undefined spreads, excessive fan-out and oversized bodies
type BP004FragmentHygiene struct{}

func (r *BP004FragmentHygiene) ID() string                  { return "BP004" }
func (r *BP004FragmentHygiene) Name() string                { return "fragment-hygiene" }
func (r *BP004FragmentHygiene) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP004FragmentHygiene) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *BP004FragmentHygiene) Description() string {
	return "Fragments should be defined once, used at least once, spread a bounded number of times and kept small."
}

func (r *BP004FragmentHygiene) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxSpreads := ctx.Int(config.KeyMaxFragmentSpreads, 5)
	maxFields := ctx.Int(config.KeyMaxFragmentFields, 15)

	defined := make(map[string]*parser.FragmentDefinition)
	for _, frag := range ctx.Fragments() {
		defined[frag.Name] = frag
	}

	spreadCount := make(map[string]int)
	var spreads []*parser.FragmentSpread
	ctx.Walk(func(n parser.Node) {
		if s, ok := n.(*parser.FragmentSpread); ok {
			spreadCount[s.Name]++
			spreads = append(spreads, s)
		}
	})

	var diags []analyzer.Diagnostic

	// Undefined spreads: an invalid document, reported once per name
	reportedUndefined := make(map[string]bool)
	for _, s := range spreads {
		if _, ok := defined[s.Name]; ok || reportedUndefined[s.Name] {
			continue
		}
		reportedUndefined[s.Name] = true
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(analyzer.SeverityError).
			WithMessagef("Fragment %q is spread but never defined", s.Name).
			WithNode(s).
			WithContext(ctx.GetLine(s.Pos().Line)).
			Build())
	}

	for _, frag := range ctx.Fragments() {
		count := spreadCount[frag.Name]
		if count == 0 {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityWarning).
				WithMessagef("Fragment %q is defined but never used", frag.Name).
				WithNode(frag).
				WithContext(ctx.GetLine(frag.Pos().Line)).
				WithHelp("Remove the fragment or spread it where needed").
				Build())
		}
		if count > maxSpreads {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityInfo).
				WithMessagef("Fragment %q is spread %d times (limit %d)", frag.Name, count, maxSpreads).
				WithNode(frag).
				Build())
		}
		if n := fragmentFieldCount(frag); n > maxFields {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityWarning).
				WithMessagef("Fragment %q selects %d fields (limit %d)", frag.Name, n, maxFields).
				WithNode(frag).
				WithHelp("Split the fragment into smaller, focused fragments").
				Build())
		}
	}

	return diags
}

func fragmentFieldCount(frag *parser.FragmentDefinition) int {
	return countFields(frag.Selections)
}

func countFields(set *parser.SelectionSet) int {
	if set == nil {
		return 0
	}
	total := 0
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *parser.Field:
			total += 1 + countFields(s.Selections)
		case *parser.InlineFragment:
			total += countFields(s.Selections)
		}
	}
	return total
}

func init() {
	Register(&BP004FragmentHygiene{})
}
