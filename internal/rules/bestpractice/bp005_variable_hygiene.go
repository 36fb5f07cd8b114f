package bestpractice

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/parser"
)

// BP005VariableHygiene checks declared-but-unused and
// used-but-undeclared variables per operation
type BP005VariableHygiene struct{}

func (r *BP005VariableHygiene) ID() string                  { return "BP005" }
func (r *BP005VariableHygiene) Name() string                { return "variable-hygiene" }
func (r *BP005VariableHygiene) Category() analyzer.Category { return analyzer.CategoryBestPractice }
func (r *BP005VariableHygiene) Severity() analyzer.Severity { return analyzer.SeverityWarning }

func (r *BP005VariableHygiene) Description() string {
	return "Every declared variable should be used and every used variable declared; an undeclared reference makes the document invalid."
}

func (r *BP005VariableHygiene) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	fragments := make(map[string]*parser.FragmentDefinition)
	for _, frag := range ctx.Fragments() {
		fragments[frag.Name] = frag
	}

	for _, op := range ctx.Operations() {
		declared := make(map[string]*parser.VariableDefinition)
		for _, v := range op.Variables {
			declared[v.Variable] = v
		}

		used := newVariableUses()
		walker := &variableWalker{fragments: fragments, visited: make(map[string]bool)}
		walker.selectionSet(op.Selections, used)
		for _, dir := range op.Directives {
			collectArgumentUses(dir.Arguments, used)
		}

		for _, v := range op.Variables {
			if _, ok := used.byName[v.Variable]; ok {
				continue
			}
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityWarning).
				WithMessagef("Variable $%s is declared but never used", v.Variable).
				WithNode(v).
				WithContext(ctx.GetLine(v.Pos().Line)).
				Build())
		}
		for _, name := range used.order {
			if _, ok := declared[name]; ok {
				continue
			}
			use := used.byName[name]
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(analyzer.SeverityError).
				WithMessagef("Variable $%s is used but never declared", name).
				WithNode(use).
				WithContext(ctx.GetLine(use.Pos().Line)).
				Build())
		}
	}

	return diags
}

// variableUses records variable references in first-use order so
// reporting stays deterministic
type variableUses struct {
	order  []string
	byName map[string]*parser.VariableValue
}

func newVariableUses() *variableUses {
	return &variableUses{byName: make(map[string]*parser.VariableValue)}
}

func (u *variableUses) add(v *parser.VariableValue) {
	if _, ok := u.byName[v.Name]; ok {
		return
	}
	u.byName[v.Name] = v
	u.order = append(u.order, v.Name)
}

// variableWalker records variable references inside a selection set;
// the first use wins for position reporting. Fragment spreads are
// resolved against the document's own definitions, so a variable that
// only appears inside a spread fragment still counts as used by the
// spreading operation. The visited set guards against spread cycles
type variableWalker struct {
	fragments map[string]*parser.FragmentDefinition
	visited   map[string]bool
}

func (w *variableWalker) selectionSet(set *parser.SelectionSet, used *variableUses) {
	if set == nil {
		return
	}
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *parser.Field:
			collectArgumentUses(s.Arguments, used)
			for _, dir := range s.Directives {
				collectArgumentUses(dir.Arguments, used)
			}
			w.selectionSet(s.Selections, used)
		case *parser.InlineFragment:
			for _, dir := range s.Directives {
				collectArgumentUses(dir.Arguments, used)
			}
			w.selectionSet(s.Selections, used)
		case *parser.FragmentSpread:
			for _, dir := range s.Directives {
				collectArgumentUses(dir.Arguments, used)
			}
			if frag, ok := w.fragments[s.Name]; ok && !w.visited[s.Name] {
				w.visited[s.Name] = true
				for _, dir := range frag.Directives {
					collectArgumentUses(dir.Arguments, used)
				}
				w.selectionSet(frag.Selections, used)
			}
		}
	}
}

func collectArgumentUses(args []*parser.Argument, used *variableUses) {
	for _, arg := range args {
		collectValueUses(arg.Value, used)
	}
}

func collectValueUses(v parser.Value, used *variableUses) {
	switch val := v.(type) {
	case *parser.VariableValue:
		used.add(val)
	case *parser.ListValue:
		for _, item := range val.Values {
			collectValueUses(item, used)
		}
	case *parser.ObjectValue:
		for _, field := range val.Fields {
			collectValueUses(field.Value, used)
		}
	}
}

func init() {
	Register(&BP005VariableHygiene{})
}
