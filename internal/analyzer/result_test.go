package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gqlex/gqlint/internal/lexer"
)

func pos(line, col int) lexer.Position {
	return lexer.Position{Line: line, Column: col}
}

func TestResultBuckets(t *testing.T) {
	r := NewResult("q.graphql")
	r.AddWarning("STY001", "casing", pos(1, 1))
	r.AddError("BP002", "duplicate", pos(2, 3))
	r.AddInfo("STY004", "long line", pos(3, 1))
	r.AddError("SEC001", "introspection", pos(4, 1))

	assert.Equal(t, 2, r.ErrorCount())
	assert.Equal(t, 1, r.WarningCount())
	assert.Equal(t, 1, r.InfoCount())
	assert.Equal(t, 4, r.Count())
	assert.True(t, r.HasErrors())
	assert.True(t, r.HasWarnings())
	assert.True(t, r.HasInfo())
	assert.True(t, r.HasIssues())
}

func TestResultAllOrdering(t *testing.T) {
	r := NewResult("q.graphql")
	r.AddInfo("I1", "first info", pos(1, 1))
	r.AddError("E1", "first error", pos(2, 1))
	r.AddWarning("W1", "first warning", pos(3, 1))
	r.AddError("E2", "second error", pos(4, 1))

	all := r.All()
	rules := make([]string, len(all))
	for i, d := range all {
		rules[i] = d.Rule
	}
	// Errors first in insertion order, then warnings, then info
	assert.Equal(t, []string{"E1", "E2", "W1", "I1"}, rules)
}

func TestResultAddDispatchesBySeverity(t *testing.T) {
	r := NewResult("q.graphql")
	r.Add(Diagnostic{Rule: "X", Severity: SeverityError})
	r.Add(Diagnostic{Rule: "Y", Severity: SeverityWarning})
	r.Add(Diagnostic{Rule: "Z", Severity: SeverityInfo})

	assert.Len(t, r.ByLevel(SeverityError), 1)
	assert.Len(t, r.ByLevel(SeverityWarning), 1)
	assert.Len(t, r.ByLevel(SeverityInfo), 1)
}

func TestResultMerge(t *testing.T) {
	a := NewResult("a.graphql")
	a.AddError("E1", "one", pos(1, 1))
	a.AddWarning("W1", "two", pos(2, 1))

	b := NewResult("b.graphql")
	b.AddError("E2", "three", pos(3, 1))
	b.AddInfo("I1", "four", pos(4, 1))

	a.Merge(b)

	assert.Equal(t, 2, a.ErrorCount())
	assert.Equal(t, 1, a.WarningCount())
	assert.Equal(t, 1, a.InfoCount())

	// Relative order inside each bucket is preserved
	errs := a.ByLevel(SeverityError)
	assert.Equal(t, "E1", errs[0].Rule)
	assert.Equal(t, "E2", errs[1].Rule)
}

func TestResultMergeCountLaw(t *testing.T) {
	a := NewResult("a.graphql")
	a.AddError("E1", "x", pos(1, 1))
	a.AddWarning("W1", "y", pos(1, 2))

	b := NewResult("b.graphql")
	b.AddWarning("W2", "z", pos(1, 3))

	before := a.Count() + b.Count()
	a.Merge(b)
	assert.Equal(t, before, a.Count())
}

func TestResultMergeNil(t *testing.T) {
	r := NewResult("q.graphql")
	r.AddError("E1", "x", pos(1, 1))
	r.Merge(nil)
	assert.Equal(t, 1, r.Count())
}

func TestResultFilters(t *testing.T) {
	r := NewResult("q.graphql")
	r.Add(Diagnostic{Rule: "SEC001", Category: CategorySecurity, Severity: SeverityError})
	r.Add(Diagnostic{Rule: "SEC001", Category: CategorySecurity, Severity: SeverityWarning})
	r.Add(Diagnostic{Rule: "STY001", Category: CategoryStyle, Severity: SeverityInfo})

	assert.Len(t, r.ByRule("SEC001"), 2)
	assert.Len(t, r.ByCategory(CategoryStyle), 1)
	assert.Len(t, r.AtOrAbove(SeverityWarning), 2)
	assert.Len(t, r.AtOrAbove(SeverityInfo), 3)
}

func TestResultEqual(t *testing.T) {
	make2 := func() *Result {
		r := NewResult("q.graphql")
		r.AddError("E1", "msg", pos(1, 1))
		r.AddWarning("W1", "msg", pos(2, 2))
		return r
	}

	a, b := make2(), make2()
	assert.True(t, a.Equal(b))

	b.AddInfo("I1", "extra", pos(3, 3))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestResultSummary(t *testing.T) {
	r := NewResult("q.graphql")
	assert.Equal(t, "No issues found", r.Summary())

	r.AddError("E1", "x", pos(1, 1))
	r.AddError("E2", "y", pos(2, 1))
	r.AddWarning("W1", "z", pos(3, 1))
	assert.Equal(t, "2 error(s), 1 warning(s)", r.Summary())
}

func TestDiagnosticBuilder(t *testing.T) {
	d := NewDiagnostic("SEC002", CategorySecurity).
		WithSeverity(SeverityWarning).
		WithMessagef("field %q looks sensitive", "ssn").
		WithPos(pos(3, 5)).
		WithContext("  ssn").
		WithHelp("mask it").
		Build()

	assert.Equal(t, "SEC002", d.Rule)
	assert.Equal(t, CategorySecurity, d.Category)
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Equal(t, `field "ssn" looks sensitive`, d.Message)
	assert.Equal(t, 3, d.Pos.Line)
	assert.Equal(t, "  ssn", d.Context)
	assert.Equal(t, "mask it", d.Help)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"error", SeverityError},
		{"warning", SeverityWarning},
		{"info", SeverityInfo},
		{"ERROR", SeverityError},
		{"bogus", SeverityWarning},
		{"", SeverityWarning},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSeverity(tt.in), "input %q", tt.in)
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityInfo < SeverityWarning)
	assert.True(t, SeverityWarning < SeverityError)
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
}
