package bestpractice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

func run(t *testing.T, rule Rule, source string) []analyzer.Diagnostic {
	t.Helper()
	return runWithConfig(t, rule, source, nil)
}

func runWithConfig(t *testing.T, rule Rule, source string, cfg *config.Config) []analyzer.Diagnostic {
	t.Helper()
	doc, errs := parser.Parse(source)
	require.Empty(t, errs, "fixture should parse cleanly")
	ctx := analyzer.NewContext(doc, cfg, "query.graphql", source)
	return rule.Check(doc, ctx)
}

func ruleByID(id string) Rule {
	for _, r := range All() {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

func TestAllRulesRegistered(t *testing.T) {
	for _, id := range []string{"BP001", "BP002", "BP003", "BP004", "BP005", "BP006", "BP007", "BP008"} {
		assert.NotNil(t, ruleByID(id), "rule %s should self-register", id)
	}
}

func TestBP001RedundantAlias(t *testing.T) {
	diags := run(t, ruleByID("BP001"), `{ user: user { id } }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"user"`)

	assert.Empty(t, run(t, ruleByID("BP001"), `{ profile: user { id } }`))
}

func TestBP002DuplicateField(t *testing.T) {
	diags := run(t, ruleByID("BP002"), `{ user { name name } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, `"name"`)
}

func TestBP002DuplicateReportedOncePerName(t *testing.T) {
	diags := run(t, ruleByID("BP002"), `{ user { name name name } }`)
	assert.Len(t, diags, 1)
}

func TestBP002AliasResolvesConflict(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP002"), `{ user { name nick: name } }`))
}

func TestBP002AliasCreatesConflict(t *testing.T) {
	diags := run(t, ruleByID("BP002"), `{ user { name name: nickname } }`)
	assert.Len(t, diags, 1)
}

func TestBP002SeparateSetsDoNotConflict(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP002"), `{ a { name } b { name } }`))
}

func TestBP003RepeatedUnaliasedNonLeaf(t *testing.T) {
	diags := run(t, ruleByID("BP003"), `{
  left { details { a } }
  right { details { b } }
}`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"details"`)
}

func TestBP003ExemptNamesAndLeaves(t *testing.T) {
	// Leaf fields and common names recur legitimately
	assert.Empty(t, run(t, ruleByID("BP003"), `{
  left { id name status }
  right { id name status }
}`))
}

func TestBP004UnusedFragment(t *testing.T) {
	diags := run(t, ruleByID("BP004"), `{ user { id } }
fragment Unused on User { name }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, `"Unused"`)
}

func TestBP004UndefinedSpread(t *testing.T) {
	diags := run(t, ruleByID("BP004"), `{ user { ...Missing } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, `"Missing"`)
}

func TestBP004UndefinedSpreadReportedOncePerName(t *testing.T) {
	diags := run(t, ruleByID("BP004"), `{ a { ...Missing } b { ...Missing } }`)
	assert.Len(t, diags, 1)
}

func TestBP004CleanFragmentUsage(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP004"), `{ user { ...UserFields } }
fragment UserFields on User { id name }`))
}

func TestBP004ExcessiveSpreads(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyMaxFragmentSpreads, 2)

	diags := runWithConfig(t, ruleByID("BP004"), `{
  a { ...F }
  b { ...F }
  c { ...F }
}
fragment F on User { id }`, cfg)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityInfo, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "spread 3 times")
}

func TestBP004OversizedFragment(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyMaxFragmentFields, 2)

	diags := runWithConfig(t, ruleByID("BP004"), `{ user { ...F } }
fragment F on User { a b c }`, cfg)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "selects 3 fields")
}

func TestBP005UnusedVariable(t *testing.T) {
	diags := run(t, ruleByID("BP005"), `query Q($unused: Int) { user { id } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "$unused")
}

func TestBP005UndeclaredVariable(t *testing.T) {
	diags := run(t, ruleByID("BP005"), `query Q { user(id: $missing) { id } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "$missing")
}

func TestBP005UsesInsideValuesAndDirectives(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP005"), `query Q($ids: [ID!], $flag: Boolean!) {
  items(filter: {ids: $ids}) @include(if: $flag) { id }
}`))
}

func TestBP005UseInsideSpreadFragmentCounts(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP005"), `query Q($size: Int!) { user { ...Avatar } }
fragment Avatar on User { avatar(size: $size) }`))
}

func TestBP005UseInsideNestedSpreadCounts(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP005"), `query Q($size: Int!) { user { ...Profile } }
fragment Profile on User { ...Avatar }
fragment Avatar on User { avatar(size: $size) }`))
}

func TestBP005UndeclaredInsideFragment(t *testing.T) {
	diags := run(t, ruleByID("BP005"), `query Q { user { ...Avatar } }
fragment Avatar on User { avatar(size: $size) }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "$size")
}

func TestBP005SpreadCycleTerminates(t *testing.T) {
	diags := run(t, ruleByID("BP005"), `query Q($id: ID!) { ...A }
fragment A on User { node(id: $id) { ...B } }
fragment B on User { ...A }`)
	assert.Empty(t, diags)
}

func TestBP005PerOperationScope(t *testing.T) {
	// $id is declared in A but used in B
	diags := run(t, ruleByID("BP005"), `query A($id: ID!) { user { name } }
query B { user(id: $id) { name } }`)
	require.Len(t, diags, 2)
}

func TestBP006AnonymousOperation(t *testing.T) {
	diags := run(t, ruleByID("BP006"), `query { id }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)

	assert.Empty(t, run(t, ruleByID("BP006"), `query Named { id }`))
}

func TestBP006ShorthandIsNotFlagged(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP006"), `{ user { id } }`))
}

func TestBP006MultipleAnonymousOperations(t *testing.T) {
	// The shorthand exemption does not extend to a second anonymous
	// operation; the document itself is invalid
	diags := run(t, ruleByID("BP006"), `{ a }
{ b }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "2 anonymous")
}

func TestBP006MixedAnonymousOperations(t *testing.T) {
	diags := run(t, ruleByID("BP006"), `query { a }
{ b }`)
	// One warning for the keyworded anonymous operation, one error for
	// the pair
	require.Len(t, diags, 2)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Equal(t, analyzer.SeverityError, diags[1].Severity)
}

func TestBP007TooManyArguments(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyMaxArgumentsPerField, 2)

	diags := runWithConfig(t, ruleByID("BP007"), `{ search(a: 1, b: 2, c: 3) { id } }`, cfg)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "3 arguments")
}

func TestBP007ForbiddenDirective(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyForbiddenDirectives, []string{"deprecated"})

	diags := runWithConfig(t, ruleByID("BP007"), `{ user @deprecated { id } }`, cfg)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "@deprecated")
}

func TestBP007DirectiveNaming(t *testing.T) {
	diags := run(t, ruleByID("BP007"), `{ user @BadName { id } }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "lowerCamelCase")

	assert.Empty(t, run(t, ruleByID("BP007"), `{ user @include(if: true) { id } }`))
}

func TestBP008WideSelectionSet(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyOverfetchThreshold, 3)

	diags := runWithConfig(t, ruleByID("BP008"), `{ user { a b c d } }`, cfg)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "4 fields")
}

func TestBP008FetchEverythingShape(t *testing.T) {
	diags := run(t, ruleByID("BP008"), `{
  user {
    id
    name
    title
    description
    status
    type
  }
}`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityInfo, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "fetch-everything")
}

func TestBP008SingleFieldChain(t *testing.T) {
	diags := run(t, ruleByID("BP008"), `{ a { b { c } } }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "single-field nesting chain")
}

func TestBP008ReasonableQueryPasses(t *testing.T) {
	assert.Empty(t, run(t, ruleByID("BP008"), `{
  user {
    id
    name
    posts { title body }
  }
}`))
}
