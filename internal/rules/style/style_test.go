package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

func configWith(key string, value interface{}) *config.Config {
	cfg := config.Default()
	cfg.Set(key, value)
	return cfg
}

func run(t *testing.T, rule Rule, source string) []analyzer.Diagnostic {
	t.Helper()
	doc, errs := parser.Parse(source)
	require.Empty(t, errs, "fixture should parse cleanly")
	ctx := analyzer.NewContext(doc, nil, "query.graphql", source)
	return rule.Check(doc, ctx)
}

func rulesByID(id string) Rule {
	for _, r := range All() {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

func TestAllRulesRegistered(t *testing.T) {
	for _, id := range []string{"STY001", "STY002", "STY003", "STY004", "STY005"} {
		assert.NotNil(t, rulesByID(id), "rule %s should self-register", id)
	}
}

func TestSTY001CleanQueryHasNoFindings(t *testing.T) {
	diags := run(t, rulesByID("STY001"), `query GetUser {
  user(id: 4) {
    firstName
    lastName
  }
}`)
	assert.Empty(t, diags)
}

func TestSTY001FlagsNonCamelNames(t *testing.T) {
	diags := run(t, rulesByID("STY001"), `{
  User_Name
  item(Sort_Order: 1)
}`)
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "User_Name")
	assert.Contains(t, diags[1].Message, "Sort_Order")
	for _, d := range diags {
		assert.Equal(t, analyzer.SeverityWarning, d.Severity)
		assert.Equal(t, analyzer.CategoryStyle, d.Category)
	}
}

func TestSTY001FlagsBadAlias(t *testing.T) {
	diags := run(t, rulesByID("STY001"), `{ BadAlias: user { id } }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "BadAlias")
}

func TestSTY001SkipsIntrospectionNames(t *testing.T) {
	diags := run(t, rulesByID("STY001"), `{ __typename }`)
	assert.Empty(t, diags)
}

func TestSTY002FlagsLowercaseDefinitionNames(t *testing.T) {
	diags := run(t, rulesByID("STY002"), `query getUser { id }
fragment userFields on User { id }`)
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "getUser")
	assert.Contains(t, diags[0].Help, "GetUser")
	assert.Contains(t, diags[1].Message, "userFields")
}

func TestSTY002IgnoresAnonymousOperations(t *testing.T) {
	diags := run(t, rulesByID("STY002"), `{ id }`)
	assert.Empty(t, diags)
}

func TestSTY003MultipleSpaces(t *testing.T) {
	diags := run(t, rulesByID("STY003"), "{\n  user(id:  4) { id }\n}")
	require.NotEmpty(t, diags)
	assert.Equal(t, analyzer.SeverityInfo, diags[0].Severity)
}

func TestSTY003ColonSpacing(t *testing.T) {
	diags := run(t, rulesByID("STY003"), "{\n  user(id : 4) { id }\n}")
	require.NotEmpty(t, diags)

	diags = run(t, rulesByID("STY003"), "{\n  user(id:4) { id }\n}")
	require.NotEmpty(t, diags)
}

func TestSTY003SkipsStringsAndComments(t *testing.T) {
	diags := run(t, rulesByID("STY003"), `# comment  with  spaces
{
  search(text: "two  spaces  kept")
}`)
	assert.Empty(t, diags)
}

func TestSTY004LineLength(t *testing.T) {
	long := "{ veryLongFieldName(someArgument: 1, anotherArgument: 2, thirdArgument: 3) { nestedOne nestedTwo nestedThree } }"
	require.Greater(t, len(long), 100)

	diags := run(t, rulesByID("STY004"), long)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "limit 100")
}

func TestSTY004RespectsConfiguredLimit(t *testing.T) {
	source := `{ id name }`
	doc, errs := parser.Parse(source)
	require.Empty(t, errs)

	cfg := configWith("max_line_length", 5)
	ctx := analyzer.NewContext(doc, cfg, "q.graphql", source)
	diags := rulesByID("STY004").Check(doc, ctx)
	assert.Len(t, diags, 1)
}

func TestSTY005ConsistentIndentPasses(t *testing.T) {
	diags := run(t, rulesByID("STY005"), `{
  user {
    id
  }
}`)
	assert.Empty(t, diags)
}

func TestSTY005OffStepIndent(t *testing.T) {
	diags := run(t, rulesByID("STY005"), "{\n  user {\n     id\n  }\n}")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "not a multiple")
}

func TestSTY005MixedTabsAndSpaces(t *testing.T) {
	diags := run(t, rulesByID("STY005"), "{\n\t user { id }\n}")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Mixed tabs and spaces")
}
