package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

func run(t *testing.T, rule Rule, source string) []analyzer.Diagnostic {
	return runWithConfig(t, rule, source, config.Default())
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
	for _, id := range []string{"SEC001", "SEC002", "SEC003", "SEC004", "SEC005", "SEC006"} {
		assert.NotNil(t, ruleByID(id), "rule %s should self-register", id)
	}
}

func TestSEC001IntrospectionRoot(t *testing.T) {
	diags := run(t, ruleByID("SEC001"), `{ __schema { types { name } } }`)
	require.Len(t, diags, 2)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "__schema")
	// Trailing document-level note
	assert.Equal(t, analyzer.SeverityWarning, diags[1].Severity)
}

func TestSEC001TypenameIsOnlyWarning(t *testing.T) {
	diags := run(t, ruleByID("SEC001"), `{ user { __typename id } }`)
	require.Len(t, diags, 2)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "__typename")
}

func TestSEC001AllowedByConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyAllowIntrospection, true)
	diags := runWithConfig(t, ruleByID("SEC001"), `{ __schema { types { name } } }`, cfg)
	assert.Empty(t, diags)
}

func TestSEC001CleanQuery(t *testing.T) {
	diags := run(t, ruleByID("SEC001"), `{ user { id name } }`)
	assert.Empty(t, diags)
}

func TestSEC002SensitiveField(t *testing.T) {
	diags := run(t, ruleByID("SEC002"), `{ user { id ssn } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, `"ssn"`)
}

func TestSEC002CamelCaseMatchesSnakeTerm(t *testing.T) {
	// Separator stripping lets snake_case vocabulary hit camelCase names
	diags := run(t, ruleByID("SEC002"), `{ account { creditCard } }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"creditCard"`)
}

func TestSEC002SensitiveArgument(t *testing.T) {
	diags := run(t, ruleByID("SEC002"), `mutation { login(password: "x") { ok } }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Argument")
}

func TestSEC002CustomVocabulary(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeySensitiveFieldTerms, []string{"shoeSize"})
	diags := runWithConfig(t, ruleByID("SEC002"), `{ user { ssn shoeSize } }`, cfg)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"shoeSize"`)
}

func TestSEC002CleanQuery(t *testing.T) {
	diags := run(t, ruleByID("SEC002"), `{ user { id name email } }`)
	assert.Empty(t, diags)
}

func TestSEC003SQLInjection(t *testing.T) {
	diags := run(t, ruleByID("SEC003"), `{ search(q: "1 UNION SELECT * FROM users") { id } }`)
	require.NotEmpty(t, diags)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "SQL injection")
}

func TestSEC003ScriptInjection(t *testing.T) {
	diags := run(t, ruleByID("SEC003"), `{ render(html: "<script>alert(1)</script>") { ok } }`)
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Severity == analyzer.SeverityError {
			assert.Contains(t, d.Message, "script injection")
			found = true
		}
	}
	assert.True(t, found, "expected a script injection error")
}

func TestSEC003PathTraversal(t *testing.T) {
	diags := run(t, ruleByID("SEC003"), `{ file(path: "../../etc/passwd") { body } }`)
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "path traversal")
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
}

func TestSEC003UnsafeCharactersAreWarning(t *testing.T) {
	diags := run(t, ruleByID("SEC003"), `{ search(q: "O'Brien") { id } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "unsafe characters")
}

func TestSEC003CleanQuery(t *testing.T) {
	diags := run(t, ruleByID("SEC003"), `query GetUser { user(name: "alice") { id } }`)
	assert.Empty(t, diags)
}

func TestSEC004DepthWithinLimit(t *testing.T) {
	diags := run(t, ruleByID("SEC004"), `{ a { b { c } } }`)
	assert.Empty(t, diags)
}

func TestSEC004DepthOverLimit(t *testing.T) {
	diags := run(t, ruleByID("SEC004"), `{ a { b { c { d } } } }`)
	require.NotEmpty(t, diags)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "depth 4")
}

func TestSEC004DepthTimesBreadth(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyMaxSecurityDepth, 3)
	cfg.Set(config.KeyMaxSelectionSet, 2)
	// Depth 3, widest set 3: 9 > 6
	diags := runWithConfig(t, ruleByID("SEC004"), `{ a { b { x y z } } }`, cfg)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "exponential")
}

func TestSEC005ComplexityOverLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyMaxComplexity, 3)
	// user scores 1 + 1 arg + 2 children, id and name 1 each: 6
	diags := runWithConfig(t, ruleByID("SEC005"), `{ user(id: 1) { id name } }`, cfg)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "score 6")
}

func TestSEC005WithinLimit(t *testing.T) {
	diags := run(t, ruleByID("SEC005"), `{ user { id name } }`)
	assert.Empty(t, diags)
}

func TestSEC006AdminField(t *testing.T) {
	diags := run(t, ruleByID("SEC006"), `{ adminPanel { users { id } } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, analyzer.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, `"adminPanel"`)
	assert.Contains(t, diags[0].Message, `"admin"`)
}

func TestSEC006OneDiagnosticPerField(t *testing.T) {
	// internalAdmin matches both "admin" and "internal"; only one diag
	diags := run(t, ruleByID("SEC006"), `{ internalAdmin { id } }`)
	assert.Len(t, diags, 1)
}

func TestSEC006CustomTerms(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyAccessControlTerms, []string{"staff"})
	diags := runWithConfig(t, ruleByID("SEC006"), `{ adminPanel staffOnly }`, cfg)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"staffOnly"`)
}

func TestSEC006CleanQuery(t *testing.T) {
	diags := run(t, ruleByID("SEC006"), `{ user { id name } }`)
	assert.Empty(t, diags)
}
