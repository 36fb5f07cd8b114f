package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/lexer"
)

const testSource = "query GetUser {\n  user(id: 4) {\n    User_Name\n  }\n}"

func testResult() *analyzer.Result {
	result := analyzer.NewResult("query.graphql")
	result.Add(analyzer.NewDiagnostic("STY001", analyzer.CategoryStyle).
		WithSeverity(analyzer.SeverityWarning).
		WithMessage(`Field "User_Name" is not camelCase`).
		WithRange(lexer.Position{Line: 3, Column: 5}, lexer.Position{Line: 3, Column: 14}).
		WithContext("    User_Name").
		WithHelp(`Rename to "userName"`).
		Build())
	result.Add(analyzer.NewDiagnostic("SEC001", analyzer.CategorySecurity).
		WithSeverity(analyzer.SeverityError).
		WithMessage(`Introspection root "__schema" must not be queried`).
		WithPos(lexer.Position{Line: 2, Column: 3}).
		Build())
	return result
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTerminal, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestNewDispatchesOnFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &TerminalReporter{}, New(FormatTerminal, &buf))
	assert.IsType(t, &JSONReporter{}, New(FormatJSON, &buf))
	assert.IsType(t, &SARIFReporter{}, New(FormatSARIF, &buf))
	assert.IsType(t, &MarkdownReporter{}, New(FormatMarkdown, &buf))
	assert.IsType(t, &GitHubReporter{}, New(FormatGitHub, &buf))
	assert.IsType(t, &TerminalReporter{}, New(Format("bogus"), &buf))
}

func TestTerminalReport(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatTerminal, &buf, WithColors(false))
	require.NoError(t, r.Report(testResult(), testSource))

	out := buf.String()
	// Errors come before warnings regardless of add order
	errIdx := strings.Index(out, "query.graphql:2:3 [SEC001] error:")
	warnIdx := strings.Index(out, "query.graphql:3:5 [STY001] warning:")
	require.GreaterOrEqual(t, errIdx, 0)
	require.GreaterOrEqual(t, warnIdx, 0)
	assert.Less(t, errIdx, warnIdx)

	assert.Contains(t, out, "    User_Name")
	assert.Contains(t, out, "─────────")
	assert.Contains(t, out, `help: Rename to "userName"`)
	assert.Contains(t, out, "Found 1 error(s), 1 warning(s) in query.graphql")
}

func TestTerminalReportVerboseShowsCategory(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatTerminal, &buf, WithColors(false), WithVerbose(true))
	require.NoError(t, r.Report(testResult(), testSource))
	assert.Contains(t, buf.String(), "[SEC001/security]")
}

func TestTerminalReportClean(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatTerminal, &buf, WithColors(false))
	require.NoError(t, r.Report(analyzer.NewResult("query.graphql"), testSource))
	assert.Contains(t, buf.String(), "No issues found in query.graphql")
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatJSON, &buf)
	require.NoError(t, r.Report(testResult(), testSource))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "query.graphql", out.Filename)
	require.Len(t, out.Diagnostics, 2)
	assert.Equal(t, "SEC001", out.Diagnostics[0].Rule)
	assert.Equal(t, "error", out.Diagnostics[0].Severity)
	assert.Equal(t, 2, out.Diagnostics[0].Line)
	assert.Equal(t, "STY001", out.Diagnostics[1].Rule)
	assert.Equal(t, "security", out.Diagnostics[0].Category)
	assert.Equal(t, 2, out.Summary.Total)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.Equal(t, 1, out.Summary.Warnings)
}

func TestSARIFReport(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatSARIF, &buf)
	require.NoError(t, r.Report(testResult(), testSource))

	var out SARIFLog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "2.1.0", out.Version)
	require.Len(t, out.Runs, 1)

	run := out.Runs[0]
	assert.Equal(t, "gqlint", run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, []string{"security"}, run.Tool.Driver.Rules[0].Properties.Tags)
	require.Len(t, run.Results, 2)

	res := run.Results[0]
	assert.Equal(t, "SEC001", res.RuleID)
	assert.Equal(t, "error", res.Level)
	require.Len(t, res.Locations, 1)
	assert.Equal(t, "query.graphql", res.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 2, res.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestMarkdownReport(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatMarkdown, &buf)
	require.NoError(t, r.Report(testResult(), testSource))

	out := buf.String()
	assert.Contains(t, out, "## GraphQL Linting Results: `query.graphql`")
	assert.Contains(t, out, "| 🔴 Error | 1 |")
	assert.Contains(t, out, "| 🟡 Warning | 1 |")
	assert.Contains(t, out, "#### 🔴 `SEC001` - Line 2")
	assert.Contains(t, out, "```graphql\n    User_Name\n```")
	assert.Contains(t, out, "> 💡 Rename to")
}

func TestMarkdownReportClean(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatMarkdown, &buf)
	require.NoError(t, r.Report(analyzer.NewResult("query.graphql"), testSource))
	assert.Contains(t, buf.String(), "## ✅ No issues found")
}

func TestGitHubReport(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatGitHub, &buf)
	require.NoError(t, r.Report(testResult(), testSource))

	out := buf.String()
	assert.Contains(t, out, "::error file=query.graphql,line=2,col=3,title=SEC001::")
	assert.Contains(t, out, "::warning file=query.graphql,line=3,col=5,endLine=3,endColumn=14,title=STY001::")
	assert.Contains(t, out, "::group::Summary")
	assert.Contains(t, out, "Found 2 issue(s) in query.graphql")
	assert.Contains(t, out, "::endgroup::")
}

func TestGitHubReportCleanHasNoSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatGitHub, &buf)
	require.NoError(t, r.Report(analyzer.NewResult("query.graphql"), testSource))
	assert.Empty(t, buf.String())
}
