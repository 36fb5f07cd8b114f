package reporter

import (
	"fmt"

	"github.com/gqlex/gqlint/internal/analyzer"
)

// MarkdownReporter renders results as Markdown, suitable for pasting
// into a pull request comment or a CI job summary
type MarkdownReporter struct {
	cfg *Config
}

func (r *MarkdownReporter) Report(result *analyzer.Result, source string) error {
	w := r.cfg.Writer

	if !result.HasIssues() {
		fmt.Fprintf(w, "## ✅ No issues found\n\nQuery `%s` passed all checks.\n", result.Filename)
		return nil
	}

	fmt.Fprintf(w, "## GraphQL Linting Results: `%s`\n\n", result.Filename)

	fmt.Fprintf(w, "| Severity | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	for _, row := range []struct {
		label string
		count int
	}{
		{"🔴 Error", result.ErrorCount()},
		{"🟡 Warning", result.WarningCount()},
		{"🔵 Info", result.InfoCount()},
	} {
		if row.count > 0 {
			fmt.Fprintf(w, "| %s | %d |\n", row.label, row.count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "### Issues\n\n")

	for _, diag := range result.All() {
		fmt.Fprintf(w, "#### %s `%s` - Line %d\n\n", severityEmoji(diag.Severity), diag.Rule, diag.Pos.Line)
		fmt.Fprintf(w, "%s _(%s, %s:%d:%d)_\n\n", diag.Message, diag.Category, result.Filename, diag.Pos.Line, diag.Pos.Column)

		if diag.Context != "" {
			fmt.Fprintf(w, "```graphql\n%s\n```\n\n", diag.Context)
		}
		if diag.Help != "" {
			fmt.Fprintf(w, "> 💡 %s\n\n", diag.Help)
		}
	}

	return nil
}

func severityEmoji(s analyzer.Severity) string {
	switch s {
	case analyzer.SeverityError:
		return "🔴"
	case analyzer.SeverityWarning:
		return "🟡"
	default:
		return "🔵"
	}
}
