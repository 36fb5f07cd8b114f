package reporter

import (
	"fmt"
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
)

// GitHubReporter emits GitHub Actions workflow commands so lint
// findings show up as inline annotations on pull requests
type GitHubReporter struct {
	cfg *Config
}

func (r *GitHubReporter) Report(result *analyzer.Result, source string) error {
	w := r.cfg.Writer

	for _, diag := range result.All() {
		props := []string{
			fmt.Sprintf("file=%s", result.Filename),
			fmt.Sprintf("line=%d", diag.Pos.Line),
			fmt.Sprintf("col=%d", diag.Pos.Column),
		}
		if diag.EndPos.Line >= diag.Pos.Line && diag.EndPos.Column > 0 {
			props = append(props,
				fmt.Sprintf("endLine=%d", diag.EndPos.Line),
				fmt.Sprintf("endColumn=%d", diag.EndPos.Column))
		}
		props = append(props, fmt.Sprintf("title=%s", diag.Rule))

		fmt.Fprintf(w, "::%s %s::%s\n", githubLevel(diag.Severity), strings.Join(props, ","), diag.Message)
	}

	if result.HasErrors() || result.HasWarnings() {
		fmt.Fprintf(w, "::group::Summary\n")
		fmt.Fprintf(w, "Found %d issue(s) in %s\n", result.Count(), result.Filename)
		fmt.Fprintf(w, "::endgroup::\n")
	}

	return nil
}

func githubLevel(s analyzer.Severity) string {
	switch s {
	case analyzer.SeverityError:
		return "error"
	case analyzer.SeverityWarning:
		return "warning"
	default:
		return "notice"
	}
}
