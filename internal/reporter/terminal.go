package reporter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gqlex/gqlint/internal/analyzer"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	cfg *Config
}

var (
	errColor    = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	infoColor   = color.New(color.FgBlue)
	helpColor   = color.New(color.FgCyan)
	gutterColor = color.New(color.FgHiBlack)
)

func (r *TerminalReporter) paint(c *color.Color, s string) string {
	if !r.cfg.UseColors {
		return s
	}
	return c.Sprint(s)
}

func (r *TerminalReporter) severityColor(s analyzer.Severity) *color.Color {
	switch s {
	case analyzer.SeverityError:
		return errColor
	case analyzer.SeverityWarning:
		return warnColor
	default:
		return infoColor
	}
}

// Report outputs the lint results
func (r *TerminalReporter) Report(result *analyzer.Result, source string) error {
	w := r.cfg.Writer
	lines := strings.Split(source, "\n")

	for _, diag := range result.All() {
		loc := fmt.Sprintf("%s:%d:%d", result.Filename, diag.Pos.Line, diag.Pos.Column)
		severity := r.paint(r.severityColor(diag.Severity), diag.Severity.String())
		rule := "[" + diag.Rule + "]"
		if r.cfg.Verbose {
			rule = "[" + diag.Rule + "/" + string(diag.Category) + "]"
		}

		fmt.Fprintf(w, "%s %s %s: %s\n", loc, r.paint(gutterColor, rule), severity, diag.Message)

		// Source context
		if diag.Pos.Line > 0 && diag.Pos.Line <= len(lines) {
			lineNum := diag.Pos.Line
			line := lines[lineNum-1]

			gutter := fmt.Sprintf("%4d", lineNum)
			fmt.Fprintf(w, "  %s │ %s\n", r.paint(gutterColor, gutter), line)

			if diag.Pos.Column > 0 {
				padding := strings.Repeat(" ", diag.Pos.Column-1)
				underline := "^"
				if diag.EndPos.Line == diag.Pos.Line && diag.EndPos.Column > diag.Pos.Column {
					underline = strings.Repeat("─", diag.EndPos.Column-diag.Pos.Column)
				}
				fmt.Fprintf(w, "       │ %s%s\n", padding, r.paint(r.severityColor(diag.Severity), underline))
			}
		}

		if diag.Help != "" {
			fmt.Fprintf(w, "       │\n")
			fmt.Fprintf(w, "       = %s: %s\n", r.paint(helpColor, "help"), diag.Help)
		}

		fmt.Fprintln(w)
	}

	// Summary
	var parts []string
	if c := result.ErrorCount(); c > 0 {
		parts = append(parts, r.paint(errColor, fmt.Sprintf("%d error(s)", c)))
	}
	if c := result.WarningCount(); c > 0 {
		parts = append(parts, r.paint(warnColor, fmt.Sprintf("%d warning(s)", c)))
	}
	if c := result.InfoCount(); c > 0 {
		parts = append(parts, r.paint(infoColor, fmt.Sprintf("%d info", c)))
	}

	if len(parts) > 0 {
		fmt.Fprintf(w, "Found %s in %s\n", strings.Join(parts, ", "), result.Filename)
	} else {
		fmt.Fprintf(w, "%s No issues found in %s\n", r.paint(gutterColor, "✓"), result.Filename)
	}

	return nil
}
