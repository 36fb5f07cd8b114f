package reporter

import (
	"encoding/json"

	"github.com/gqlex/gqlint/internal/analyzer"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	cfg *Config
}

// JSONOutput is the JSON output structure
type JSONOutput struct {
	Filename    string           `json:"filename"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Summary     JSONSummary      `json:"summary"`
}

// JSONDiagnostic represents a diagnostic in JSON format
type JSONDiagnostic struct {
	Rule      string `json:"rule"`
	Category  string `json:"category"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line,omitempty"`
	EndColumn int    `json:"end_column,omitempty"`
	Context   string `json:"context,omitempty"`
	Help      string `json:"help,omitempty"`
}

// JSONSummary contains summary counts
type JSONSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Report outputs the lint results as JSON
func (r *JSONReporter) Report(result *analyzer.Result, source string) error {
	all := result.All()
	output := JSONOutput{
		Filename:    result.Filename,
		Diagnostics: make([]JSONDiagnostic, 0, len(all)),
		Summary: JSONSummary{
			Total:    result.Count(),
			Errors:   result.ErrorCount(),
			Warnings: result.WarningCount(),
			Info:     result.InfoCount(),
		},
	}

	for _, diag := range all {
		output.Diagnostics = append(output.Diagnostics, JSONDiagnostic{
			Rule:      diag.Rule,
			Category:  string(diag.Category),
			Severity:  diag.Severity.String(),
			Message:   diag.Message,
			Line:      diag.Pos.Line,
			Column:    diag.Pos.Column,
			EndLine:   diag.EndPos.Line,
			EndColumn: diag.EndPos.Column,
			Context:   diag.Context,
			Help:      diag.Help,
		})
	}

	encoder := json.NewEncoder(r.cfg.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
