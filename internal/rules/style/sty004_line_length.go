package style

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/lexer"
	"github.com/gqlex/gqlint/internal/parser"
)

// STY004LineLength checks for source lines over the configured maximum
type STY004LineLength struct{}

func (r *STY004LineLength) ID() string                  { return "STY004" }
func (r *STY004LineLength) Name() string                { return "line-length" }
func (r *STY004LineLength) Category() analyzer.Category { return analyzer.CategoryStyle }
func (r *STY004LineLength) Severity() analyzer.Severity { return analyzer.SeverityInfo }

func (r *STY004LineLength) Description() string {
	return "Long lines usually mean too many inline selections or arguments; break them up for readability."
}

func (r *STY004LineLength) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxLen := ctx.Int(config.KeyMaxLineLength, 100)

	var diags []analyzer.Diagnostic
	for lineNum, line := range ctx.SourceLines {
		if len(line) <= maxLen {
			continue
		}
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(r.Severity()).
			WithMessagef("Line is %d characters long (limit %d)", len(line), maxLen).
			WithPos(lexer.Position{Line: lineNum + 1, Column: maxLen + 1}).
			WithContext(line).
			Build())
	}
	return diags
}

func init() {
	Register(&STY004LineLength{})
}
