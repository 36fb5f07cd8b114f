package style

import (
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/lexer"
	"github.com/gqlex/gqlint/internal/parser"
)

// STY005Indentation checks that indentation uses a uniform step
type STY005Indentation struct{}

func (r *STY005Indentation) ID() string                  { return "STY005" }
func (r *STY005Indentation) Name() string                { return "indentation" }
func (r *STY005Indentation) Category() analyzer.Category { return analyzer.CategoryStyle }
func (r *STY005Indentation) Severity() analyzer.Severity { return analyzer.SeverityInfo }

func (r *STY005Indentation) Description() string {
	return "Indentation should use one consistent step (no mixed tabs and spaces, no off-step indents)."
}

func (r *STY005Indentation) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	// Infer the step from the smallest non-zero space indent
	step := 0
	for _, line := range ctx.SourceLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := leadingSpaces(line)
		if indent > 0 && (step == 0 || indent < step) {
			step = indent
		}
	}

	for lineNum, line := range ctx.SourceLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if strings.Contains(indent, "\t") && strings.Contains(indent, " ") {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(r.Severity()).
				WithMessage("Mixed tabs and spaces in indentation").
				WithPos(lexer.Position{Line: lineNum + 1, Column: 1}).
				WithContext(line).
				Build())
			continue
		}
		if strings.Contains(indent, "\t") {
			// Tab-only indentation is internally consistent
			continue
		}
		if spaces := leadingSpaces(line); step > 0 && spaces%step != 0 {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(r.Severity()).
				WithMessagef("Indent of %d spaces is not a multiple of the %d-space step", spaces, step).
				WithPos(lexer.Position{Line: lineNum + 1, Column: 1}).
				WithContext(line).
				Build())
		}
	}

	return diags
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

func init() {
	Register(&STY005Indentation{})
}
