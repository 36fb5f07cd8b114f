package style

import (
	"regexp"
	"strings"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/lexer"
	"github.com/gqlex/gqlint/internal/parser"
)

// STY003Whitespace checks for inconsistent spacing on source lines
type STY003Whitespace struct{}

func (r *STY003Whitespace) ID() string                  { return "STY003" }
func (r *STY003Whitespace) Name() string                { return "whitespace" }
func (r *STY003Whitespace) Category() analyzer.Category { return analyzer.CategoryStyle }
func (r *STY003Whitespace) Severity() analyzer.Severity { return analyzer.SeverityInfo }

func (r *STY003Whitespace) Description() string {
	return "Interior runs of multiple spaces and missing or misplaced spaces around colons make queries harder to scan."
}

var (
	multiSpace       = regexp.MustCompile(`\S( {2,})\S`)
	spaceBeforeColon = regexp.MustCompile(`\S( +):`)
	noSpaceAfterColon = regexp.MustCompile(`:[^\s)\]}]`)
)

func (r *STY003Whitespace) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	var diags []analyzer.Diagnostic

	for lineNum, line := range ctx.SourceLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// String literals may legitimately contain any spacing
		if strings.Contains(line, `"`) {
			continue
		}

		report := func(col int, msg string) {
			diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
				WithSeverity(r.Severity()).
				WithMessage(msg).
				WithPos(lexer.Position{Line: lineNum + 1, Column: col}).
				WithContext(line).
				Build())
		}

		if loc := multiSpace.FindStringSubmatchIndex(line); loc != nil {
			report(loc[2]+1, "Multiple consecutive spaces")
		}
		if loc := spaceBeforeColon.FindStringSubmatchIndex(line); loc != nil {
			report(loc[2]+1, "Space before ':'")
		}
		if loc := noSpaceAfterColon.FindStringIndex(line); loc != nil {
			report(loc[0]+1, "Missing space after ':'")
		}
	}

	return diags
}

func init() {
	Register(&STY003Whitespace{})
}
