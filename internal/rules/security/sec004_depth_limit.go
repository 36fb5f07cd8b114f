package security

import (
	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// SEC004DepthLimit enforces the security depth ceiling, which is
// deliberately stricter than the performance one, and flags
// depth-times-breadth shapes that can blow up response size
type SEC004DepthLimit struct{}

func (r *SEC004DepthLimit) ID() string                  { return "SEC004" }
func (r *SEC004DepthLimit) Name() string                { return "depth-limit" }
func (r *SEC004DepthLimit) Category() analyzer.Category { return analyzer.CategorySecurity }
func (r *SEC004DepthLimit) Severity() analyzer.Severity { return analyzer.SeverityError }

func (r *SEC004DepthLimit) Description() string {
	return "Deep or deep-and-wide queries are the classic denial-of-service shape against a GraphQL endpoint."
}

func (r *SEC004DepthLimit) Check(doc *parser.Document, ctx *analyzer.Context) []analyzer.Diagnostic {
	maxDepth := ctx.Int(config.KeyMaxSecurityDepth, 3)
	maxBreadth := ctx.Int(config.KeyMaxSelectionSet, 20)

	var diags []analyzer.Diagnostic

	depth := ctx.MaxDepth()
	if depth > maxDepth {
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(analyzer.SeverityError).
			WithMessagef("Query depth %d exceeds the security limit of %d", depth, maxDepth).
			WithNode(doc).
			WithHelp("Enforce a depth limit server-side as well; this query would be rejected").
			Build())
	}

	// Widest selection set anywhere in the document
	breadth := 0
	ctx.Walk(func(n parser.Node) {
		if set, ok := n.(*parser.SelectionSet); ok && len(set.Selections) > breadth {
			breadth = len(set.Selections)
		}
	})

	if depth*breadth > maxDepth*maxBreadth {
		diags = append(diags, analyzer.NewDiagnostic(r.ID(), r.Category()).
			WithSeverity(analyzer.SeverityWarning).
			WithMessagef("Depth %d with breadth %d risks exponential response growth", depth, breadth).
			WithNode(doc).
			Build())
	}

	return diags
}

func init() {
	Register(&SEC004DepthLimit{})
}
