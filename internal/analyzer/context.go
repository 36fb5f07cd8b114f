package analyzer

import (
	"strings"

	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// IntrospectionPrefix is the name prefix reserved for introspection
const IntrospectionPrefix = "__"

// Context wraps one parsed document and one configuration snapshot for
// the duration of a single lint call. It owns the generic traversal and
// the derived metrics every rule reuses. Metrics are recomputed per
// call; a Context never outlives the run that created it
type Context struct {
	Filename    string
	Source      string
	SourceLines []string

	doc *parser.Document
	cfg *config.Config
}

// NewContext creates a context for one analysis run
func NewContext(doc *parser.Document, cfg *config.Config, filename, source string) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Filename:    filename,
		Source:      source,
		SourceLines: splitLines(source),
		doc:         doc,
		cfg:         cfg,
	}
}

// Document returns the document under analysis. Read-only by contract
func (c *Context) Document() *parser.Document {
	return c.doc
}

// Config returns the configuration snapshot
func (c *Context) Config() *config.Config {
	return c.cfg
}

// Int returns a typed config value with a default
func (c *Context) Int(key string, def int) int { return c.cfg.Int(key, def) }

// Bool returns a typed config value with a default
func (c *Context) Bool(key string, def bool) bool { return c.cfg.Bool(key, def) }

// Strings returns a typed config value with a default
func (c *Context) Strings(key string, def []string) []string { return c.cfg.Strings(key, def) }

// GetLine returns the source line at the given line number (1-based)
func (c *Context) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(c.SourceLines) {
		return ""
	}
	return c.SourceLines[lineNum-1]
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// Walk performs a pre-order traversal of the document in source order.
// Every node is visited exactly once, including intermediate containers
// (selection sets, arguments, directives) and values. Absent children
// are skipped, never an error
func (c *Context) Walk(visit func(parser.Node)) {
	if c.doc == nil {
		return
	}
	visit(c.doc)
	for _, def := range c.doc.Definitions {
		switch d := def.(type) {
		case *parser.OperationDefinition:
			c.walkOperation(d, visit)
		case *parser.FragmentDefinition:
			c.walkFragmentDefinition(d, visit)
		}
	}
}

func (c *Context) walkOperation(op *parser.OperationDefinition, visit func(parser.Node)) {
	if op == nil {
		return
	}
	visit(op)
	for _, v := range op.Variables {
		if v == nil {
			continue
		}
		visit(v)
		c.walkValue(v.Default, visit)
	}
	c.walkDirectives(op.Directives, visit)
	c.walkSelectionSet(op.Selections, visit)
}

func (c *Context) walkFragmentDefinition(frag *parser.FragmentDefinition, visit func(parser.Node)) {
	if frag == nil {
		return
	}
	visit(frag)
	c.walkDirectives(frag.Directives, visit)
	c.walkSelectionSet(frag.Selections, visit)
}

func (c *Context) walkSelectionSet(set *parser.SelectionSet, visit func(parser.Node)) {
	if set == nil {
		return
	}
	visit(set)
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *parser.Field:
			visit(s)
			c.walkArguments(s.Arguments, visit)
			c.walkDirectives(s.Directives, visit)
			c.walkSelectionSet(s.Selections, visit)
		case *parser.FragmentSpread:
			visit(s)
			c.walkDirectives(s.Directives, visit)
		case *parser.InlineFragment:
			visit(s)
			c.walkDirectives(s.Directives, visit)
			c.walkSelectionSet(s.Selections, visit)
		}
	}
}

func (c *Context) walkArguments(args []*parser.Argument, visit func(parser.Node)) {
	for _, arg := range args {
		if arg == nil {
			continue
		}
		visit(arg)
		c.walkValue(arg.Value, visit)
	}
}

func (c *Context) walkDirectives(dirs []*parser.Directive, visit func(parser.Node)) {
	for _, dir := range dirs {
		if dir == nil {
			continue
		}
		visit(dir)
		c.walkArguments(dir.Arguments, visit)
	}
}

func (c *Context) walkValue(v parser.Value, visit func(parser.Node)) {
	if v == nil {
		return
	}
	visit(v)
	switch val := v.(type) {
	case *parser.ListValue:
		for _, item := range val.Values {
			c.walkValue(item, visit)
		}
	case *parser.ObjectValue:
		for _, field := range val.Fields {
			if field == nil {
				continue
			}
			visit(field)
			c.walkValue(field.Value, visit)
		}
	}
}

// FindFields returns every field matching the predicate, in source order
func (c *Context) FindFields(pred func(*parser.Field) bool) []*parser.Field {
	var fields []*parser.Field
	c.Walk(func(n parser.Node) {
		if f, ok := n.(*parser.Field); ok && (pred == nil || pred(f)) {
			fields = append(fields, f)
		}
	})
	return fields
}

// FindArguments returns every argument matching the predicate
func (c *Context) FindArguments(pred func(*parser.Argument) bool) []*parser.Argument {
	var args []*parser.Argument
	c.Walk(func(n parser.Node) {
		if a, ok := n.(*parser.Argument); ok && (pred == nil || pred(a)) {
			args = append(args, a)
		}
	})
	return args
}

// FindDirectives returns every directive matching the predicate
func (c *Context) FindDirectives(pred func(*parser.Directive) bool) []*parser.Directive {
	var dirs []*parser.Directive
	c.Walk(func(n parser.Node) {
		if d, ok := n.(*parser.Directive); ok && (pred == nil || pred(d)) {
			dirs = append(dirs, d)
		}
	})
	return dirs
}

// MaxDepth returns the maximum selection-set nesting over all
// definitions. A document selecting only top-level scalars has depth 1.
// Inline fragment braces do not add a level: depth counts field nesting
func (c *Context) MaxDepth() int {
	if c.doc == nil {
		return 0
	}
	max := 0
	for _, def := range c.doc.Definitions {
		var d int
		switch t := def.(type) {
		case *parser.OperationDefinition:
			d = selectionDepth(t.Selections)
		case *parser.FragmentDefinition:
			d = selectionDepth(t.Selections)
		}
		if d > max {
			max = d
		}
	}
	return max
}

func selectionDepth(set *parser.SelectionSet) int {
	if set == nil || len(set.Selections) == 0 {
		return 0
	}
	max := 1
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *parser.Field:
			if d := 1 + selectionDepth(s.Selections); d > max {
				max = d
			}
		case *parser.InlineFragment:
			if d := selectionDepth(s.Selections); d > max {
				max = d
			}
		}
	}
	return max
}

// FieldCount returns the total number of field nodes in the document
func (c *Context) FieldCount() int {
	count := 0
	c.Walk(func(n parser.Node) {
		if _, ok := n.(*parser.Field); ok {
			count++
		}
	})
	return count
}

// ArgumentCount returns the total number of argument nodes, including
// directive arguments
func (c *Context) ArgumentCount() int {
	count := 0
	c.Walk(func(n parser.Node) {
		if _, ok := n.(*parser.Argument); ok {
			count++
		}
	})
	return count
}

// DirectiveCount returns the total number of directive nodes
func (c *Context) DirectiveCount() int {
	count := 0
	c.Walk(func(n parser.Node) {
		if _, ok := n.(*parser.Directive); ok {
			count++
		}
	})
	return count
}

// ContainsIntrospection returns true if any field name carries the
// reserved __ prefix
func (c *Context) ContainsIntrospection() bool {
	found := false
	c.Walk(func(n parser.Node) {
		if f, ok := n.(*parser.Field); ok && strings.HasPrefix(f.Name, IntrospectionPrefix) {
			found = true
		}
	})
	return found
}

// Operations returns the document's operation definitions in source order
func (c *Context) Operations() []*parser.OperationDefinition {
	if c.doc == nil {
		return nil
	}
	return c.doc.Operations()
}

// Queries returns the query operations
func (c *Context) Queries() []*parser.OperationDefinition {
	return c.operationsOfKind(parser.OperationQuery)
}

// Mutations returns the mutation operations
func (c *Context) Mutations() []*parser.OperationDefinition {
	return c.operationsOfKind(parser.OperationMutation)
}

// Subscriptions returns the subscription operations
func (c *Context) Subscriptions() []*parser.OperationDefinition {
	return c.operationsOfKind(parser.OperationSubscription)
}

func (c *Context) operationsOfKind(kind string) []*parser.OperationDefinition {
	var ops []*parser.OperationDefinition
	for _, op := range c.Operations() {
		if op.Operation == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns the document's fragment definitions in source order
func (c *Context) Fragments() []*parser.FragmentDefinition {
	if c.doc == nil {
		return nil
	}
	return c.doc.Fragments()
}
