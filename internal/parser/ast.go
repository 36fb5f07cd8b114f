package parser

import (
	"github.com/gqlex/gqlint/internal/lexer"
)

// Node is the interface implemented by all AST nodes
type Node interface {
	Pos() lexer.Position
	End() lexer.Position
	node()
}

// Definition is a top-level definition in a document
type Definition interface {
	Node
	definitionName() string
}

// Selection is an entry in a selection set
type Selection interface {
	Node
	selection()
}

// Value is an argument or default value
type Value interface {
	Node
	value()
}

// baseNode contains common node position fields
type baseNode struct {
	StartPos lexer.Position
	EndPos   lexer.Position
}

func (b *baseNode) Pos() lexer.Position { return b.StartPos }
func (b *baseNode) End() lexer.Position { return b.EndPos }
func (b *baseNode) node()               {}

// Document represents a complete GraphQL document
type Document struct {
	baseNode
	Definitions []Definition
}

// Operations returns the operation definitions in source order
func (d *Document) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns the fragment definitions in source order
func (d *Document) Fragments() []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, def := range d.Definitions {
		if f, ok := def.(*FragmentDefinition); ok {
			frags = append(frags, f)
		}
	}
	return frags
}

// Operation kinds
const (
	OperationQuery        = "query"
	OperationMutation     = "mutation"
	OperationSubscription = "subscription"
)

// OperationDefinition represents a query, mutation or subscription
type OperationDefinition struct {
	baseNode
	Operation  string // query, mutation, subscription
	Name       string // empty for anonymous operations
	Shorthand  bool   // true for the bare `{ ... }` form
	Variables  []*VariableDefinition
	Directives []*Directive
	Selections *SelectionSet
}

func (o *OperationDefinition) definitionName() string { return o.Name }

// VariableDefinition represents one `$name: Type = default` entry
type VariableDefinition struct {
	baseNode
	Variable string // name without the leading $
	Type     *TypeRef
	Default  Value
}

// TypeRef represents a type reference in a variable definition
type TypeRef struct {
	baseNode
	Name    string   // named type, empty for list types
	Elem    *TypeRef // element type for list types
	NonNull bool
}

// String renders the type reference in source form
func (t *TypeRef) String() string {
	s := t.Name
	if t.Elem != nil {
		s = "[" + t.Elem.String() + "]"
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// SelectionSet represents a braced list of selections
type SelectionSet struct {
	baseNode
	Selections []Selection
}

// Fields returns only the field selections, in source order
func (s *SelectionSet) Fields() []*Field {
	var fields []*Field
	for _, sel := range s.Selections {
		if f, ok := sel.(*Field); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Field represents a field selection
type Field struct {
	baseNode
	Alias      string // empty if not aliased
	Name       string
	Arguments  []*Argument
	Directives []*Directive
	Selections *SelectionSet // nil for leaf fields
}

func (f *Field) selection() {}

// ResponseName returns the alias if set, otherwise the field name
func (f *Field) ResponseName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// IsLeaf returns true if the field has no nested selection set
func (f *Field) IsLeaf() bool {
	return f.Selections == nil || len(f.Selections.Selections) == 0
}

// Argument represents a name: value pair
type Argument struct {
	baseNode
	Name  string
	Value Value
}

// Directive represents an @name(args) annotation
type Directive struct {
	baseNode
	Name      string
	Arguments []*Argument
}

// FragmentDefinition represents a named fragment
type FragmentDefinition struct {
	baseNode
	Name          string
	TypeCondition string
	Directives    []*Directive
	Selections    *SelectionSet
}

func (f *FragmentDefinition) definitionName() string { return f.Name }

// FragmentSpread represents a ...Name spread
type FragmentSpread struct {
	baseNode
	Name       string
	Directives []*Directive
}

func (f *FragmentSpread) selection() {}

// InlineFragment represents a ... on Type { } selection
type InlineFragment struct {
	baseNode
	TypeCondition string // empty if absent
	Directives    []*Directive
	Selections    *SelectionSet
}

func (f *InlineFragment) selection() {}

// VariableValue represents a $name value reference
type VariableValue struct {
	baseNode
	Name string
}

func (v *VariableValue) value() {}

// IntValue represents an integer literal
type IntValue struct {
	baseNode
	Raw string
}

func (v *IntValue) value() {}

// FloatValue represents a float literal
type FloatValue struct {
	baseNode
	Raw string
}

func (v *FloatValue) value() {}

// StringValue represents a string literal (decoded)
type StringValue struct {
	baseNode
	Value string
	Block bool
}

func (v *StringValue) value() {}

// BooleanValue represents true or false
type BooleanValue struct {
	baseNode
	Value bool
}

func (v *BooleanValue) value() {}

// NullValue represents the null literal
type NullValue struct {
	baseNode
}

func (v *NullValue) value() {}

// EnumValue represents a bare name used as a value
type EnumValue struct {
	baseNode
	Name string
}

func (v *EnumValue) value() {}

// ListValue represents a [ ... ] value
type ListValue struct {
	baseNode
	Values []Value
}

func (v *ListValue) value() {}

// ObjectValue represents a { name: value } input object
type ObjectValue struct {
	baseNode
	Fields []*ObjectField
}

func (v *ObjectValue) value() {}

// ObjectField represents one name: value entry of an input object
type ObjectField struct {
	baseNode
	Name  string
	Value Value
}

func (v *ObjectField) value() {}
