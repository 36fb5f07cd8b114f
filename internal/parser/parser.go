package parser

import (
	"fmt"

	"github.com/gqlex/gqlint/internal/lexer"
)

// Parser parses GraphQL tokens into a Document AST
type Parser struct {
	tokens  []lexer.Token
	pos     int
	current lexer.Token
	errors  []ParseError
}

// ParseError represents a parsing error
type ParseError struct {
	Message string
	Pos     lexer.Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// New creates a new Parser
func New(tokens []lexer.Token) *Parser {
	p := &Parser{
		tokens: tokens,
		pos:    0,
	}
	if len(tokens) > 0 {
		p.current = tokens[0]
	} else {
		p.current = lexer.Token{Type: lexer.TokenEOF}
	}
	return p
}

// Parse parses the input and returns a Document AST.
// The parser is tolerant: it records errors and keeps going where it can.
// Tokenization goes through the lexer pools; the token slice is handed
// back once the AST is built, so back-to-back parses reuse it
func Parse(input string) (*Document, []ParseError) {
	tokens := lexer.TokenizePooled(input)
	defer lexer.TokenSlicePool.Put(tokens)

	p := New(*tokens)
	doc := p.ParseDocument()
	return doc, p.errors
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
	if p.pos < len(p.tokens) {
		p.current = p.tokens[p.pos]
	} else {
		p.current = lexer.Token{Type: lexer.TokenEOF}
	}
}

// peek returns the next token without advancing
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return lexer.Token{Type: lexer.TokenEOF}
}

// expect consumes a token of the given type, recording an error otherwise
func (p *Parser) expect(typ lexer.TokenType) (lexer.Token, bool) {
	if p.current.Type != typ {
		p.errorf("expected %s, found %s", typ, p.current.Type)
		return p.current, false
	}
	tok := p.current
	p.advance()
	return tok, true
}

// error records a parsing error at the current position
func (p *Parser) error(msg string) {
	p.errors = append(p.errors, ParseError{
		Message: msg,
		Pos:     p.current.Pos,
	})
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.error(fmt.Sprintf(format, args...))
}

// ParseDocument parses a complete document
func (p *Parser) ParseDocument() *Document {
	doc := &Document{}
	if len(p.tokens) > 0 {
		doc.StartPos = p.tokens[0].Pos
	}

	for p.current.Type != lexer.TokenEOF {
		def := p.parseDefinition()
		if def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}

	if len(doc.Definitions) > 0 {
		doc.EndPos = doc.Definitions[len(doc.Definitions)-1].End()
	}
	return doc
}

// parseDefinition parses one top-level definition
func (p *Parser) parseDefinition() Definition {
	switch {
	case p.current.Type == lexer.TokenLeftBrace:
		// Shorthand query form
		return p.parseShorthandOperation()
	case p.current.Type == lexer.TokenName && lexer.IsOperationKeyword(p.current.Literal):
		return p.parseOperation()
	case p.current.Type == lexer.TokenName && p.current.Literal == "fragment":
		return p.parseFragment()
	default:
		p.errorf("unexpected token %s at top level", p.current)
		p.advance()
		return nil
	}
}

// parseShorthandOperation parses the bare `{ ... }` query form
func (p *Parser) parseShorthandOperation() *OperationDefinition {
	op := &OperationDefinition{
		Operation: OperationQuery,
		Shorthand: true,
	}
	op.StartPos = p.current.Pos
	op.Selections = p.parseSelectionSet()
	if op.Selections != nil {
		op.EndPos = op.Selections.EndPos
	}
	return op
}

// parseOperation parses `query Name($v: T) @dir { ... }`
func (p *Parser) parseOperation() *OperationDefinition {
	op := &OperationDefinition{
		Operation: p.current.Literal,
	}
	op.StartPos = p.current.Pos
	p.advance()

	if p.current.Type == lexer.TokenName {
		op.Name = p.current.Literal
		p.advance()
	}

	if p.current.Type == lexer.TokenLeftParen {
		op.Variables = p.parseVariableDefinitions()
	}

	op.Directives = p.parseDirectives()

	if p.current.Type == lexer.TokenLeftBrace {
		op.Selections = p.parseSelectionSet()
		op.EndPos = op.Selections.EndPos
	} else {
		p.error("operation is missing a selection set")
		op.EndPos = p.current.Pos
	}
	return op
}

// parseVariableDefinitions parses `($name: Type = default, ...)`
func (p *Parser) parseVariableDefinitions() []*VariableDefinition {
	var defs []*VariableDefinition
	p.advance() // consume (

	for p.current.Type != lexer.TokenRightParen && p.current.Type != lexer.TokenEOF {
		if p.current.Type != lexer.TokenDollar {
			p.errorf("expected variable definition, found %s", p.current)
			p.advance()
			continue
		}
		def := &VariableDefinition{}
		def.StartPos = p.current.Pos
		p.advance() // consume $

		name, ok := p.expect(lexer.TokenName)
		if !ok {
			continue
		}
		def.Variable = name.Literal

		if _, ok := p.expect(lexer.TokenColon); !ok {
			continue
		}
		def.Type = p.parseTypeRef()

		if p.current.Type == lexer.TokenEquals {
			p.advance()
			def.Default = p.parseValue()
		}
		if def.Type != nil {
			def.EndPos = def.Type.EndPos
		}
		if def.Default != nil {
			def.EndPos = def.Default.End()
		}
		defs = append(defs, def)
	}
	p.expect(lexer.TokenRightParen)
	return defs
}

// parseTypeRef parses a type reference: Name, [Type], with optional !
func (p *Parser) parseTypeRef() *TypeRef {
	ref := &TypeRef{}
	ref.StartPos = p.current.Pos

	switch p.current.Type {
	case lexer.TokenLeftBracket:
		p.advance()
		ref.Elem = p.parseTypeRef()
		p.expect(lexer.TokenRightBracket)
	case lexer.TokenName:
		ref.Name = p.current.Literal
		p.advance()
	default:
		p.errorf("expected type, found %s", p.current)
		p.advance()
		return nil
	}

	if p.current.Type == lexer.TokenBang {
		ref.NonNull = true
		p.advance()
	}
	ref.EndPos = p.current.Pos
	return ref
}

// parseFragment parses `fragment Name on Type @dir { ... }`
func (p *Parser) parseFragment() *FragmentDefinition {
	frag := &FragmentDefinition{}
	frag.StartPos = p.current.Pos
	p.advance() // consume fragment keyword

	if p.current.Type == lexer.TokenName && p.current.Literal != "on" {
		frag.Name = p.current.Literal
		p.advance()
	} else {
		p.error("fragment is missing a name")
	}

	if p.current.Type == lexer.TokenName && p.current.Literal == "on" {
		p.advance()
		if name, ok := p.expect(lexer.TokenName); ok {
			frag.TypeCondition = name.Literal
		}
	} else {
		p.error("fragment is missing a type condition")
	}

	frag.Directives = p.parseDirectives()

	if p.current.Type == lexer.TokenLeftBrace {
		frag.Selections = p.parseSelectionSet()
		frag.EndPos = frag.Selections.EndPos
	} else {
		p.error("fragment is missing a selection set")
		frag.EndPos = p.current.Pos
	}
	return frag
}

// parseSelectionSet parses `{ selection... }`
func (p *Parser) parseSelectionSet() *SelectionSet {
	set := &SelectionSet{}
	set.StartPos = p.current.Pos
	p.advance() // consume {

	for p.current.Type != lexer.TokenRightBrace && p.current.Type != lexer.TokenEOF {
		sel := p.parseSelection()
		if sel != nil {
			set.Selections = append(set.Selections, sel)
		}
	}

	set.EndPos = p.current.EndPos
	if p.current.Type == lexer.TokenRightBrace {
		p.advance()
	} else {
		p.error("selection set is missing a closing brace")
	}
	return set
}

// parseSelection parses a field, fragment spread or inline fragment
func (p *Parser) parseSelection() Selection {
	switch p.current.Type {
	case lexer.TokenSpread:
		return p.parseFragmentSelection()
	case lexer.TokenName:
		return p.parseField()
	default:
		p.errorf("unexpected token %s in selection set", p.current)
		p.advance()
		return nil
	}
}

// parseFragmentSelection parses `...Name` or `... on Type { }` or `... @dir { }`
func (p *Parser) parseFragmentSelection() Selection {
	start := p.current.Pos
	p.advance() // consume ...

	if p.current.Type == lexer.TokenName && p.current.Literal != "on" {
		spread := &FragmentSpread{Name: p.current.Literal}
		spread.StartPos = start
		spread.EndPos = p.current.EndPos
		p.advance()
		spread.Directives = p.parseDirectives()
		return spread
	}

	inline := &InlineFragment{}
	inline.StartPos = start
	if p.current.Type == lexer.TokenName && p.current.Literal == "on" {
		p.advance()
		if name, ok := p.expect(lexer.TokenName); ok {
			inline.TypeCondition = name.Literal
		}
	}
	inline.Directives = p.parseDirectives()

	if p.current.Type == lexer.TokenLeftBrace {
		inline.Selections = p.parseSelectionSet()
		inline.EndPos = inline.Selections.EndPos
	} else {
		p.error("inline fragment is missing a selection set")
		inline.EndPos = p.current.Pos
	}
	return inline
}

// parseField parses `[alias:] name (args) @dirs { selections }`
func (p *Parser) parseField() *Field {
	field := &Field{}
	field.StartPos = p.current.Pos

	name := p.current.Literal
	p.advance()

	if p.current.Type == lexer.TokenColon {
		p.advance()
		field.Alias = name
		if tok, ok := p.expect(lexer.TokenName); ok {
			field.Name = tok.Literal
		}
	} else {
		field.Name = name
	}

	if p.current.Type == lexer.TokenLeftParen {
		field.Arguments = p.parseArguments()
	}

	field.Directives = p.parseDirectives()

	if p.current.Type == lexer.TokenLeftBrace {
		field.Selections = p.parseSelectionSet()
		field.EndPos = field.Selections.EndPos
	} else {
		field.EndPos = p.current.Pos
	}
	return field
}

// parseArguments parses `(name: value, ...)`
func (p *Parser) parseArguments() []*Argument {
	var args []*Argument
	p.advance() // consume (

	for p.current.Type != lexer.TokenRightParen && p.current.Type != lexer.TokenEOF {
		if p.current.Type != lexer.TokenName {
			p.errorf("expected argument name, found %s", p.current)
			p.advance()
			continue
		}
		arg := &Argument{Name: p.current.Literal}
		arg.StartPos = p.current.Pos
		p.advance()

		if _, ok := p.expect(lexer.TokenColon); !ok {
			continue
		}
		arg.Value = p.parseValue()
		if arg.Value != nil {
			arg.EndPos = arg.Value.End()
		}
		args = append(args, arg)
	}
	p.expect(lexer.TokenRightParen)
	return args
}

// parseDirectives parses zero or more `@name(args)` annotations
func (p *Parser) parseDirectives() []*Directive {
	var dirs []*Directive
	for p.current.Type == lexer.TokenAt {
		dir := &Directive{}
		dir.StartPos = p.current.Pos
		p.advance() // consume @

		if name, ok := p.expect(lexer.TokenName); ok {
			dir.Name = name.Literal
			dir.EndPos = name.EndPos
		}
		if p.current.Type == lexer.TokenLeftParen {
			dir.Arguments = p.parseArguments()
			if n := len(dir.Arguments); n > 0 {
				dir.EndPos = dir.Arguments[n-1].EndPos
			}
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// parseValue parses any input value
func (p *Parser) parseValue() Value {
	tok := p.current
	switch tok.Type {
	case lexer.TokenDollar:
		p.advance()
		v := &VariableValue{}
		v.StartPos = tok.Pos
		if name, ok := p.expect(lexer.TokenName); ok {
			v.Name = name.Literal
			v.EndPos = name.EndPos
		}
		return v
	case lexer.TokenInt:
		p.advance()
		v := &IntValue{Raw: tok.Literal}
		v.StartPos, v.EndPos = tok.Pos, tok.EndPos
		return v
	case lexer.TokenFloat:
		p.advance()
		v := &FloatValue{Raw: tok.Literal}
		v.StartPos, v.EndPos = tok.Pos, tok.EndPos
		return v
	case lexer.TokenString, lexer.TokenBlockString:
		p.advance()
		v := &StringValue{Value: tok.Literal, Block: tok.Type == lexer.TokenBlockString}
		v.StartPos, v.EndPos = tok.Pos, tok.EndPos
		return v
	case lexer.TokenName:
		p.advance()
		switch tok.Literal {
		case "true", "false":
			v := &BooleanValue{Value: tok.Literal == "true"}
			v.StartPos, v.EndPos = tok.Pos, tok.EndPos
			return v
		case "null":
			v := &NullValue{}
			v.StartPos, v.EndPos = tok.Pos, tok.EndPos
			return v
		default:
			v := &EnumValue{Name: tok.Literal}
			v.StartPos, v.EndPos = tok.Pos, tok.EndPos
			return v
		}
	case lexer.TokenLeftBracket:
		return p.parseListValue()
	case lexer.TokenLeftBrace:
		return p.parseObjectValue()
	default:
		p.errorf("expected value, found %s", tok)
		p.advance()
		return nil
	}
}

// parseListValue parses `[value, ...]`
func (p *Parser) parseListValue() *ListValue {
	list := &ListValue{}
	list.StartPos = p.current.Pos
	p.advance() // consume [

	for p.current.Type != lexer.TokenRightBracket && p.current.Type != lexer.TokenEOF {
		v := p.parseValue()
		if v != nil {
			list.Values = append(list.Values, v)
		}
	}
	list.EndPos = p.current.EndPos
	p.expect(lexer.TokenRightBracket)
	return list
}

// parseObjectValue parses `{name: value, ...}`
func (p *Parser) parseObjectValue() *ObjectValue {
	obj := &ObjectValue{}
	obj.StartPos = p.current.Pos
	p.advance() // consume {

	for p.current.Type != lexer.TokenRightBrace && p.current.Type != lexer.TokenEOF {
		if p.current.Type != lexer.TokenName {
			p.errorf("expected object field name, found %s", p.current)
			p.advance()
			continue
		}
		field := &ObjectField{Name: p.current.Literal}
		field.StartPos = p.current.Pos
		p.advance()

		if _, ok := p.expect(lexer.TokenColon); !ok {
			continue
		}
		field.Value = p.parseValue()
		if field.Value != nil {
			field.EndPos = field.Value.End()
		}
		obj.Fields = append(obj.Fields, field)
	}
	obj.EndPos = p.current.EndPos
	p.expect(lexer.TokenRightBrace)
	return obj
}
