package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenComment
	TokenIllegal

	// Literals and identifiers
	TokenName        // field, argument, directive, fragment names
	TokenInt         // integer literal
	TokenFloat       // float literal
	TokenString      // "..."
	TokenBlockString // """block""", already dedented

	// Punctuators
	TokenBang         // !
	TokenDollar       // $
	TokenAmp          // &
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenSpread       // ...
	TokenColon        // :
	TokenEquals       // =
	TokenAt           // @
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenPipe         // |
)

var tokenNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenComment:      "COMMENT",
	TokenIllegal:      "ILLEGAL",
	TokenName:         "NAME",
	TokenInt:          "INT",
	TokenFloat:        "FLOAT",
	TokenString:       "STRING",
	TokenBlockString:  "BLOCK_STRING",
	TokenBang:         "BANG",
	TokenDollar:       "DOLLAR",
	TokenAmp:          "AMP",
	TokenLeftParen:    "LEFT_PAREN",
	TokenRightParen:   "RIGHT_PAREN",
	TokenSpread:       "SPREAD",
	TokenColon:        "COLON",
	TokenEquals:       "EQUALS",
	TokenAt:           "AT",
	TokenLeftBracket:  "LEFT_BRACKET",
	TokenRightBracket: "RIGHT_BRACKET",
	TokenLeftBrace:    "LEFT_BRACE",
	TokenRightBrace:   "RIGHT_BRACE",
	TokenPipe:         "PIPE",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// operationKeywords are the names that introduce an operation definition.
// They are contextual keywords in GraphQL, not reserved words.
var operationKeywords = map[string]bool{
	"query":        true,
	"mutation":     true,
	"subscription": true,
}

// IsOperationKeyword returns true if the name introduces an operation
func IsOperationKeyword(name string) bool {
	return operationKeywords[name]
}

// Position represents a position in the source
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string   // the actual text; for strings, the decoded value
	Pos     Position // start position
	EndPos  Position // end position
}

func (t Token) String() string {
	if len(t.Literal) > 20 {
		return fmt.Sprintf("%s(%q...) at %s", t.Type, t.Literal[:20], t.Pos)
	}
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Literal, t.Pos)
}

// IsPunctuator returns true if the token is a GraphQL punctuator
func (t Token) IsPunctuator() bool {
	switch t.Type {
	case TokenBang, TokenDollar, TokenAmp, TokenLeftParen, TokenRightParen,
		TokenSpread, TokenColon, TokenEquals, TokenAt, TokenLeftBracket,
		TokenRightBracket, TokenLeftBrace, TokenRightBrace, TokenPipe:
		return true
	}
	return false
}
