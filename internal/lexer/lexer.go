package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes GraphQL document source
type Lexer struct {
	input       string
	pos         int  // current position in input (points to current char)
	readPos     int  // current reading position (after current char)
	ch          rune // current character
	line        int  // current line number (1-based)
	column      int  // current column number (1-based)
	startLine   int  // line at start of current token
	startColumn int  // column at start of current token
	startOffset int  // offset at start of current token
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch, _ = utf8.DecodeRuneInString(l.input[l.readPos:])
	}
	l.pos = l.readPos
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.readPos += utf8.RuneLen(l.ch)
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// peekAhead returns the character n positions ahead
func (l *Lexer) peekAhead(n int) rune {
	pos := l.readPos
	for i := 0; i < n-1; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

// markStart marks the start position for the current token
func (l *Lexer) markStart() {
	l.startLine = l.line
	l.startColumn = l.column
	l.startOffset = l.pos
}

// makeToken creates a token with the current position info
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{
		Type:    typ,
		Literal: literal,
		Pos: Position{
			Line:   l.startLine,
			Column: l.startColumn,
			Offset: l.startOffset,
		},
		EndPos: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.pos,
		},
	}
}

// skipIgnored skips whitespace, line terminators, commas and the BOM,
// all of which are insignificant between GraphQL tokens
func (l *Lexer) skipIgnored() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' ||
		l.ch == ',' || l.ch == '\uFEFF' {
		l.readChar()
	}
}

var punctuators = map[rune]TokenType{
	'!': TokenBang,
	'$': TokenDollar,
	'&': TokenAmp,
	'(': TokenLeftParen,
	')': TokenRightParen,
	':': TokenColon,
	'=': TokenEquals,
	'@': TokenAt,
	'[': TokenLeftBracket,
	']': TokenRightBracket,
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	'|': TokenPipe,
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipIgnored()
	l.markStart()

	if l.ch == 0 {
		return l.makeToken(TokenEOF, "")
	}

	// Comment runs to end of line
	if l.ch == '#' {
		return l.readComment()
	}

	// Single-character punctuators
	if typ, ok := punctuators[l.ch]; ok {
		lit := string(l.ch)
		l.readChar()
		return l.makeToken(typ, lit)
	}

	// Spread operator
	if l.ch == '.' {
		if l.peekChar() == '.' && l.peekAhead(2) == '.' {
			l.readChar()
			l.readChar()
			l.readChar()
			return l.makeToken(TokenSpread, "...")
		}
		lit := string(l.ch)
		l.readChar()
		return l.makeToken(TokenIllegal, lit)
	}

	if l.ch == '"' {
		return l.readString()
	}

	if isNameStart(l.ch) {
		return l.readName()
	}

	if l.ch == '-' || isDigit(l.ch) {
		return l.readNumber()
	}

	lit := string(l.ch)
	l.readChar()
	return l.makeToken(TokenIllegal, lit)
}

// readComment reads a # comment up to but not including the line terminator
func (l *Lexer) readComment() Token {
	start := l.pos
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
	return l.makeToken(TokenComment, l.input[start:l.pos])
}

// readName reads a Name token: [_A-Za-z][_0-9A-Za-z]*
func (l *Lexer) readName() Token {
	start := l.pos
	for isNameStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.makeToken(TokenName, l.input[start:l.pos])
}

// readNumber reads an IntValue or FloatValue token
func (l *Lexer) readNumber() Token {
	start := l.pos
	isFloat := false

	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	typ := TokenInt
	if isFloat {
		typ = TokenFloat
	}
	return l.makeToken(typ, l.input[start:l.pos])
}

// readString reads a quoted string or a triple-quoted block string.
// The token literal holds the decoded value, not the raw source
func (l *Lexer) readString() Token {
	if l.peekChar() == '"' && l.peekAhead(2) == '"' {
		return l.readBlockString()
	}

	l.readChar() // consume opening quote
	var sb strings.Builder
	for l.ch != '"' && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			case '/':
				sb.WriteRune('/')
			case 'b':
				sb.WriteRune('\b')
			case 'f':
				sb.WriteRune('\f')
			case 'n':
				sb.WriteRune('\n')
			case 'r':
				sb.WriteRune('\r')
			case 't':
				sb.WriteRune('\t')
			case 'u':
				sb.WriteRune(l.readUnicodeEscape())
			default:
				sb.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch != '"' {
		// Unterminated string
		return l.makeToken(TokenIllegal, sb.String())
	}
	l.readChar() // consume closing quote
	return l.makeToken(TokenString, sb.String())
}

// readBlockString reads a """...""" block string
func (l *Lexer) readBlockString() Token {
	l.readChar()
	l.readChar()
	l.readChar() // consume opening """

	var sb strings.Builder
	for l.ch != 0 {
		if l.ch == '"' && l.peekChar() == '"' && l.peekAhead(2) == '"' {
			l.readChar()
			l.readChar()
			l.readChar()
			return l.makeToken(TokenBlockString, trimBlockString(sb.String()))
		}
		if l.ch == '\\' && l.peekChar() == '"' && l.peekAhead(2) == '"' && l.peekAhead(3) == '"' {
			sb.WriteString(`"""`)
			l.readChar()
			l.readChar()
			l.readChar()
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return l.makeToken(TokenIllegal, sb.String())
}

// readUnicodeEscape reads the four hex digits after \u
func (l *Lexer) readUnicodeEscape() rune {
	var v rune
	for i := 0; i < 4; i++ {
		c := l.peekChar()
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return v
		}
		v = v*16 + d
		l.readChar()
	}
	return v
}

// trimBlockString removes common leading indentation and blank
// first/last lines per the block string semantics
func trimBlockString(s string) string {
	lines := strings.Split(s, "\n")

	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = strings.TrimLeft(lines[i], " \t")
			}
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

// Tokenize returns all tokens in the input, ending with EOF.
// Comments are skipped; they are insignificant to the document
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenComment {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens
}

func isNameStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
