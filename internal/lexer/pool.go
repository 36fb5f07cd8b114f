package lexer

import (
	"sync"
)

// Pooling exists for the multi-file lint path, where thousands of
// operation documents are tokenized back to back and the per-document
// lexer and token slice would otherwise churn the allocator.

var lexers = sync.Pool{
	New: func() interface{} { return new(Lexer) },
}

// TokenSlicePool recycles token slices between documents. Callers that
// use TokenizePooled must Put the slice back once they are done with it
var TokenSlicePool = &tokenSlicePool{}

type tokenSlicePool struct {
	pool sync.Pool
}

// Get returns an empty token slice with leftover capacity from a
// previous document
func (p *tokenSlicePool) Get() *[]Token {
	if s, ok := p.pool.Get().(*[]Token); ok {
		return s
	}
	s := make([]Token, 0, 64)
	return &s
}

// Put truncates the slice and returns it to the pool
func (p *tokenSlicePool) Put(s *[]Token) {
	*s = (*s)[:0]
	p.pool.Put(s)
}

// Reset reinitializes the lexer over a new source string
func (l *Lexer) Reset(input string) {
	l.input = input
	l.pos = 0
	l.readPos = 0
	l.ch = 0
	l.line = 1
	l.column = 0
	l.startLine = 0
	l.startColumn = 0
	l.startOffset = 0
	l.readChar()
}

// TokenizePooled tokenizes input using pooled resources. Comments are
// skipped, matching Tokenize. The returned slice belongs to
// TokenSlicePool and must be handed back via Put
func TokenizePooled(input string) *[]Token {
	l := lexers.Get().(*Lexer)
	l.Reset(input)
	defer func() {
		l.input = ""
		lexers.Put(l)
	}()

	tokens := TokenSlicePool.Get()
	for {
		tok := l.NextToken()
		if tok.Type == TokenComment {
			continue
		}
		*tokens = append(*tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}
