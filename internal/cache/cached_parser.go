package cache

import (
	"sync/atomic"

	"github.com/gqlex/gqlint/internal/parser"
)

// CachedParser fronts the parser with document caching. Safe for
// concurrent use; the lint worker pool shares one instance
type CachedParser struct {
	cache  *DocumentCache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedParser creates a new cached parser
func NewCachedParser(cache *DocumentCache) *CachedParser {
	return &CachedParser{cache: cache}
}

// Parse returns the cached document for the file when the content is
// unchanged, parsing and caching it otherwise. Parse errors are cached
// alongside the document so broken files are not re-parsed either
func (p *CachedParser) Parse(filename, content string) (*parser.Document, []parser.ParseError) {
	if entry, ok := p.cache.Get(filename, content); ok {
		p.hits.Add(1)
		return entry.Document, entry.ParseErrors
	}
	p.misses.Add(1)

	doc, parseErrors := parser.Parse(content)
	p.cache.Put(filename, content, doc, parseErrors)
	return doc, parseErrors
}

// Invalidate removes a file from the cache
func (p *CachedParser) Invalidate(filename string) {
	p.cache.Invalidate(filename)
}

// HitRate reports cache hits and misses since construction
func (p *CachedParser) HitRate() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}
