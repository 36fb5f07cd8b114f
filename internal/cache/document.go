package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/gqlex/gqlint/internal/parser"
)

// DocumentEntry represents a cached parsed document
type DocumentEntry struct {
	Document     *parser.Document
	ParseErrors  []parser.ParseError
	Hash         string
	LastAccessed time.Time
}

// DocumentCache provides an LRU cache for parsed GraphQL documents
type DocumentCache struct {
	mu         sync.RWMutex
	cache      map[string]*list.Element
	lru        *list.List
	maxEntries int
	maxAge     time.Duration
}

// entry stores the key and value in the LRU list
type entry struct {
	key   string
	value *DocumentEntry
}

// Option configures the DocumentCache
type Option func(*DocumentCache)

// NewDocumentCache creates a new document cache
func NewDocumentCache(opts ...Option) *DocumentCache {
	c := &DocumentCache{
		cache:      make(map[string]*list.Element),
		lru:        list.New(),
		maxEntries: 100,
		maxAge:     5 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithMaxEntries sets the maximum number of cached entries
func WithMaxEntries(n int) Option {
	return func(c *DocumentCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithMaxAge sets the maximum age of cached entries
func WithMaxAge(d time.Duration) Option {
	return func(c *DocumentCache) {
		if d > 0 {
			c.maxAge = d
		}
	}
}

// Get retrieves a cached document if it exists and the content hash matches
func (c *DocumentCache) Get(filename, content string) (*DocumentEntry, bool) {
	hash := hashContent(content)

	c.mu.RLock()
	elem, ok := c.cache[filename]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	ent := elem.Value.(*entry)

	if ent.value.Hash != hash {
		// Content changed, remove stale entry
		c.mu.Lock()
		c.removeElement(elem)
		c.mu.Unlock()
		return nil, false
	}

	if time.Since(ent.value.LastAccessed) > c.maxAge {
		c.mu.Lock()
		c.removeElement(elem)
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.lru.MoveToFront(elem)
	ent.value.LastAccessed = time.Now()
	c.mu.Unlock()

	return ent.value, true
}

// Put stores a parsed document in the cache
func (c *DocumentCache) Put(filename, content string, doc *parser.Document, parseErrors []parser.ParseError) {
	hash := hashContent(content)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[filename]; ok {
		c.lru.MoveToFront(elem)
		ent := elem.Value.(*entry)
		ent.value = &DocumentEntry{
			Document:     doc,
			ParseErrors:  parseErrors,
			Hash:         hash,
			LastAccessed: time.Now(),
		}
		return
	}

	ent := &entry{
		key: filename,
		value: &DocumentEntry{
			Document:     doc,
			ParseErrors:  parseErrors,
			Hash:         hash,
			LastAccessed: time.Now(),
		},
	}
	elem := c.lru.PushFront(ent)
	c.cache[filename] = elem

	for c.lru.Len() > c.maxEntries {
		c.removeOldest()
	}
}

// Invalidate removes an entry from the cache
func (c *DocumentCache) Invalidate(filename string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[filename]; ok {
		c.removeElement(elem)
	}
}

// Clear removes all entries from the cache
func (c *DocumentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*list.Element)
	c.lru.Init()
}

// Size returns the number of entries in the cache
func (c *DocumentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns cache statistics
func (c *DocumentCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Entries:    len(c.cache),
		MaxEntries: c.maxEntries,
	}
}

// CacheStats contains cache statistics
type CacheStats struct {
	Entries    int
	MaxEntries int
}

func (c *DocumentCache) removeOldest() {
	elem := c.lru.Back()
	if elem != nil {
		c.removeElement(elem)
	}
}

func (c *DocumentCache) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	ent := elem.Value.(*entry)
	delete(c.cache, ent.key)
}

// hashContent computes a SHA256 hash of the content
func hashContent(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}
