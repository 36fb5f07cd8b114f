package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlex/gqlint/internal/parser"
)

func parseFixture(t *testing.T, source string) *parser.Document {
	t.Helper()
	doc, errs := parser.Parse(source)
	require.Empty(t, errs)
	return doc
}

func TestCacheGetMiss(t *testing.T) {
	c := NewDocumentCache()
	_, ok := c.Get("query.graphql", "{ user { id } }")
	assert.False(t, ok)
}

func TestCachePutAndGet(t *testing.T) {
	c := NewDocumentCache()
	source := "{ user { id } }"
	doc := parseFixture(t, source)

	c.Put("query.graphql", source, doc, nil)

	entry, ok := c.Get("query.graphql", source)
	require.True(t, ok)
	assert.Same(t, doc, entry.Document)
	assert.Empty(t, entry.ParseErrors)
}

func TestCacheContentChangeInvalidates(t *testing.T) {
	c := NewDocumentCache()
	source := "{ user { id } }"
	c.Put("query.graphql", source, parseFixture(t, source), nil)

	_, ok := c.Get("query.graphql", "{ user { id name } }")
	assert.False(t, ok)

	// Stale entry was dropped entirely
	assert.Zero(t, c.Size())
}

func TestCachePutUpdatesExisting(t *testing.T) {
	c := NewDocumentCache()
	oldSource := "{ a }"
	newSource := "{ a b }"
	c.Put("query.graphql", oldSource, parseFixture(t, oldSource), nil)

	newDoc := parseFixture(t, newSource)
	c.Put("query.graphql", newSource, newDoc, nil)

	assert.Equal(t, 1, c.Size())
	entry, ok := c.Get("query.graphql", newSource)
	require.True(t, ok)
	assert.Same(t, newDoc, entry.Document)
}

func TestCacheEviction(t *testing.T) {
	c := NewDocumentCache(WithMaxEntries(2))
	source := "{ a }"
	doc := parseFixture(t, source)

	c.Put("one.graphql", source, doc, nil)
	c.Put("two.graphql", source, doc, nil)
	c.Put("three.graphql", source, doc, nil)

	assert.Equal(t, 2, c.Size())

	// Oldest entry was evicted
	_, ok := c.Get("one.graphql", source)
	assert.False(t, ok)
	_, ok = c.Get("three.graphql", source)
	assert.True(t, ok)
}

func TestCacheGetRefreshesRecency(t *testing.T) {
	c := NewDocumentCache(WithMaxEntries(2))
	source := "{ a }"
	doc := parseFixture(t, source)

	c.Put("one.graphql", source, doc, nil)
	c.Put("two.graphql", source, doc, nil)

	// Touch one so two becomes the eviction candidate
	_, ok := c.Get("one.graphql", source)
	require.True(t, ok)

	c.Put("three.graphql", source, doc, nil)

	_, ok = c.Get("one.graphql", source)
	assert.True(t, ok)
	_, ok = c.Get("two.graphql", source)
	assert.False(t, ok)
}

func TestCacheMaxAgeExpiry(t *testing.T) {
	c := NewDocumentCache(WithMaxAge(time.Nanosecond))
	source := "{ a }"
	c.Put("query.graphql", source, parseFixture(t, source), nil)

	time.Sleep(time.Millisecond)

	_, ok := c.Get("query.graphql", source)
	assert.False(t, ok)
	assert.Zero(t, c.Size())
}

func TestCacheInvalidate(t *testing.T) {
	c := NewDocumentCache()
	source := "{ a }"
	c.Put("query.graphql", source, parseFixture(t, source), nil)

	c.Invalidate("query.graphql")
	_, ok := c.Get("query.graphql", source)
	assert.False(t, ok)

	// Invalidating a missing entry is a no-op
	c.Invalidate("missing.graphql")
}

func TestCacheClear(t *testing.T) {
	c := NewDocumentCache()
	source := "{ a }"
	doc := parseFixture(t, source)
	c.Put("one.graphql", source, doc, nil)
	c.Put("two.graphql", source, doc, nil)

	c.Clear()
	assert.Zero(t, c.Size())
	_, ok := c.Get("one.graphql", source)
	assert.False(t, ok)
}

func TestCacheStats(t *testing.T) {
	c := NewDocumentCache(WithMaxEntries(10))
	source := "{ a }"
	c.Put("one.graphql", source, parseFixture(t, source), nil)

	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, 10, stats.MaxEntries)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewDocumentCache(WithMaxEntries(8))
	source := "{ a }"
	doc := parseFixture(t, source)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				name := fmt.Sprintf("file%d.graphql", j%16)
				c.Put(name, source, doc, nil)
				c.Get(name, source)
			}
		}()
	}
	wg.Wait()
}

func TestCachedParserParsesAndCaches(t *testing.T) {
	p := NewCachedParser(NewDocumentCache())
	source := "{ user { id } }"

	doc1, errs := p.Parse("query.graphql", source)
	require.Empty(t, errs)
	require.NotNil(t, doc1)

	// Second parse of identical content returns the cached document
	doc2, _ := p.Parse("query.graphql", source)
	assert.Same(t, doc1, doc2)

	hits, misses := p.HitRate()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	p.Invalidate("query.graphql")
	doc3, _ := p.Parse("query.graphql", source)
	assert.NotSame(t, doc1, doc3)
}

func TestCachedParserCachesParseErrors(t *testing.T) {
	p := NewCachedParser(NewDocumentCache())
	source := "{ user {"

	_, errs1 := p.Parse("broken.graphql", source)
	require.NotEmpty(t, errs1)

	_, errs2 := p.Parse("broken.graphql", source)
	assert.Equal(t, errs1, errs2)
}
