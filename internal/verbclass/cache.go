package verbclass

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedAnalyzer memoizes lemma lookups against an underlying Analyzer.
// Misses are cached too, so repeated unknown lemmas stay cheap.
type CachedAnalyzer struct {
	inner Analyzer
	cache *gocache.Cache
}

// cached miss marker; go-cache cannot store a typed nil usefully
type missEntry struct{}

// NewCachedAnalyzer wraps an analyzer with an in-memory lookup cache
func NewCachedAnalyzer(inner Analyzer, ttl, cleanup time.Duration) *CachedAnalyzer {
	return &CachedAnalyzer{
		inner: inner,
		cache: gocache.New(ttl, cleanup),
	}
}

// Lookup implements Analyzer
func (c *CachedAnalyzer) Lookup(lemma string) (*Analysis, bool) {
	key := strings.ToLower(lemma)
	if val, found := c.cache.Get(key); found {
		if _, miss := val.(missEntry); miss {
			return nil, false
		}
		return val.(*Analysis), true
	}

	analysis, ok := c.inner.Lookup(key)
	if !ok {
		c.cache.Set(key, missEntry{}, gocache.DefaultExpiration)
		return nil, false
	}
	c.cache.Set(key, analysis, gocache.DefaultExpiration)
	return analysis, true
}

// Flush drops all cached lookups, e.g. after an index reload
func (c *CachedAnalyzer) Flush() {
	c.cache.Flush()
}

// ItemCount returns the number of cached entries, misses included
func (c *CachedAnalyzer) ItemCount() int {
	return c.cache.ItemCount()
}
