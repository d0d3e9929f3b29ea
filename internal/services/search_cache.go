package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/domain/models"
	"github.com/vieclam/jobboard/internal/repositories"
)

// SearchCache memoizes formatted result pages for a short window.
// There is no capacity bound beyond the TTL; payloads are small and
// short-lived, but very high filter cardinality would grow the map
// until entries expire. Cached values are read-only by contract.
type SearchCache struct {
	cache *gocache.Cache
}

func NewSearchCache(ttl time.Duration) *SearchCache {
	return &SearchCache{cache: gocache.New(ttl, 2*ttl)}
}

// DeriveKey is a pure function of the storage query, pagination and the
// post-filter label. The eligibility cutoff (query.Now) is deliberately
// excluded: with it every request would get a fresh key and nothing
// would ever hit. A cached page can therefore be up to one TTL stale
// with respect to listings expiring in between.
func (c *SearchCache) DeriveKey(query repositories.JobQuery, page, limit int, filterLabel string) string {

	keyFields := struct {
		Keyword  string `json:"keyword"`
		Location string `json:"location"`
		Remote   bool   `json:"remote"`
		Type     string `json:"type"`
	}{query.Keyword, query.Location, query.Remote, query.Type}

	serialized, err := json.Marshal(keyFields)
	if err != nil {
		log.Errorf("failed to serialize cache key fields: %v", err)
		serialized = []byte(fmt.Sprintf("%+v", keyFields))
	}

	queryHash := sha256.Sum256(serialized)
	return fmt.Sprintf("search:%s:%d:%d:%s", hex.EncodeToString(queryHash[:]), page, limit, filterLabel)
}

func (c *SearchCache) GetResult(key string) (*models.SearchResult, bool) {
	if cached, found := c.cache.Get(key); found {
		if result, ok := cached.(*models.SearchResult); ok {
			return result, true
		}
	}
	return nil, false
}

func (c *SearchCache) GetFeed(key string) (*models.FeedResult, bool) {
	if cached, found := c.cache.Get(key); found {
		if result, ok := cached.(*models.FeedResult); ok {
			return result, true
		}
	}
	return nil, false
}

// Set inserts or overwrites unconditionally with the default TTL.
func (c *SearchCache) Set(key string, value interface{}) {
	c.cache.Set(key, value, gocache.DefaultExpiration)
}

func (c *SearchCache) Clear(key string) {
	c.cache.Delete(key)
}

func (c *SearchCache) ClearAll() {
	c.cache.Flush()
}
