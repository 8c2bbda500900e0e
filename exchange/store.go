package exchange

import (
	"strconv"
	"strings"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/idanyas/amdrates/rates"
)

// Store owns the current rates snapshot and the rendered-table cache. The
// snapshot lock and the cache partitions never nest, so a refresh cannot
// stall a query.
type Store struct {
	mu        sync.RWMutex
	rates     rates.SourceRates
	updatedAt time.Time

	srcCache  *cache.Cache
	convCache *cache.Cache
}

func NewStore() *Store {
	return &Store{
		rates:     rates.SourceRates{},
		srcCache:  cache.New(cache.NoExpiration, 0),
		convCache: cache.New(cache.NoExpiration, 0),
	}
}

// ReplaceRates swaps the whole snapshot and stamps the update time. The
// caller hands over ownership of m. Rendered tables are flushed separately;
// the refresh loop pairs the two calls.
func (s *Store) ReplaceRates(m rates.SourceRates) {
	if m == nil {
		m = rates.SourceRates{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates = m
	s.updatedAt = time.Now()
}

// SnapshotRates returns a deep copy the caller may keep across refreshes.
func (s *Store) SnapshotRates() rates.SourceRates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(rates.SourceRates, len(s.rates))
	for src, rs := range s.rates {
		out[src] = append([]rates.Rate(nil), rs...)
	}
	return out
}

func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// ClearCache drops every rendered table from both partitions.
func (s *Store) ClearCache() {
	s.srcCache.Flush()
	s.convCache.Flush()
}

func srcKey(src rates.Source, rt rates.RateType) string {
	return src.Key() + "_" + strconv.Itoa(rt.Ordinal())
}

func convKey(from, to rates.Currency, rt rates.RateType, inverted bool) string {
	inv := "0"
	if inverted {
		inv = "1"
	}
	return strings.ToLower(from.String()) + "_" + to.String() + "_" + strconv.Itoa(rt.Ordinal()) + "_" + inv
}

func (s *Store) CacheGetSrc(src rates.Source, rt rates.RateType) (string, bool) {
	v, ok := s.srcCache.Get(srcKey(src, rt))
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (s *Store) CachePutSrc(src rates.Source, rt rates.RateType, rendered string) {
	s.srcCache.Set(srcKey(src, rt), rendered, cache.NoExpiration)
}

func (s *Store) CacheGetConv(from, to rates.Currency, rt rates.RateType, inverted bool) (string, bool) {
	v, ok := s.convCache.Get(convKey(from, to, rt, inverted))
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (s *Store) CachePutConv(from, to rates.Currency, rt rates.RateType, inverted bool, rendered string) {
	s.convCache.Set(convKey(from, to, rt, inverted), rendered, cache.NoExpiration)
}
