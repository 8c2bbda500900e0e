package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanyas/amdrates/rates"
)

func TestStoreReplaceStampsUpdateTime(t *testing.T) {
	s := NewStore()
	assert.True(t, s.UpdatedAt().IsZero())

	s.ReplaceRates(s4Rates())
	first := s.UpdatedAt()
	assert.False(t, first.IsZero())

	s.ReplaceRates(nil)
	assert.False(t, s.UpdatedAt().Before(first))
	assert.Empty(t, s.SnapshotRates())
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	s := NewStore()
	s.ReplaceRates(s4Rates())

	snap := s.SnapshotRates()
	snap[rates.Acba][0].Buy = rates.Positive(d("1"))
	delete(snap, rates.Acba)

	fresh := s.SnapshotRates()
	require.Len(t, fresh[rates.Acba], 2)
	assert.True(t, fresh[rates.Acba][0].Buy.Decimal.Equal(d("384")))
}

func TestStoreCachePartitions(t *testing.T) {
	s := NewStore()

	s.CachePutSrc(rates.Acba, rates.NoCash, "src table")
	s.CachePutConv(rates.USD, rates.Default, rates.NoCash, true, "conv table")

	got, ok := s.CacheGetSrc(rates.Acba, rates.NoCash)
	require.True(t, ok)
	assert.Equal(t, "src table", got)

	got, ok = s.CacheGetConv(rates.USD, rates.Default, rates.NoCash, true)
	require.True(t, ok)
	assert.Equal(t, "conv table", got)

	// Distinct type, inversion or source means a distinct entry.
	_, ok = s.CacheGetSrc(rates.Acba, rates.Cash)
	assert.False(t, ok)
	_, ok = s.CacheGetSrc(rates.Ameria, rates.NoCash)
	assert.False(t, ok)
	_, ok = s.CacheGetConv(rates.USD, rates.Default, rates.NoCash, false)
	assert.False(t, ok)

	s.ClearCache()
	_, ok = s.CacheGetSrc(rates.Acba, rates.NoCash)
	assert.False(t, ok)
	_, ok = s.CacheGetConv(rates.USD, rates.Default, rates.NoCash, true)
	assert.False(t, ok)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "acba_1", srcKey(rates.Acba, rates.Cash))
	assert.Equal(t, "usd_AMD_0_1", convKey(rates.USD, rates.Default, rates.NoCash, true))
	assert.Equal(t, "rub_USD_1_0", convKey(rates.RUB, rates.USD, rates.Cash, false))
}
