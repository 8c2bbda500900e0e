package exchange

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanyas/amdrates/rates"
)

func testFacade(snap rates.SourceRates) *Facade {
	store := NewStore()
	store.ReplaceRates(snap)
	return NewFacade(store, 5*time.Minute, "test")
}

func TestFacadeSentinelOnEmptyCurrency(t *testing.T) {
	f := testFacade(s4Rates())
	assert.Equal(t, Sentinel, f.ConvQuery("", rates.USD, rates.NoCash, false))
	assert.Equal(t, Sentinel, f.ConvQuery(rates.USD, "", rates.NoCash, false))
}

func TestFacadeSentinelOnNoData(t *testing.T) {
	f := testFacade(rates.SourceRates{})
	assert.Equal(t, Sentinel, f.SrcQuery(rates.Acba, rates.NoCash))
	assert.Equal(t, Sentinel, f.ConvQuery(rates.USD, rates.Default, rates.NoCash, true))
}

// A repeat query must come from the cache: swapping the rates underneath
// without flushing may not change the answer.
func TestFacadeServesRepeatsFromCache(t *testing.T) {
	store := NewStore()
	store.ReplaceRates(s4Rates())
	f := NewFacade(store, 5*time.Minute, "test")

	first := f.SrcQuery(rates.Acba, rates.NoCash)
	require.Equal(t, "384 | 390 | USD/AMD\n425 | 437 | EUR/AMD\n", first)

	store.ReplaceRates(rates.SourceRates{
		rates.Acba: {mkRate(rates.USD, rates.Default, rates.NoCash, "1", "2")},
	})
	assert.Equal(t, first, f.SrcQuery(rates.Acba, rates.NoCash))

	store.ClearCache()
	assert.Equal(t, "1 | 2 | USD/AMD\n", f.SrcQuery(rates.Acba, rates.NoCash))
}

func TestFacadeCachesSentinel(t *testing.T) {
	store := NewStore()
	f := NewFacade(store, 5*time.Minute, "test")

	require.Equal(t, Sentinel, f.SrcQuery(rates.Acba, rates.NoCash))

	// Data arrived, but until the cache is flushed the miss stays answered.
	store.ReplaceRates(s4Rates())
	assert.Equal(t, Sentinel, f.SrcQuery(rates.Acba, rates.NoCash))

	store.ClearCache()
	assert.NotEqual(t, Sentinel, f.SrcQuery(rates.Acba, rates.NoCash))
}

func TestListSources(t *testing.T) {
	f := testFacade(rates.SourceRates{})
	got := f.ListSources()
	names := strings.Split(got, ", ")
	assert.Len(t, names, 24)
	assert.Equal(t, strings.ToLower(got), got)
	assert.True(t, sortedStrings(names), "names must be sorted: %v", names)
	assert.Contains(t, names, "cba")
	assert.Contains(t, names, "vtb")
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i-1] > ss[i] {
			return false
		}
	}
	return true
}

func TestInfo(t *testing.T) {
	f := testFacade(s4Rates())
	got := f.Info()
	assert.Contains(t, got, "version: test")
	assert.Contains(t, got, "update interval: 5m0s")
	assert.Contains(t, got, "last update: ")
}

func TestHandleCommandShortcuts(t *testing.T) {
	f := testFacade(s4Rates())

	usd := f.HandleCommand("usd")
	require.Equal(t, "* Acba | 390 | 0 | USD/AMD\n", usd)
	assert.Equal(t, usd, f.HandleCommand("USD"), "command casing is ignored")

	// The explicit forms go through the same query.
	assert.Equal(t, usd, f.HandleCommand("conv usd"))
	assert.Equal(t, usd, f.HandleCommand("start usd"))

	eur := f.HandleCommand("eur")
	assert.Equal(t, "* Acba | 437 | 0 | EUR/AMD\n", eur)
}

func TestHandleCommandCashSuffix(t *testing.T) {
	snap := rates.SourceRates{
		rates.Sas: {mkRate(rates.USD, rates.Default, rates.Cash, "385", "389")},
	}
	f := testFacade(snap)

	assert.Equal(t, Sentinel, f.HandleCommand("usd"))
	assert.Equal(t, "# SAS | 389 | - | USD/AMD\n", f.HandleCommand("usdcash"))
	assert.Equal(t, "385 | 389 | USD/AMD\n", f.HandleCommand("getcash sas"))
}

func TestHandleCommandCrossPair(t *testing.T) {
	snap := rates.SourceRates{
		rates.Acba: {
			mkRate(rates.RUB, rates.Default, rates.NoCash, "4.4", "4.6"),
			mkRate(rates.USD, rates.Default, rates.NoCash, "384", "390"),
		},
	}
	f := testFacade(snap)

	got := f.HandleCommand("rubusd")
	require.NotEqual(t, Sentinel, got)
	assert.Contains(t, got, "RUB/AMD/USD")
	assert.Equal(t, got, f.HandleCommand("conv rub usd"))
	assert.Equal(t, got, f.HandleCommand("conv rub/usd"))
}

func TestHandleCommandGet(t *testing.T) {
	f := testFacade(s4Rates())
	assert.Equal(t, "384 | 390 | USD/AMD\n425 | 437 | EUR/AMD\n", f.HandleCommand("get acba"))
	assert.Equal(t, Sentinel, f.HandleCommand("get nosuchbank"))
	assert.Equal(t, Sentinel, f.HandleCommand("get"))
}

func TestHandleCommandStartVariants(t *testing.T) {
	f := testFacade(s4Rates())

	assert.Equal(t, f.HandleCommand("get acba"), f.HandleCommand("start acba"))
	assert.Equal(t, Sentinel, f.HandleCommand("start acba:cash"))
	assert.Equal(t, Sentinel, f.HandleCommand("start acba:bogus"))
	assert.Equal(t, f.HandleCommand("help"), f.HandleCommand("start"))
	assert.NotEqual(t, Sentinel, f.HandleCommand("start usd/amd"))
}

func TestHandleCommandConvBadArgs(t *testing.T) {
	f := testFacade(s4Rates())
	assert.Equal(t, Sentinel, f.HandleCommand("conv"))
	assert.Equal(t, Sentinel, f.HandleCommand("conv usd amd eur"))
	assert.Equal(t, Sentinel, f.HandleCommand("conv usd/amd/eur"))
}

func TestHandleCommandCalc(t *testing.T) {
	f := testFacade(rates.SourceRates{})
	assert.Equal(t, "4", f.HandleCommand("calc 2+2"))
	assert.Equal(t, "6", f.HandleCommand("calc 2 + 2*2"))
	assert.Equal(t, Sentinel, f.HandleCommand("calc"))
	assert.Equal(t, Sentinel, f.HandleCommand("calc )("))
}

func TestHandleCommandHelpFallback(t *testing.T) {
	f := testFacade(rates.SourceRates{})
	help := f.HandleCommand("help")
	assert.NotEmpty(t, help)
	assert.Equal(t, help, f.HandleCommand("h"))
	assert.Equal(t, help, f.HandleCommand("?"))
	assert.Equal(t, help, f.HandleCommand(""))
	assert.Equal(t, help, f.HandleCommand("bogus"))
	assert.Equal(t, help, f.HandleCommand("cash"))
}
