package exchange

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanyas/amdrates/rates"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// mkRate builds a two-sided quote; an empty string leaves that side absent.
func mkRate(from, to rates.Currency, rt rates.RateType, buy, sell string) rates.Rate {
	r := rates.Rate{From: from, To: to, Type: rt}
	if buy != "" {
		r.Buy = rates.Positive(d(buy))
	}
	if sell != "" {
		r.Sell = rates.Positive(d(sell))
	}
	return r
}

func TestNewGraphWeights(t *testing.T) {
	g := newGraph([]rates.Rate{
		mkRate(rates.USD, rates.Default, rates.NoCash, "384", "390"),
	}, rates.NoCash)

	forward := findAllPaths(g, rates.USD, rates.Default)
	require.Len(t, forward, 1)
	assert.True(t, forward[0].weight.Equal(d("384")), "buy edge keeps the buy weight")

	back := findAllPaths(g, rates.Default, rates.USD)
	require.Len(t, back, 1)
	assert.True(t, back[0].weight.Equal(d("1").Div(d("390"))), "sell edge is reciprocated")
}

func TestNewGraphSkipsSelfQuotes(t *testing.T) {
	g := newGraph([]rates.Rate{
		mkRate(rates.Default, rates.Default, rates.NoCash, "1", "1"),
	}, rates.NoCash)
	assert.Empty(t, g.order)
}

func TestNewGraphIncludesCbEdges(t *testing.T) {
	g := newGraph([]rates.Rate{
		mkRate(rates.USD, rates.Default, rates.Cb, "387.5", "387.5"),
	}, rates.NoCash)
	paths := findAllPaths(g, rates.USD, rates.Default)
	require.Len(t, paths, 1)
	assert.True(t, paths[0].weight.Equal(d("387.5")))
}

func TestNewGraphExcludesOtherTypes(t *testing.T) {
	g := newGraph([]rates.Rate{
		mkRate(rates.USD, rates.Default, rates.Cash, "384", "390"),
	}, rates.NoCash)
	assert.Empty(t, findAllPaths(g, rates.USD, rates.Default))
}

func TestFindAllPathsEnumeratesSimplePaths(t *testing.T) {
	g := newGraph([]rates.Rate{
		mkRate(rates.USD, rates.Default, rates.NoCash, "384", ""),
		mkRate(rates.USD, rates.EUR, rates.NoCash, "0.9", ""),
		mkRate(rates.EUR, rates.Default, rates.NoCash, "425", ""),
	}, rates.NoCash)

	paths := findAllPaths(g, rates.USD, rates.Default)
	require.Len(t, paths, 2)

	assert.Equal(t, []rates.Currency{rates.USD, rates.Default}, paths[0].hops)
	assert.True(t, paths[0].weight.Equal(d("384")))

	assert.Equal(t, []rates.Currency{rates.USD, rates.EUR, rates.Default}, paths[1].hops)
	assert.True(t, paths[1].weight.Equal(d("0.9").Mul(d("425"))), "weight is the product along the path")
}

func TestFindAllPathsNeverRepeatsAVertex(t *testing.T) {
	// USD <-> EUR both ways plus an exit to AMD; a cycle must not recurse.
	g := newGraph([]rates.Rate{
		mkRate(rates.USD, rates.EUR, rates.NoCash, "0.9", "0.95"),
		mkRate(rates.EUR, rates.Default, rates.NoCash, "425", ""),
	}, rates.NoCash)

	paths := findAllPaths(g, rates.USD, rates.Default)
	require.Len(t, paths, 1)
	for _, p := range paths {
		seen := map[rates.Currency]bool{}
		for _, c := range p.hops {
			assert.False(t, seen[c], "vertex repeated in %v", p.hops)
			seen[c] = true
		}
	}
}

func TestFindAllPathsUnknownEndpoints(t *testing.T) {
	g := newGraph([]rates.Rate{
		mkRate(rates.USD, rates.Default, rates.NoCash, "384", "390"),
	}, rates.NoCash)
	assert.Empty(t, findAllPaths(g, rates.EUR, rates.Default))
	assert.Empty(t, findAllPaths(g, rates.USD, rates.GEL))
}
