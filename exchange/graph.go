package exchange

import (
	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/rates"
)

var one = decimal.NewFromInt(1)

// edge is one directed conversion: a unit of the owning vertex becomes
// weight units of to.
type edge struct {
	to     rates.Currency
	weight decimal.Decimal
}

// graph is a directed multigraph over currencies. Adjacency keeps insertion
// order so path enumeration is deterministic across runs.
type graph struct {
	order []rates.Currency
	adj   map[rates.Currency][]edge
}

// newGraph builds one source's conversion graph. Rates of the requested type
// are included together with the central-bank reference quotes, which stay
// available as fall-back edges. A positive buy adds from->to at the buy
// weight; a positive sell adds to->from at 1/sell. Self quotes are dropped.
func newGraph(rs []rates.Rate, rt rates.RateType) *graph {
	g := &graph{adj: make(map[rates.Currency][]edge)}
	for _, r := range rs {
		if r.Type != rt && r.Type != rates.Cb {
			continue
		}
		if r.From == r.To {
			continue
		}
		if r.HasBuy() {
			g.addEdge(r.From, r.To, r.Buy.Decimal)
		}
		if r.HasSell() {
			g.addEdge(r.To, r.From, one.Div(r.Sell.Decimal))
		}
	}
	return g
}

func (g *graph) addEdge(from, to rates.Currency, w decimal.Decimal) {
	g.vertex(from)
	g.vertex(to)
	g.adj[from] = append(g.adj[from], edge{to: to, weight: w})
}

func (g *graph) vertex(c rates.Currency) {
	if _, ok := g.adj[c]; !ok {
		g.adj[c] = nil
		g.order = append(g.order, c)
	}
}

// path is one simple conversion route and the product of its edge weights.
type path struct {
	hops   []rates.Currency
	weight decimal.Decimal
}

// findAllPaths enumerates every simple path between two currencies. A vertex
// never repeats within one path, so cyclic graphs terminate; the only bound
// on path length is the number of distinct currencies.
func findAllPaths(g *graph, from, to rates.Currency) []path {
	if _, ok := g.adj[from]; !ok {
		return nil
	}
	if _, ok := g.adj[to]; !ok {
		return nil
	}
	var out []path
	visited := map[rates.Currency]bool{}
	var walk func(cur rates.Currency, acc decimal.Decimal, trail []rates.Currency)
	walk = func(cur rates.Currency, acc decimal.Decimal, trail []rates.Currency) {
		if cur == to {
			out = append(out, path{hops: append([]rates.Currency(nil), trail...), weight: acc})
			return
		}
		visited[cur] = true
		for _, e := range g.adj[cur] {
			if visited[e.to] {
				continue
			}
			walk(e.to, acc.Mul(e.weight), append(trail, e.to))
		}
		visited[cur] = false
	}
	walk(from, one, []rates.Currency{from})
	return out
}
