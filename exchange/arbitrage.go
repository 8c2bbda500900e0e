package exchange

import (
	"math"

	"github.com/idanyas/amdrates/rates"
)

// arbEpsilon absorbs float noise when scanning for negative cycles.
const arbEpsilon = 1e-8

type logEdge struct {
	u, v int
	w    float64
}

// DetectArbitrage reports whether the quotes of exactly the given type close
// a cycle whose rate product exceeds 1. Central-bank reference quotes never
// take part unless rt itself is Cb, so a provider is only ever checked
// against its own board.
//
// Edge weights are -ln(rate); Bellman-Ford finds a negative cycle in log
// space, which is a round trip multiplying to more than 1.
func DetectArbitrage(rs []rates.Rate, rt rates.RateType) bool {
	index := map[rates.Currency]int{}
	vertex := func(c rates.Currency) int {
		if i, ok := index[c]; ok {
			return i
		}
		i := len(index)
		index[c] = i
		return i
	}

	var edges []logEdge
	for _, r := range rs {
		if r.Type != rt || r.From == r.To {
			continue
		}
		if r.HasBuy() {
			u, v := vertex(r.From), vertex(r.To)
			edges = append(edges, logEdge{u: u, v: v, w: -math.Log(r.Buy.Decimal.InexactFloat64())})
		}
		if r.HasSell() {
			u, v := vertex(r.To), vertex(r.From)
			edges = append(edges, logEdge{u: u, v: v, w: math.Log(r.Sell.Decimal.InexactFloat64())})
		}
	}

	n := len(index)
	if n == 0 {
		return false
	}
	dist := make([]float64, n)
	for i := 1; i < n; i++ {
		dist[i] = math.Inf(1)
	}
	for i := 0; i < n-1; i++ {
		for _, e := range edges {
			if d := dist[e.u] + e.w; d < dist[e.v] {
				dist[e.v] = d
			}
		}
	}
	for _, e := range edges {
		if dist[e.u]+e.w < dist[e.v]-arbEpsilon {
			return true
		}
	}
	return false
}
