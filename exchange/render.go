package exchange

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/rates"
)

// Sentinel is the reply for any query with nothing to show.
const Sentinel = `¯\_(ツ)_/¯`

const (
	rateDecimals = 4
	diffDecimals = 2
)

var hundred = decimal.NewFromInt(100)

// formatDecimal renders d with at most places decimals, half away from zero,
// trailing zeros trimmed.
func formatDecimal(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// renderSrcTable lays out one source's board as "buy | sell | FROM/TO" rows,
// in snapshot order. The central bank publishes reference quotes only, so its
// board always shows Cb regardless of the requested type.
func renderSrcTable(src rates.Source, snap rates.SourceRates, rt rates.RateType) string {
	if src == rates.Cba {
		rt = rates.Cb
	}
	type row struct {
		buy, sell, pair string
	}
	var rows []row
	var wBuy, wSell int
	for _, r := range snap[src] {
		if r.Type != rt {
			continue
		}
		buy, sell := "-", "-"
		if r.Buy.Valid {
			buy = formatDecimal(r.Buy.Decimal, rateDecimals)
		}
		if r.Sell.Valid {
			sell = formatDecimal(r.Sell.Decimal, rateDecimals)
		}
		if len(buy) > wBuy {
			wBuy = len(buy)
		}
		if len(sell) > wSell {
			wSell = len(sell)
		}
		rows = append(rows, row{buy: buy, sell: sell, pair: r.Pair()})
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%*s | %*s | %s\n", wBuy, r.buy, wSell, r.sell, r.pair)
	}
	return b.String()
}

type convRow struct {
	src  rates.Source
	rate decimal.Decimal
	hops []rates.Currency
}

// renderConvTable ranks every source's conversion paths for one pair. An
// inverted table answers "how many from per one to": paths are walked from
// the target currency back and every weight reciprocated, so the quote stays
// on the side the user pays with.
func renderConvTable(from, to rates.Currency, snap rates.SourceRates, rt rates.RateType, inverted bool) string {
	var rows []convRow
	for _, src := range rates.All() {
		rs, ok := snap[src]
		if !ok {
			continue
		}
		g := newGraph(rs, rt)
		var paths []path
		if inverted {
			paths = invertPaths(findAllPaths(g, to, from))
		} else {
			paths = findAllPaths(g, from, to)
		}
		sortPaths(paths, inverted)
		if src.IsBank() {
			paths = pruneLongerPaths(paths)
		}
		for _, p := range paths {
			rows = append(rows, convRow{src: src, rate: p.weight, hops: p.hops})
		}
	}
	if len(rows) == 0 {
		return ""
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].rate.Cmp(rows[j].rate); c != 0 {
			if inverted {
				return c < 0
			}
			return c > 0
		}
		return rows[i].src.String() < rows[j].src.String()
	})

	var bestBank *decimal.Decimal
	for _, r := range rows {
		if r.src.IsBank() {
			d := r.rate
			bestBank = &d
			break
		}
	}

	// A tied prefix says nothing about order; take the first strict step.
	descending := false
	for i := 1; i < len(rows); i++ {
		if c := rows[i].rate.Cmp(rows[i-1].rate); c != 0 {
			descending = c < 0
			break
		}
	}

	type outRow struct {
		prefix                byte
		src, rate, diff, hops string
	}
	var out []outRow
	var wSrc, wRate, wDiff int
	for _, r := range rows {
		diff := "-"
		if bestBank != nil && !r.rate.IsZero() {
			d := bestBank.Sub(r.rate).Div(r.rate).Mul(hundred)
			if descending {
				d = d.Neg()
			}
			diff = formatDecimal(d, diffDecimals)
		}
		names := make([]string, len(r.hops))
		for i, c := range r.hops {
			names[i] = c.String()
		}
		o := outRow{
			prefix: r.src.Prefix(),
			src:    r.src.String(),
			rate:   formatDecimal(r.rate, rateDecimals),
			diff:   diff,
			hops:   strings.Join(names, "/"),
		}
		if len(o.src) > wSrc {
			wSrc = len(o.src)
		}
		if len(o.rate) > wRate {
			wRate = len(o.rate)
		}
		if len(o.diff) > wDiff {
			wDiff = len(o.diff)
		}
		out = append(out, o)
	}

	var b strings.Builder
	for _, o := range out {
		fmt.Fprintf(&b, "%c %-*s | %-*s | %*s | %s\n", o.prefix, wSrc, o.src, wRate, o.rate, wDiff, o.diff, o.hops)
	}
	return b.String()
}

// invertPaths reciprocates every weight, flipping the hop list with it so
// the printed path reads in the quoted direction. A zero weight has no
// reciprocal and its path is dropped.
func invertPaths(ps []path) []path {
	out := ps[:0]
	for _, p := range ps {
		if p.weight.IsZero() {
			continue
		}
		p.weight = one.Div(p.weight)
		for i, j := 0, len(p.hops)-1; i < j; i, j = i+1, j-1 {
			p.hops[i], p.hops[j] = p.hops[j], p.hops[i]
		}
		out = append(out, p)
	}
	return out
}

// sortPaths orders one source's paths best first: highest rate, or lowest
// when the table is inverted.
func sortPaths(ps []path, inverted bool) {
	sort.SliceStable(ps, func(i, j int) bool {
		if inverted {
			return ps[i].weight.Cmp(ps[j].weight) < 0
		}
		return ps[i].weight.Cmp(ps[j].weight) > 0
	})
}

// pruneLongerPaths keeps only the shortest routes a bank offers. Longer
// chains inside one bank are cross-rate artefacts, not real counters.
func pruneLongerPaths(ps []path) []path {
	if len(ps) == 0 {
		return ps
	}
	shortest := len(ps[0].hops)
	for _, p := range ps[1:] {
		if len(p.hops) < shortest {
			shortest = len(p.hops)
		}
	}
	out := ps[:0]
	for _, p := range ps {
		if len(p.hops) == shortest {
			out = append(out, p)
		}
	}
	return out
}
