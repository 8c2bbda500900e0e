package rates

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is one quote as published by a source: one unit of From is bought by
// the source for Buy units of To and sold for Sell units of To. Either side
// may be absent.
type Rate struct {
	From Currency
	To   Currency
	Type RateType
	Buy  decimal.NullDecimal
	Sell decimal.NullDecimal
}

// SourceRates maps each source to the quotes it produced in one cycle.
type SourceRates map[Source][]Rate

// Positive wraps d as a present side when it is strictly positive, otherwise
// the side is absent. Adapters funnel every numeric value through here so
// zeros and negatives never reach the store.
func Positive(d decimal.Decimal) decimal.NullDecimal {
	if d.IsPositive() {
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}
	return decimal.NullDecimal{}
}

func (r Rate) HasBuy() bool  { return r.Buy.Valid && r.Buy.Decimal.IsPositive() }
func (r Rate) HasSell() bool { return r.Sell.Valid && r.Sell.Decimal.IsPositive() }

// Usable reports whether the rate survives collection: both currencies known
// and at least one positive side.
func (r Rate) Usable() bool {
	return !r.From.IsEmpty() && !r.To.IsEmpty() && (r.HasBuy() || r.HasSell())
}

// Pair renders the FROM/TO label used in tables.
func (r Rate) Pair() string {
	return r.From.String() + "/" + r.To.String()
}

// ParsePair splits a FROM/TO label into canonical currencies. Labels that are
// not exactly two non-empty tokens are rejected.
func ParsePair(label string) (Currency, Currency, bool) {
	parts := strings.Split(label, "/")
	if len(parts) != 2 {
		return "", "", false
	}
	from, to := ParseCurrency(parts[0]), ParseCurrency(parts[1])
	if from.IsEmpty() || to.IsEmpty() {
		return "", "", false
	}
	return from, to, true
}
