package sources

import (
	"context"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// cbaPayload is the central bank's ExchangeRatesLatest document.
type cbaPayload struct {
	Rates []struct {
		ISO    string `xml:"ISO"`
		Amount string `xml:"Amount"`
		Rate   string `xml:"Rate"`
	} `xml:"Rates>Rate"`
}

// collectCba reads the official reference quotes. They are single-sided: buy
// and sell carry the same value and the type is always Cb. Quotes published
// per lot (100 RUB and the like) are divided down to one unit.
func (c *Collector) collectCba(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload cbaPayload
	if err := c.getXML(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Rates {
		cur := rates.ParseCurrency(row.ISO)
		if cur.IsEmpty() {
			continue
		}
		value, ok := parseDecimal(row.Rate)
		if !ok {
			continue
		}
		if amount, ok := parseDecimal(row.Amount); ok && amount.IsPositive() {
			value = value.Div(amount)
		}
		per := rates.Positive(value)
		out = append(out, rates.Rate{From: cur, To: rates.Default, Type: rates.Cb, Buy: per, Sell: per})
	}
	return nonEmpty(out)
}
