package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type acbaPayload struct {
	Result struct {
		Rates []struct {
			ISO  string          `json:"iso"`
			Kind string          `json:"type"`
			Buy  decimal.Decimal `json:"buy"`
			Sell decimal.Decimal `json:"sell"`
		} `json:"rates"`
	} `json:"result"`
}

// collectAcba reads the bank's board; every row names its own rate type, so
// one response covers cash and account quotes.
func (c *Collector) collectAcba(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload acbaPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Result.Rates {
		rt, err := rates.ParseRateType(row.Kind)
		if err != nil {
			continue
		}
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.ISO),
			To:   rates.Default,
			Type: rt,
			Buy:  rates.Positive(row.Buy),
			Sell: rates.Positive(row.Sell),
		})
	}
	return nonEmpty(out)
}
