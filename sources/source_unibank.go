package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type unibankPayload struct {
	Rates []struct {
		ISO    string          `json:"iso"`
		Amount decimal.Decimal `json:"amount"`
		Buy    decimal.Decimal `json:"buy"`
		Sell   decimal.Decimal `json:"sell"`
	} `json:"rates"`
}

// collectUnibank divides lot quotes down to one unit; the board prices some
// currencies per 10 or 100.
func (c *Collector) collectUnibank(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload unibankPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Rates {
		buy, sell := row.Buy, row.Sell
		if row.Amount.IsPositive() {
			buy = buy.Div(row.Amount)
			sell = sell.Div(row.Amount)
		}
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.ISO),
			To:   rates.Default,
			Type: rates.NoCash,
			Buy:  rates.Positive(buy),
			Sell: rates.Positive(sell),
		})
	}
	return nonEmpty(out)
}
