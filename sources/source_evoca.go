package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type evocaPayload struct {
	Rates []struct {
		Code    string          `json:"code"`
		Buy     decimal.Decimal `json:"rateBuy"`
		Sell    decimal.Decimal `json:"rateSell"`
		RateFor decimal.Decimal `json:"rateFor"`
	} `json:"rates"`
}

// collectEvoca normalises lot quotes: rateFor says how many units the
// published numbers price, usually 1, sometimes 10 or 100.
func (c *Collector) collectEvoca(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload evocaPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Rates {
		buy, sell := row.Buy, row.Sell
		if row.RateFor.IsPositive() {
			buy = buy.Div(row.RateFor)
			sell = sell.Div(row.RateFor)
		}
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.Code),
			To:   rates.Default,
			Type: rates.NoCash,
			Buy:  rates.Positive(buy),
			Sell: rates.Positive(sell),
		})
	}
	return nonEmpty(out)
}
