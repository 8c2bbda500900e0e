package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type araratPayload struct {
	Items []struct {
		Currency string          `json:"currency"`
		Kind     string          `json:"kind"`
		Buy      decimal.Decimal `json:"buy"`
		Sell     decimal.Decimal `json:"sell"`
	} `json:"items"`
}

func (c *Collector) collectArarat(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload araratPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Items {
		rt, err := rates.ParseRateType(row.Kind)
		if err != nil {
			continue
		}
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.Currency),
			To:   rates.Default,
			Type: rt,
			Buy:  rates.Positive(row.Buy),
			Sell: rates.Positive(row.Sell),
		})
	}
	return nonEmpty(out)
}
