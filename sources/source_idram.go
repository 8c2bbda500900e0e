package sources

import (
	"context"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type idramPayload []struct {
	Curr     string `json:"curr"`
	Purchase string `json:"purchase"`
	Sale     string `json:"sale"`
}

func (c *Collector) collectIdram(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload idramPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload {
		buy, _ := parseDecimal(row.Purchase)
		sell, _ := parseDecimal(row.Sale)
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.Curr),
			To:   rates.Default,
			Type: rates.NoCash,
			Buy:  rates.Positive(buy),
			Sell: rates.Positive(sell),
		})
	}
	return nonEmpty(out)
}
