package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type conversePayload struct {
	ExchangeRates []struct {
		Currency struct {
			Code string `json:"code"`
		} `json:"currency"`
		Kind string          `json:"type"`
		Buy  decimal.Decimal `json:"buy"`
		Sell decimal.Decimal `json:"sell"`
	} `json:"exchangeRates"`
}

func (c *Collector) collectConverse(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload conversePayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.ExchangeRates {
		rt, err := rates.ParseRateType(row.Kind)
		if err != nil {
			continue
		}
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.Currency.Code),
			To:   rates.Default,
			Type: rt,
			Buy:  rates.Positive(row.Buy),
			Sell: rates.Positive(row.Sell),
		})
	}
	return nonEmpty(out)
}
