package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type ardshinRow struct {
	ISO  string          `json:"iso"`
	Buy  decimal.Decimal `json:"buy"`
	Sale decimal.Decimal `json:"sale"`
}

type ardshinPayload struct {
	Result struct {
		NoCash []ardshinRow `json:"no_cash"`
		Cash   []ardshinRow `json:"cash"`
	} `json:"result"`
}

func (c *Collector) collectArdshin(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload ardshinPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	appendRows := func(rows []ardshinRow, rt rates.RateType) {
		for _, row := range rows {
			out = append(out, rates.Rate{
				From: rates.ParseCurrency(row.ISO),
				To:   rates.Default,
				Type: rt,
				Buy:  rates.Positive(row.Buy),
				Sell: rates.Positive(row.Sale),
			})
		}
	}
	appendRows(payload.Result.NoCash, rates.NoCash)
	appendRows(payload.Result.Cash, rates.Cash)
	return nonEmpty(out)
}
