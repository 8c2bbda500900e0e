package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type inecoSide struct {
	Buy  decimal.Decimal `json:"buy"`
	Sell decimal.Decimal `json:"sell"`
}

type inecoPayload struct {
	Items []struct {
		Code     string    `json:"code"`
		Cashless inecoSide `json:"cashless"`
		Cash     inecoSide `json:"cash"`
	} `json:"items"`
}

func (c *Collector) collectIneco(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload inecoPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Items {
		cur := rates.ParseCurrency(row.Code)
		if cur.IsEmpty() {
			continue
		}
		out = append(out,
			rates.Rate{From: cur, To: rates.Default, Type: rates.NoCash,
				Buy: rates.Positive(row.Cashless.Buy), Sell: rates.Positive(row.Cashless.Sell)},
			rates.Rate{From: cur, To: rates.Default, Type: rates.Cash,
				Buy: rates.Positive(row.Cash.Buy), Sell: rates.Positive(row.Cash.Sell)},
		)
	}
	return nonEmpty(out)
}
