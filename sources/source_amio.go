package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type amioPayload struct {
	Data []struct {
		Code     string          `json:"currencyCode"`
		Buy      decimal.Decimal `json:"buyRate"`
		Sell     decimal.Decimal `json:"sellRate"`
		CashBuy  decimal.Decimal `json:"cashBuyRate"`
		CashSell decimal.Decimal `json:"cashSellRate"`
	} `json:"data"`
}

// collectAmio reads a board that carries the account and cash quotes side by
// side in one row; either pair may be missing for exotic currencies.
func (c *Collector) collectAmio(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload amioPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Data {
		cur := rates.ParseCurrency(row.Code)
		if cur.IsEmpty() {
			continue
		}
		out = append(out,
			rates.Rate{From: cur, To: rates.Default, Type: rates.NoCash,
				Buy: rates.Positive(row.Buy), Sell: rates.Positive(row.Sell)},
			rates.Rate{From: cur, To: rates.Default, Type: rates.Cash,
				Buy: rates.Positive(row.CashBuy), Sell: rates.Positive(row.CashSell)},
		)
	}
	return nonEmpty(out)
}
