package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type fastPayload struct {
	Result struct {
		ExchangeRates []struct {
			ID     string          `json:"id"`
			Buy    decimal.Decimal `json:"buy"`
			Sell   decimal.Decimal `json:"sell"`
			Online struct {
				Buy  decimal.Decimal `json:"buy"`
				Sell decimal.Decimal `json:"sell"`
			} `json:"online"`
		} `json:"exchangeRates"`
	} `json:"result"`
}

// collectFast reads the branch board plus the app-only online quotes nested
// under each currency.
func (c *Collector) collectFast(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload fastPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Result.ExchangeRates {
		cur := rates.ParseCurrency(row.ID)
		if cur.IsEmpty() {
			continue
		}
		out = append(out,
			rates.Rate{From: cur, To: rates.Default, Type: rates.NoCash,
				Buy: rates.Positive(row.Buy), Sell: rates.Positive(row.Sell)},
			rates.Rate{From: cur, To: rates.Default, Type: rates.Online,
				Buy: rates.Positive(row.Online.Buy), Sell: rates.Positive(row.Online.Sell)},
		)
	}
	return nonEmpty(out)
}
