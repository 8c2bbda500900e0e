package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type idbankPayload []struct {
	ISO  string          `json:"currencyISO"`
	Kind int             `json:"type"`
	Buy  decimal.Decimal `json:"buy"`
	Sell decimal.Decimal `json:"sell"`
}

// collectIdBank reads a board that encodes the rate type as our own ordinal.
// Values outside the provider range (the bank never publishes Cb) are
// dropped.
func (c *Collector) collectIdBank(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload idbankPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload {
		if row.Kind < rates.NoCash.Ordinal() || row.Kind > rates.Online.Ordinal() {
			continue
		}
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.ISO),
			To:   rates.Default,
			Type: rates.RateType(row.Kind),
			Buy:  rates.Positive(row.Buy),
			Sell: rates.Positive(row.Sell),
		})
	}
	return nonEmpty(out)
}
