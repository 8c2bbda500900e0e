package sources

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type artsakhPayload struct {
	Rates map[string]struct {
		Buy  decimal.Decimal `json:"buy"`
		Sell decimal.Decimal `json:"sell"`
	} `json:"rates"`
}

// collectArtsakh reads a board keyed by ISO code. Keys are walked sorted so
// the stored order is stable between refreshes.
func (c *Collector) collectArtsakh(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload artsakhPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(payload.Rates))
	for k := range payload.Rates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []rates.Rate
	for _, k := range keys {
		row := payload.Rates[k]
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(k),
			To:   rates.Default,
			Type: rates.NoCash,
			Buy:  rates.Positive(row.Buy),
			Sell: rates.Positive(row.Sell),
		})
	}
	return nonEmpty(out)
}
