package sources

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type armeconomPayload struct {
	Rates []struct {
		Pair string          `json:"pair"`
		Bid  decimal.Decimal `json:"bid"`
		Ask  decimal.Decimal `json:"ask"`
	} `json:"rates"`
}

// collectArmeconom reads a board labelled with explicit pairs, including
// cross rates like EUR/USD. Labels that are not a pair (metal codes and
// index tickers live on the same feed) are skipped.
func (c *Collector) collectArmeconom(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var payload armeconomPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Rates {
		from, to, ok := rates.ParsePair(row.Pair)
		if !ok {
			continue
		}
		out = append(out, rates.Rate{
			From: from,
			To:   to,
			Type: rates.NoCash,
			Buy:  rates.Positive(row.Bid),
			Sell: rates.Positive(row.Ask),
		})
	}
	return nonEmpty(out)
}
