package sources

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type unistreamPayload struct {
	Rates []struct {
		From string          `json:"from"`
		To   string          `json:"to"`
		Rate decimal.Decimal `json:"rate"`
	} `json:"rates"`
}

// unistreamKinds are the transfer channels the endpoint distinguishes by
// rate-type ordinal in the URL.
var unistreamKinds = []rates.RateType{rates.NoCash, rates.Card}

// unistreamURL expands the %d placeholder in the configured URL template.
// Reference quotes have no transfer channel; asking for one is a bug.
func unistreamURL(tmpl string, rt rates.RateType) (string, error) {
	if rt == rates.Cb {
		return "", fmt.Errorf("%w: %s", ErrInvalidRateType, rt)
	}
	if !strings.Contains(tmpl, "%d") {
		return tmpl, nil
	}
	return fmt.Sprintf(tmpl, rt.Ordinal()), nil
}

// collectUnistream prices the transfer corridors. Transfers are one-way, so
// only the buy leg exists, with the sender-side commission taken off.
func (c *Collector) collectUnistream(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	var out []rates.Rate
	for _, rt := range unistreamKinds {
		u, err := unistreamURL(sc.RatesURL, rt)
		if err != nil {
			return nil, err
		}
		var payload unistreamPayload
		if err := c.getJSON(ctx, u, &payload); err != nil {
			return nil, err
		}
		for _, row := range payload.Rates {
			from := rates.ParseCurrency(row.From)
			to := rates.ParseCurrency(row.To)
			if from.IsEmpty() || to.IsEmpty() {
				continue
			}
			out = append(out, rates.Rate{
				From: from,
				To:   to,
				Type: rt,
				Buy:  commissionBuy(row.Rate, sc.CommissionRate),
			})
		}
		if !strings.Contains(sc.RatesURL, "%d") {
			// One board serves every channel; no point fetching it twice.
			break
		}
	}
	return nonEmpty(out)
}
