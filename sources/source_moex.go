package sources

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type moexRequest struct {
	Instruments []string `json:"instruments"`
}

type moexPayload struct {
	LastPrices []struct {
		Figi  string `json:"figi"`
		Price struct {
			Units string `json:"units"`
			Nano  int64  `json:"nano"`
		} `json:"price"`
	} `json:"lastPrices"`
}

// collectMoex reads exchange last prices through the broker API. The req
// table maps currency to instrument figi; quotes come back against the
// ruble in the units+nano split the API uses for exact prices.
func (c *Collector) collectMoex(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	token := c.tinkoffToken()
	if token == "" {
		return nil, fmt.Errorf("%w: TINKOFF_TOKEN is not set", ErrTransport)
	}
	if err := moexLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	instruments := map[string]rates.Currency{}
	for key, figi := range sc.ReqFields() {
		cur := rates.ParseCurrency(key)
		if cur.IsEmpty() || figi == "" {
			continue
		}
		instruments[figi] = cur
	}
	if len(instruments) == 0 {
		return nil, ErrNoRates
	}
	figis := make([]string, 0, len(instruments))
	for figi := range instruments {
		figis = append(figis, figi)
	}
	sort.Strings(figis)

	var payload moexPayload
	headers := map[string]string{"Authorization": "Bearer " + token}
	if err := c.postJSON(ctx, sc.RatesURL, headers, moexRequest{Instruments: figis}, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, lp := range payload.LastPrices {
		cur, ok := instruments[lp.Figi]
		if !ok {
			continue
		}
		per := rates.Positive(moexPrice(lp.Price.Units, lp.Price.Nano))
		out = append(out, rates.Rate{From: cur, To: rates.RUB, Type: rates.NoCash, Buy: per, Sell: per})
	}
	return nonEmpty(out)
}

// moexPrice assembles a units+nano quotation into one exact decimal.
func moexPrice(units string, nano int64) decimal.Decimal {
	u, err := decimal.NewFromString(units)
	if err != nil {
		return decimal.Decimal{}
	}
	return u.Add(decimal.New(nano, -9))
}
