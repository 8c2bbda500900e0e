package sources

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type mirPayload struct {
	Content []struct {
		Currency string          `json:"currency"`
		Value    decimal.Decimal `json:"value"`
	} `json:"content"`
}

// collectMir asks the payment system for its card conversion rate. The
// endpoint wants a form POST whose fields live in the req table; the answer
// is one-way (rubles off a card into local currency) and the published
// value hides the scheme fee, so the configured commission is taken off.
func (c *Collector) collectMir(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	form := url.Values{}
	for k, v := range sc.ReqFields() {
		form.Set(k, v)
	}
	var payload mirPayload
	if err := c.postFormJSON(ctx, sc.RatesURL, form, &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Content {
		to := rates.ParseCurrency(row.Currency)
		if to.IsEmpty() {
			continue
		}
		out = append(out, rates.Rate{
			From: rates.RUB,
			To:   to,
			Type: rates.Card,
			Buy:  commissionBuy(row.Value, sc.CommissionRate),
		})
	}
	return nonEmpty(out)
}
