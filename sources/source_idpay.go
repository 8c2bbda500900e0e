package sources

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

type idpayPayload struct {
	Rates []struct {
		Currency string          `json:"currency"`
		Buy      decimal.Decimal `json:"buy"`
		Sell     decimal.Decimal `json:"sell"`
	} `json:"rates"`
}

// collectIdPay prices the card-transfer corridor. The published rate hides
// the fees, so each channel gets its own adjusted pair: card legs carry the
// any-card fee, bank transfers the smaller bank fee, and the surcharge for
// topping up a Russian card applies to both.
func (c *Collector) collectIdPay(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	if err := idpayLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	var payload idpayPayload
	if err := c.getJSON(ctx, sc.RatesURL, &payload); err != nil {
		return nil, err
	}
	cardPct := sc.CommissionFromAnyCard + sc.CommissionToRuCard
	bankPct := sc.CommissionFromBank + sc.CommissionToRuCard

	var out []rates.Rate
	for _, row := range payload.Rates {
		cur := rates.ParseCurrency(row.Currency)
		if cur.IsEmpty() {
			continue
		}
		out = append(out,
			rates.Rate{From: cur, To: rates.Default, Type: rates.Card,
				Buy: commissionBuy(row.Buy, cardPct), Sell: commissionSell(row.Sell, cardPct)},
			rates.Rate{From: cur, To: rates.Default, Type: rates.NoCash,
				Buy: commissionBuy(row.Buy, bankPct), Sell: commissionSell(row.Sell, bankPct)},
		)
	}
	return nonEmpty(out)
}
