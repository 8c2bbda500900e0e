package sources

import (
	"context"
	"fmt"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// The bank still runs its rates behind a SOAP service. The request body is a
// fixed envelope; the action and namespace come from the req table so the
// endpoint can be repointed without a rebuild.
const ameriaEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <%[1]s xmlns="%[2]s" />
  </soap:Body>
</soap:Envelope>`

type ameriaPayload struct {
	Rates []struct {
		Currency string `xml:"Currency"`
		Kind     string `xml:"Type"`
		Buy      string `xml:"Buy"`
		Sell     string `xml:"Sell"`
	} `xml:"Body>GetExchangeRatesResponse>GetExchangeRatesResult>ExchangeRate"`
}

func (c *Collector) collectAmeria(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	action := sc.ReqString("action")
	if action == "" {
		action = "GetExchangeRates"
	}
	namespace := sc.ReqString("namespace")
	if namespace == "" {
		namespace = "https://ameriabank.am/"
	}
	envelope := fmt.Sprintf(ameriaEnvelope, action, namespace)

	var payload ameriaPayload
	if err := c.postSOAP(ctx, sc.RatesURL, namespace+action, []byte(envelope), &payload); err != nil {
		return nil, err
	}
	var out []rates.Rate
	for _, row := range payload.Rates {
		rt, err := rates.ParseRateType(row.Kind)
		if err != nil {
			continue
		}
		buy, _ := parseDecimal(row.Buy)
		sell, _ := parseDecimal(row.Sell)
		out = append(out, rates.Rate{
			From: rates.ParseCurrency(row.Currency),
			To:   rates.Default,
			Type: rt,
			Buy:  rates.Positive(buy),
			Sell: rates.Positive(sell),
		})
	}
	return nonEmpty(out)
}
