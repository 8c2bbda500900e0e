package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// Error kinds surfaced by adapters. The collector only logs them; tests
// discriminate with errors.Is.
var (
	ErrTransport       = errors.New("transport")
	ErrDecode          = errors.New("decode")
	ErrNoRates         = errors.New("no usable rates")
	ErrHTML            = errors.New("unexpected html structure")
	ErrInvalidRateType = errors.New("rate type not supported by adapter")
)

// collectSource dispatches one fetch to the provider's adapter.
func (c *Collector) collectSource(ctx context.Context, src rates.Source, sc config.SrcConfig) ([]rates.Rate, error) {
	switch src {
	case rates.Cba:
		return c.collectCba(ctx, sc)
	case rates.Acba:
		return c.collectAcba(ctx, sc)
	case rates.Ameria:
		return c.collectAmeria(ctx, sc)
	case rates.Amio:
		return c.collectAmio(ctx, sc)
	case rates.Ararat:
		return c.collectArarat(ctx, sc)
	case rates.Ardshin:
		return c.collectArdshin(ctx, sc)
	case rates.Armeconom:
		return c.collectArmeconom(ctx, sc)
	case rates.ArmSwiss:
		return c.collectArmSwiss(ctx, sc)
	case rates.Artsakh:
		return c.collectArtsakh(ctx, sc)
	case rates.Byblos:
		return c.collectByblos(ctx, sc)
	case rates.Converse:
		return c.collectConverse(ctx, sc)
	case rates.Evoca:
		return c.collectEvoca(ctx, sc)
	case rates.Fast:
		return c.collectFast(ctx, sc)
	case rates.IdBank:
		return c.collectIdBank(ctx, sc)
	case rates.IdPay:
		return c.collectIdPay(ctx, sc)
	case rates.Idram:
		return c.collectIdram(ctx, sc)
	case rates.Ineco:
		return c.collectIneco(ctx, sc)
	case rates.Mellat:
		return c.collectMellat(ctx, sc)
	case rates.Mir:
		return c.collectMir(ctx, sc)
	case rates.Moex:
		return c.collectMoex(ctx, sc)
	case rates.Sas:
		return c.collectSas(ctx, sc)
	case rates.Unibank:
		return c.collectUnibank(ctx, sc)
	case rates.Unistream:
		return c.collectUnistream(ctx, sc)
	case rates.VtbAm:
		return c.collectVtb(ctx, sc)
	}
	return nil, fmt.Errorf("%w: %d", rates.ErrUnknownSource, src)
}

// ============================================================================
// HTTP helpers
// ============================================================================

func (c *Collector) do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}
	return resp, nil
}

func (c *Collector) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", acceptJSON)
	return c.decodeJSON(req, out)
}

func (c *Collector) postFormJSON(ctx context.Context, rawURL string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", acceptJSON)
	return c.decodeJSON(req, out)
}

func (c *Collector) postJSON(ctx context.Context, rawURL string, headers map[string]string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", acceptJSON)
	req.Header.Set("Accept", acceptJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.decodeJSON(req, out)
}

func (c *Collector) decodeJSON(req *http.Request, out interface{}) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *Collector) getXML(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return c.decodeXML(req, out)
}

func (c *Collector) postSOAP(ctx context.Context, rawURL, action string, envelope []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(envelope))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", soapContentType)
	if action != "" {
		req.Header.Set("SOAPAction", action)
	}
	return c.decodeXML(req, out)
}

func (c *Collector) decodeXML(req *http.Request, out interface{}) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// getDocument fetches a page for the scraping adapters. Bank sites tend to
// reject the default Go user agent, so a browser-ish one is sent.
func (c *Collector) getDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", acceptHTML)
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxHTMLBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return doc, nil
}

// ============================================================================
// numeric helpers
// ============================================================================

var hundred = decimal.NewFromInt(100)

// parseDecimal reads provider numerics that may carry group spaces or a
// comma decimal point.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" || s == "-" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// commissionBuy shrinks the buy side by pct percent; the provider pays that
// much less for the user's currency.
func commissionBuy(d decimal.Decimal, pct float64) decimal.NullDecimal {
	if pct != 0 {
		p := decimal.NewFromFloat(pct)
		d = d.Sub(d.Mul(p).Div(hundred))
	}
	return rates.Positive(d)
}

// commissionSell grows the sell side by pct percent.
func commissionSell(d decimal.Decimal, pct float64) decimal.NullDecimal {
	if pct != 0 {
		p := decimal.NewFromFloat(pct)
		d = d.Add(d.Mul(p).Div(hundred))
	}
	return rates.Positive(d)
}

// nonEmpty finishes an adapter: a schema that matched but yielded nothing
// usable is its own error kind.
func nonEmpty(out []rates.Rate) ([]rates.Rate, error) {
	if len(out) == 0 {
		return nil, ErrNoRates
	}
	return out, nil
}
