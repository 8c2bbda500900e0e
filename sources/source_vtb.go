package sources

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// collectVtb scrapes the bank's converter widget. Rows mark the currency
// with a data attribute, which survives the frequent facelifts better than
// cell positions do.
func (c *Collector) collectVtb(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	doc, err := c.getDocument(ctx, sc.RatesURL)
	if err != nil {
		return nil, err
	}
	rows := doc.Find("[data-currency]")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("%w: converter rows missing", ErrHTML)
	}
	var out []rates.Rate
	rows.Each(func(_ int, s *goquery.Selection) {
		code, _ := s.Attr("data-currency")
		cur := rates.ParseCurrency(code)
		if cur.IsEmpty() {
			return
		}
		buy, _ := parseDecimal(s.Find(".rate-buy").First().Text())
		sell, _ := parseDecimal(s.Find(".rate-sell").First().Text())
		out = append(out, rates.Rate{
			From: cur,
			To:   rates.Default,
			Type: rates.NoCash,
			Buy:  rates.Positive(buy),
			Sell: rates.Positive(sell),
		})
	})
	return nonEmpty(out)
}
