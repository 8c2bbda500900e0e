package sources

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// collectByblos scrapes a widget of labelled divs rather than a table.
func (c *Collector) collectByblos(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	doc, err := c.getDocument(ctx, sc.RatesURL)
	if err != nil {
		return nil, err
	}
	items := doc.Find(".rates-board .rate-row")
	if items.Length() == 0 {
		return nil, fmt.Errorf("%w: rates board missing", ErrHTML)
	}
	var out []rates.Rate
	items.Each(func(_ int, s *goquery.Selection) {
		cur := rates.ParseCurrency(s.Find(".currency").First().Text())
		if cur.IsEmpty() {
			return
		}
		buy, _ := parseDecimal(s.Find(".buy").First().Text())
		sell, _ := parseDecimal(s.Find(".sell").First().Text())
		out = append(out, rates.Rate{
			From: cur,
			To:   rates.Default,
			Type: rates.Cash,
			Buy:  rates.Positive(buy),
			Sell: rates.Positive(sell),
		})
	})
	return nonEmpty(out)
}
