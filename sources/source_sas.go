package sources

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// collectSas scrapes the supermarket chain's exchange list. The office deals
// in banknotes only, so everything is a cash quote.
func (c *Collector) collectSas(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	doc, err := c.getDocument(ctx, sc.RatesURL)
	if err != nil {
		return nil, err
	}
	items := doc.Find(".exchange-list .exchange-item")
	if items.Length() == 0 {
		return nil, fmt.Errorf("%w: exchange list missing", ErrHTML)
	}
	var out []rates.Rate
	items.Each(func(_ int, s *goquery.Selection) {
		cur := rates.ParseCurrency(s.Find(".item-name").First().Text())
		if cur.IsEmpty() {
			return
		}
		buy, _ := parseDecimal(s.Find(".item-buy").First().Text())
		sell, _ := parseDecimal(s.Find(".item-sell").First().Text())
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
