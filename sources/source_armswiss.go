package sources

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// collectArmSwiss scrapes the bank's rates page: one table, a row per
// currency, cells in currency / buy / sell order.
func (c *Collector) collectArmSwiss(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	doc, err := c.getDocument(ctx, sc.RatesURL)
	if err != nil {
		return nil, err
	}
	rows := doc.Find("table.exchange-rates tbody tr")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("%w: exchange table missing", ErrHTML)
	}
	var out []rates.Rate
	rows.Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 3 {
			return
		}
		cur := rates.ParseCurrency(cells.Eq(0).Text())
		if cur.IsEmpty() {
			return
		}
		buy, _ := parseDecimal(cells.Eq(1).Text())
		sell, _ := parseDecimal(cells.Eq(2).Text())
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
