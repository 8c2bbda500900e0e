package sources

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/rates"
)

// collectMellat scrapes the rates table. The page puts cash and non-cash
// quotes in four numeric cells per row: non-cash buy/sell, then cash.
func (c *Collector) collectMellat(ctx context.Context, sc config.SrcConfig) ([]rates.Rate, error) {
	doc, err := c.getDocument(ctx, sc.RatesURL)
	if err != nil {
		return nil, err
	}
	rows := doc.Find("#exchange-rates tr")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("%w: rates table missing", ErrHTML)
	}
	var out []rates.Rate
	rows.Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 5 {
			return
		}
		cur := rates.ParseCurrency(cells.Eq(0).Text())
		if cur.IsEmpty() {
			return
		}
		buy, _ := parseDecimal(cells.Eq(1).Text())
		sell, _ := parseDecimal(cells.Eq(2).Text())
		cashBuy, _ := parseDecimal(cells.Eq(3).Text())
		cashSell, _ := parseDecimal(cells.Eq(4).Text())
		out = append(out,
			rates.Rate{From: cur, To: rates.Default, Type: rates.NoCash,
				Buy: rates.Positive(buy), Sell: rates.Positive(sell)},
			rates.Rate{From: cur, To: rates.Default, Type: rates.Cash,
				Buy: rates.Positive(cashBuy), Sell: rates.Positive(cashSell)},
		)
	})
	return nonEmpty(out)
}
