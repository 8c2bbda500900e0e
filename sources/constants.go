package sources

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	acceptJSON      = "application/json"
	acceptHTML      = "text/html,application/xhtml+xml"
	soapContentType = "text/xml; charset=utf-8"
	userAgent       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	// maxHTMLBytes caps how much of a bank page the scrapers will parse.
	maxHTMLBytes = 4 << 20
)

// The exchange and payment-system endpoints meter requests; keep polite
// budgets so a tight refresh interval cannot get the bot banned.
var (
	moexLimiter  = rate.NewLimiter(rate.Every(time.Second), 5)
	idpayLimiter = rate.NewLimiter(rate.Every(2*time.Second), 3)
)
