package rates

import "strings"

// Currency is a canonical upper-case currency token. The zero value is the
// empty currency.
type Currency string

// Default is the local market currency; implicit quotes resolve against it.
const Default = Currency("AMD")

// Currencies referenced by command shortcuts.
const (
	USD = Currency("USD")
	EUR = Currency("EUR")
	RUB = Currency("RUB")
	GEL = Currency("GEL")
)

// ParseCurrency canonicalises a raw token: whitespace trimmed, upper-cased,
// and the historical alias RUR rewritten to RUB.
func ParseCurrency(s string) Currency {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "RUR" {
		t = "RUB"
	}
	return Currency(t)
}

func (c Currency) String() string { return string(c) }

func (c Currency) IsEmpty() bool { return c == "" }
