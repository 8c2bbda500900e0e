package exchange

import (
	"strings"

	"github.com/idanyas/amdrates/calculator"
	"github.com/idanyas/amdrates/rates"
)

const helpText = `usd, eur, rub, gel - best rates against the dram
usdcash, eurcash, rubcash, gelcash - same for cash
rubusd, rubeur, usdeur (+cash) - cross pairs
conv FROM [TO], convcash FROM [TO] - best paths for any pair
get SRC, getcash SRC - one source's board
list (ls) - known sources
info - version and last update
calc EXPR - evaluate an arithmetic expression
help (h, ?) - this message`

// HandleCommand maps one chat command, already stripped of transport
// decoration, to a reply. Unknown input falls back to the help text.
func (f *Facade) HandleCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return helpText
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	rt := rates.NoCash
	if base, ok := strings.CutSuffix(cmd, "cash"); ok && base != "" {
		switch base {
		case "usd", "eur", "rub", "gel", "rubusd", "rubeur", "usdeur", "conv", "get":
			cmd = base
			rt = rates.Cash
		}
	}

	switch cmd {
	case "usd":
		return f.ConvQuery(rates.USD, rates.Default, rt, true)
	case "eur":
		return f.ConvQuery(rates.EUR, rates.Default, rt, true)
	case "rub":
		return f.ConvQuery(rates.RUB, rates.Default, rt, true)
	case "gel":
		return f.ConvQuery(rates.GEL, rates.Default, rt, true)
	case "rubusd":
		return f.ConvQuery(rates.RUB, rates.USD, rt, false)
	case "rubeur":
		return f.ConvQuery(rates.RUB, rates.EUR, rt, false)
	case "usdeur":
		return f.ConvQuery(rates.USD, rates.EUR, rt, false)
	case "conv":
		from, to, inverted, ok := parsePairArgs(args)
		if !ok {
			return Sentinel
		}
		return f.ConvQuery(from, to, rt, inverted)
	case "get":
		if len(args) == 0 {
			return Sentinel
		}
		src, err := rates.ParseSource(args[0])
		if err != nil {
			return Sentinel
		}
		return f.SrcQuery(src, rt)
	case "list", "ls":
		return f.ListSources()
	case "info":
		return f.Info()
	case "calc":
		return f.calcCommand(args)
	case "start":
		return f.startCommand(args)
	case "help", "h", "?":
		return helpText
	}
	return helpText
}

// parsePairArgs reads FROM/TO or FROM TO. A lone token quotes it against the
// dram with the table inverted, so the price stays in drams.
func parsePairArgs(args []string) (from, to rates.Currency, inverted, ok bool) {
	switch len(args) {
	case 1:
		if f, t, ok2 := rates.ParsePair(args[0]); ok2 {
			return f, t, false, true
		}
		c := rates.ParseCurrency(args[0])
		if c.IsEmpty() {
			return "", "", false, false
		}
		return c, rates.Default, true, true
	case 2:
		f := rates.ParseCurrency(args[0])
		t := rates.ParseCurrency(args[1])
		if f.IsEmpty() || t.IsEmpty() {
			return "", "", false, false
		}
		return f, t, false, true
	}
	return "", "", false, false
}

// startCommand handles deep-link payloads: a source name (optionally
// SRC:type), a currency pair, or nothing at all.
func (f *Facade) startCommand(args []string) string {
	if len(args) == 0 {
		return helpText
	}
	name, typeArg, hasType := strings.Cut(args[0], ":")
	if src, err := rates.ParseSource(name); err == nil {
		rt := rates.NoCash
		if hasType {
			parsed, err := rates.ParseRateType(typeArg)
			if err != nil {
				return Sentinel
			}
			rt = parsed
		}
		return f.SrcQuery(src, rt)
	}
	from, to, inverted, ok := parsePairArgs(args)
	if !ok {
		return Sentinel
	}
	return f.ConvQuery(from, to, rates.NoCash, inverted)
}

func (f *Facade) calcCommand(args []string) string {
	if len(args) == 0 {
		return Sentinel
	}
	result, err := calculator.Evaluate(strings.Join(args, " "))
	if err != nil {
		return Sentinel
	}
	return result
}
