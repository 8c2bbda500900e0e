package rates

import (
	"errors"
	"fmt"
	"strings"
)

// RateType classifies a quote by settlement channel.
type RateType int

const (
	NoCash RateType = iota
	Cash
	Card
	Online
	// Cb marks the central-bank reference quote.
	Cb
)

var rateTypeNames = [...]string{"no cash", "cash", "card", "online", "cb"}

// ErrUnknownRateType reports a token outside the closed rate-type enum.
var ErrUnknownRateType = errors.New("unknown rate type")

// ParseRateType reads a rate type case-insensitively. The no-cash type
// accepts the spellings seen in provider payloads and user input.
func ParseRateType(s string) (RateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no cash", "non cash", "non_cash", "nocash":
		return NoCash, nil
	case "cash":
		return Cash, nil
	case "card":
		return Card, nil
	case "online":
		return Online, nil
	case "cb":
		return Cb, nil
	}
	return NoCash, fmt.Errorf("%w: %q", ErrUnknownRateType, s)
}

// Ordinal is the stable integer used in cache keys and URL templates.
func (t RateType) Ordinal() int { return int(t) }

func (t RateType) String() string {
	if t < 0 || int(t) >= len(rateTypeNames) {
		return fmt.Sprintf("ratetype(%d)", int(t))
	}
	return rateTypeNames[t]
}
