package rates

import (
	"errors"
	"fmt"
	"strings"
)

// Source identifies one external rate provider.
type Source int

const (
	Cba Source = iota
	Acba
	Ameria
	Amio
	Ararat
	Ardshin
	Armeconom
	ArmSwiss
	Artsakh
	Byblos
	Converse
	Evoca
	Fast
	IdBank
	IdPay
	Idram
	Ineco
	Mellat
	Mir
	Moex
	Sas
	Unibank
	Unistream
	VtbAm
)

var sourceMeta = [...]struct {
	name string
	bank bool
}{
	Cba:       {"CBA", false},
	Acba:      {"Acba", true},
	Ameria:    {"Ameria", true},
	Amio:      {"Amio", true},
	Ararat:    {"Ararat", true},
	Ardshin:   {"Ardshin", true},
	Armeconom: {"Armeconom", true},
	ArmSwiss:  {"ArmSwiss", true},
	Artsakh:   {"Artsakh", true},
	Byblos:    {"Byblos", true},
	Converse:  {"Converse", true},
	Evoca:     {"Evoca", true},
	Fast:      {"Fast", true},
	IdBank:    {"IdBank", true},
	IdPay:     {"IdPay", false},
	Idram:     {"Idram", false},
	Ineco:     {"Ineco", true},
	Mellat:    {"Mellat", true},
	Mir:       {"MIR", false},
	Moex:      {"Moex", false},
	Sas:       {"SAS", false},
	Unibank:   {"Unibank", true},
	Unistream: {"Unistream", false},
	VtbAm:     {"VTB", true},
}

// ErrUnknownSource reports a name outside the closed source enum.
var ErrUnknownSource = errors.New("unknown source")

// ParseSource reads a provider name case-insensitively.
func ParseSource(s string) (Source, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i := range sourceMeta {
		if strings.ToLower(sourceMeta[i].name) == needle {
			return Source(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSource, s)
}

// All returns every source in declaration order.
func All() []Source {
	out := make([]Source, len(sourceMeta))
	for i := range out {
		out[i] = Source(i)
	}
	return out
}

// IsBank is true for retail banks only, not for the central bank or the
// payment and transfer providers.
func (s Source) IsBank() bool { return sourceMeta[s].bank }

// Prefix is the marker printed before the source name in conversion tables:
// @ for the central bank, * for banks, # for everything else.
func (s Source) Prefix() byte {
	switch {
	case s == Cba:
		return '@'
	case s.IsBank():
		return '*'
	default:
		return '#'
	}
}

func (s Source) String() string { return sourceMeta[s].name }

// Key is the lower-case form used in config tables and cache keys.
func (s Source) Key() string { return strings.ToLower(sourceMeta[s].name) }
