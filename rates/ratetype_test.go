package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRateType(t *testing.T) {
	cases := map[string]RateType{
		"no cash":  NoCash,
		"Non Cash": NoCash,
		"non_cash": NoCash,
		"NOCASH":   NoCash,
		"cash":     Cash,
		"Cash":     Cash,
		"card":     Card,
		"online":   Online,
		"CB":       Cb,
	}
	for in, want := range cases {
		got, err := ParseRateType(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseRateTypeUnknown(t *testing.T) {
	_, err := ParseRateType("crypto")
	assert.ErrorIs(t, err, ErrUnknownRateType)
}

func TestRateTypeOrdinals(t *testing.T) {
	assert.Equal(t, 0, NoCash.Ordinal())
	assert.Equal(t, 1, Cash.Ordinal())
	assert.Equal(t, 2, Card.Ordinal())
	assert.Equal(t, 3, Online.Ordinal())
	assert.Equal(t, 4, Cb.Ordinal())
}
