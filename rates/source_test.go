package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRoster(t *testing.T) {
	all := All()
	require.Len(t, all, 24)

	// Declaration order is stable; the central bank comes first.
	assert.Equal(t, Cba, all[0])

	seen := map[string]bool{}
	for _, s := range all {
		assert.NotEmpty(t, s.String())
		assert.False(t, seen[s.Key()], "duplicate key %q", s.Key())
		seen[s.Key()] = true
	}
}

func TestSourcePrefixes(t *testing.T) {
	assert.Equal(t, byte('@'), Cba.Prefix())
	assert.False(t, Cba.IsBank())

	for _, s := range []Source{Acba, Ameria, Ineco, VtbAm} {
		assert.True(t, s.IsBank(), s)
		assert.Equal(t, byte('*'), s.Prefix(), s)
	}

	for _, s := range []Source{Idram, IdPay, Mir, Moex, Sas, Unistream} {
		assert.False(t, s.IsBank(), s)
		assert.Equal(t, byte('#'), s.Prefix(), s)
	}
}

func TestParseSource(t *testing.T) {
	for _, s := range All() {
		got, err := ParseSource(s.Key())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseSource("ACBA")
	require.NoError(t, err)
	assert.Equal(t, Acba, got)

	_, err = ParseSource("sberbank")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestRateSides(t *testing.T) {
	buy := Positive(decimal.NewFromInt(384))
	none := Positive(decimal.Zero)
	assert.True(t, buy.Valid)
	assert.False(t, none.Valid)

	r := Rate{From: USD, To: Default, Type: NoCash, Buy: buy}
	assert.True(t, r.HasBuy())
	assert.False(t, r.HasSell())
	assert.True(t, r.Usable())
	assert.Equal(t, "USD/AMD", r.Pair())

	assert.False(t, Rate{From: USD, To: Default}.Usable())
	assert.False(t, Rate{From: USD, Type: NoCash, Buy: buy}.Usable())
}

func TestParsePair(t *testing.T) {
	from, to, ok := ParsePair("usd/rur")
	require.True(t, ok)
	assert.Equal(t, USD, from)
	assert.Equal(t, RUB, to)

	for _, bad := range []string{"USD", "USD/", "/AMD", "USD/EUR/AMD", ""} {
		_, _, ok := ParsePair(bad)
		assert.False(t, ok, "label %q", bad)
	}
}
