package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idanyas/amdrates/rates"
)

var chf = rates.Currency("CHF")

func TestDetectArbitrageBuyCycle(t *testing.T) {
	rs := []rates.Rate{
		mkRate(rates.USD, rates.EUR, rates.NoCash, "0.83", "0.85"),
		mkRate(rates.EUR, chf, rates.NoCash, "0.88", "0.90"),
		mkRate(chf, rates.USD, rates.NoCash, "1.37", "1.50"),
	}
	assert.True(t, DetectArbitrage(rs, rates.NoCash))
}

func TestDetectArbitrageSellCycle(t *testing.T) {
	rs := []rates.Rate{
		mkRate(rates.EUR, rates.USD, rates.NoCash, "1.1", "1.2"),
		mkRate(rates.USD, chf, rates.NoCash, "0.7", "0.75"),
		mkRate(chf, rates.EUR, rates.NoCash, "1.05", "1.10"),
	}
	assert.True(t, DetectArbitrage(rs, rates.NoCash))
}

func TestDetectArbitrageAbsent(t *testing.T) {
	rs := []rates.Rate{
		mkRate(rates.USD, rates.EUR, rates.NoCash, "0.8", "0.85"),
		mkRate(rates.EUR, chf, rates.NoCash, "0.9", "0.95"),
		mkRate(chf, rates.USD, rates.NoCash, "1.38", "1.40"),
	}
	assert.False(t, DetectArbitrage(rs, rates.NoCash))
}

func TestDetectArbitrageEmpty(t *testing.T) {
	assert.False(t, DetectArbitrage(nil, rates.NoCash))
}

// A crazy reference quote must not flag the provider's own board: reference
// edges stay out of the check.
func TestDetectArbitrageIgnoresCbEdges(t *testing.T) {
	rs := []rates.Rate{
		mkRate(rates.USD, rates.Default, rates.NoCash, "384", "390"),
		mkRate(rates.Default, rates.USD, rates.Cb, "1", "1"),
	}
	assert.False(t, DetectArbitrage(rs, rates.NoCash))
}

func TestDetectArbitrageTypeIsolation(t *testing.T) {
	cycle := []rates.Rate{
		mkRate(rates.USD, rates.EUR, rates.Cash, "0.83", "0.85"),
		mkRate(rates.EUR, chf, rates.Cash, "0.88", "0.90"),
		mkRate(chf, rates.USD, rates.Cash, "1.37", "1.50"),
	}
	assert.True(t, DetectArbitrage(cycle, rates.Cash))
	assert.False(t, DetectArbitrage(cycle, rates.NoCash))
}
