package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateWiresTheDay(t *testing.T) {
	s, err := NewState(testEconomy(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Clock.Subscribers(), "market and vessel subscribe at construction")
	assert.Equal(t, uint64(1000), s.Trader.Money())
	assert.Equal(t, uint64(50), s.Trader.AvailableSpace())

	s.Trader.Vessel().HireCrew(4)
	s.NextDay()
	assert.Equal(t, uint64(996), s.Trader.Money())
	assert.Len(t, s.Market.Stock(), 9)
}

func TestNewStateIsReproducible(t *testing.T) {
	a, err := NewState(testEconomy(), 2024)
	require.NoError(t, err)
	b, err := NewState(testEconomy(), 2024)
	require.NoError(t, err)

	for day := 0; day < 5; day++ {
		assert.Equal(t, a.Market.Listing(), b.Market.Listing(), "day %d", day)
		assert.Equal(t, a.Market.Pricing(), b.Market.Pricing())
		a.NextDay()
		b.NextDay()
	}
}

func TestNewStateRejectsInvalidEconomy(t *testing.T) {
	eco := testEconomy()
	eco.Vessel.Capacity = 0
	_, err := NewState(eco, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
