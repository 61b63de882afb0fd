package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEconomy pins every random pricing parameter so prices are predictable:
// threshold 10, markups 1.5 (at or under) and 1.2 (over).
func testEconomy() Economy {
	return Economy{
		Trader: TraderConfig{StartingMoney: 1000},
		Vessel: VesselConfig{
			Name:            "Test Ship",
			Capacity:        50,
			MaxCrew:         10,
			Speed:           3,
			SalaryPerWorker: 1,
			Aging:           AgingPolicy{Perishable: 1},
		},
		Market: MarketConfig{
			SectionSize:     3,
			PriceThreshold:  IntRange{Min: 10, Max: 10},
			BelowMultiplier: FloatRange{Min: 1.5, Max: 1.5},
			AboveMultiplier: FloatRange{Min: 1.2, Max: 1.2},
			Perishables: CategoryConfig{
				Names:     []string{"Apple", "Banana", "Mango", "Lime"},
				Amount:    IntRange{Min: 1, Max: 15},
				BasePrice: IntRange{Min: 5, Max: 50},
				Stat:      IntRange{Min: 3, Max: 10},
			},
			Alcohols: CategoryConfig{
				Names:     []string{"Rum", "Vodka", "Gin", "Mead"},
				Amount:    IntRange{Min: 1, Max: 20},
				BasePrice: IntRange{Min: 100, Max: 200},
				Stat:      IntRange{Min: 5, Max: 70},
			},
			Artifacts: CategoryConfig{
				Names:     []string{"Compass", "Spyglass", "Sextant", "Silk Map"},
				Amount:    IntRange{Min: 1, Max: 10},
				BasePrice: IntRange{Min: 30, Max: 100},
			},
		},
	}
}

// newTestMarket builds a market with a fixed seed, optionally overriding its shelves.
func newTestMarket(t *testing.T, clock *Clock, shelves ...Good) *Market {
	t.Helper()
	m, err := NewMarket(testEconomy().Market, clock, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	if len(shelves) > 0 {
		m.stock.replace(shelves)
	}
	return m
}

// newTestTrader builds a trader with the given balance and hold capacity.
func newTestTrader(t *testing.T, clock *Clock, money, capacity uint64) *Trader {
	t.Helper()
	eco := testEconomy()
	eco.Trader.StartingMoney = money
	eco.Vessel.Capacity = capacity
	tr, err := NewTrader(eco.Trader, eco.Vessel, clock)
	require.NoError(t, err)
	return tr
}

// stow puts goods straight into the trader's hold without paying.
func stow(tr *Trader, g Good) {
	tr.purchaseCargo(g, g.Amount, 0)
}
