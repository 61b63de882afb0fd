package console

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/galaxies-trade-run/internal/game"
)

func newTestSession(t *testing.T, money uint64) *Session {
	t.Helper()
	eco := game.DefaultEconomy()
	eco.Trader.StartingMoney = money
	eco.Market.PriceThreshold = game.IntRange{Min: 10, Max: 10}
	eco.Market.BelowMultiplier = game.FloatRange{Min: 1.5, Max: 1.5}
	eco.Market.AboveMultiplier = game.FloatRange{Min: 1.2, Max: 1.2}
	// Keep every shelf stocked so index 1 is always buyable.
	eco.Market.Perishables.Amount = game.IntRange{Min: 5, Max: 10}
	eco.Market.Alcohols.Amount = game.IntRange{Min: 5, Max: 10}

	state, err := game.NewState(eco, 17)
	require.NoError(t, err)
	return NewSession(state)
}

func run(t *testing.T, s *Session, line string) string {
	t.Helper()
	var out bytes.Buffer
	quit, err := s.Handle(line, &out)
	require.NoError(t, err)
	require.False(t, quit)
	return out.String()
}

func TestHandleBuyAndSell(t *testing.T) {
	s := newTestSession(t, 10_000)
	first, ok := s.State.Market.Cargo(1)
	require.True(t, ok)
	unit := s.State.Market.BuyPrice(first)

	out := run(t, s, "buy 1 2")
	assert.Equal(t, fmt.Sprintf("Bought 2 %s for %s.\n", first.Name, credits(2*unit)), out)
	assert.Equal(t, uint64(2), s.State.Trader.HeldAmount(first.Name))

	out = run(t, s, "sell 1 2")
	assert.Contains(t, out, "Sold 2 "+first.Name)
	assert.Equal(t, uint64(0), s.State.Trader.HeldAmount(first.Name))
}

func TestHandleTradeRefusals(t *testing.T) {
	s := newTestSession(t, 0)

	assert.Equal(t, "You cannot afford that.\n", run(t, s, "buy 1 1"))

	first, _ := s.State.Market.Cargo(1)
	assert.Equal(t, "Not enough "+first.Name+" available.\n", run(t, s, "buy 1 1000"))
}

func TestHandleBadInput(t *testing.T) {
	s := newTestSession(t, 100)

	tests := []struct {
		line string
		want error
	}{
		{"fly away", ErrUnknownCommand},
		{"buy", ErrBadArgument},
		{"buy one 2", ErrBadArgument},
		{"buy 0 2", ErrBadArgument},
		{"buy 1 -2", ErrBadArgument},
		{"buy 999 1", ErrBadArgument},
		{"sell 1 1", ErrBadArgument},
		{"hire", ErrBadArgument},
		{"dismiss lots", ErrBadArgument},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var out bytes.Buffer
			_, err := s.Handle(tt.line, &out)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHandleCrewAndDay(t *testing.T) {
	s := newTestSession(t, 100)

	assert.Equal(t, "Crew: 5/20.\n", run(t, s, "hire 5"))
	assert.Equal(t, "Crew: 3/20.\n", run(t, s, "dismiss 2"))

	out := run(t, s, "wait")
	assert.Contains(t, out, "Day 2")
	assert.Equal(t, 2, s.Day)
	assert.Equal(t, uint64(97), s.State.Trader.Money())
}

func TestHandleDebt(t *testing.T) {
	s := newTestSession(t, 2)
	run(t, s, "hire 5")

	out := run(t, s, "next")
	assert.Contains(t, out, "in debt")
	assert.Contains(t, out, "IN DEBT")
}

func TestHandleQuitAndBlank(t *testing.T) {
	s := newTestSession(t, 100)
	var out bytes.Buffer

	quit, err := s.Handle("   ", &out)
	require.NoError(t, err)
	assert.False(t, quit)

	quit, err = s.Handle("QUIT", &out)
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Empty(t, out.String())
}

func TestHandleListings(t *testing.T) {
	s := newTestSession(t, 100)

	out := run(t, s, "market")
	assert.Contains(t, out, "MARKET")
	for _, row := range s.State.Market.Listing() {
		assert.Contains(t, out, row.Name)
	}

	assert.Contains(t, run(t, s, "hold"), "The hold is empty.")
	assert.Contains(t, run(t, s, "help"), "buy <index> <amount>")
}

func TestHandleRename(t *testing.T) {
	s := newTestSession(t, 100)

	assert.Equal(t, "The ship is now the Flying Dutchman.\n", run(t, s, "RENAME  Flying   Dutchman"))
	assert.Equal(t, "Flying Dutchman", s.State.Trader.Vessel().Name())
	assert.Contains(t, run(t, s, "status"), "Flying Dutchman")

	_, err := s.Handle("rename", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrBadArgument)
}
