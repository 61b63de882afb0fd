/*
Package game
File: state.go
Description:
    Manages the runtime state of one session.
    It wires the Clock, the Market and the Trader (with its Vessel) together
    in the order the day must run: the Market restocks first, then the Vessel
    pays its crew and ages the hold.
*/

package game

import (
	"math/rand/v2"
)

// State is one running session. Day counting belongs to the driver.
type State struct {
	Clock  *Clock
	Market *Market
	Trader *Trader
}

// NewState builds a session from eco. The seed drives all market randomness,
// so two sessions with the same seed and the same moves play out identically.
func NewState(eco Economy, seed uint64) (*State, error) {
	if err := eco.Validate(); err != nil {
		return nil, err
	}

	clock := NewClock()

	// Subscription order is day order: Market before Vessel.
	market, err := NewMarket(eco.Market, clock, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return nil, err
	}
	trader, err := NewTrader(eco.Trader, eco.Vessel, clock)
	if err != nil {
		return nil, err
	}

	return &State{Clock: clock, Market: market, Trader: trader}, nil
}

// NextDay advances the simulation by one tick.
func (s *State) NextDay() {
	s.Clock.Tick()
}
