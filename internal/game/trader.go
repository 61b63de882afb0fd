/*
Package game
File: trader.go
Description:
    The Trader is the player: it owns exactly one Vessel, holds the money and
    mediates every purchase and sale.

    Money is unsigned. When wages exceed the balance the balance jumps to the
    maximum uint64 instead of going negative; callers read that as debt
    (see InDebt). availableSpace is a cache of capacity minus occupied space,
    recomputed after every hold change.
*/

package game

import (
	"log/slog"
	"math"
)

// Trader is the player.
type Trader struct {
	money          uint64
	vessel         *Vessel
	availableSpace uint64
}

// NewTrader builds the player and its ship. The Vessel is created here so it
// can be handed the Trader's wage capability at construction.
func NewTrader(cfg TraderConfig, vessel VesselConfig, clock *Clock) (*Trader, error) {
	t := &Trader{money: cfg.StartingMoney}
	v, err := NewVessel(vessel, clock, t.payCrew)
	if err != nil {
		return nil, err
	}
	t.vessel = v
	t.availableSpace = t.countAvailableSpace()
	return t, nil
}

func (t *Trader) Money() uint64          { return t.money }
func (t *Trader) AvailableSpace() uint64 { return t.availableSpace }
func (t *Trader) Speed() uint64          { return t.vessel.Speed() }

// Vessel exposes the ship for reads and crew management.
func (t *Trader) Vessel() *Vessel { return t.vessel }

// InDebt reports the saturated "could not pay" balance.
func (t *Trader) InDebt() bool { return t.money == math.MaxUint64 }

// HeldAmount is how many units of name are in the hold.
func (t *Trader) HeldAmount(name string) uint64 {
	return t.vessel.hold.AmountOf(name)
}

// Buy purchases amount units of name from m.
func (t *Trader) Buy(m *Market, name string, amount uint64) Response {
	return m.Buy(name, amount, t)
}

// Sell sells amount units of name to m.
func (t *Trader) Sell(m *Market, name string, amount uint64) Response {
	return m.Sell(name, amount, t)
}

// payCrew is the wage capability passed to the Vessel.
func (t *Trader) payCrew(amount uint64) {
	if amount > t.money {
		slog.Warn("wages exceed balance, balance saturated", "wage", amount, "money", t.money)
		t.money = math.MaxUint64
		return
	}
	t.money -= amount
}

func (t *Trader) countAvailableSpace() uint64 {
	return saturatingSub(t.vessel.Capacity(), t.vessel.Occupied())
}

// purchaseCargo is called by the Market once every check has passed.
func (t *Trader) purchaseCargo(g Good, amount, price uint64) {
	t.vessel.load(g, amount)
	t.money = saturatingSub(t.money, price)
	t.availableSpace = t.countAvailableSpace()
}

// sellCargo is called by the Market once every check has passed.
func (t *Trader) sellCargo(name string, amount, price uint64) {
	t.vessel.unload(name, amount)
	t.money = saturatingAdd(t.money, price)
	t.availableSpace = t.countAvailableSpace()
}
