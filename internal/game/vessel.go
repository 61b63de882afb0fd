/*
Package game
File: vessel.go
Description:
    The Vessel is the player's ship: a cargo hold and a crew.
    It subscribes to the Clock when built. Each day it pays its crew through
    the wage capability handed over by its owner, then ages the hold.

    The Vessel does not enforce its own capacity; the Market and Trader refuse
    trades that would overfill it.
*/

package game

import (
	"log/slog"

	"github.com/google/uuid"
)

// WageFunc is the owner's capability to pay crew wages.
type WageFunc func(amount uint64)

// HoldRow is one line of the hold listing. Index is 1-based.
type HoldRow struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Amount    uint64 `json:"amount"`
	BasePrice uint64 `json:"base_price"`
}

// Vessel owns the hold and the crew.
type Vessel struct {
	id              uuid.UUID
	name            string
	capacity        uint64
	maxCrew         uint64
	crew            uint64
	speed           uint64
	salaryPerWorker uint64
	aging           AgingPolicy

	hold     *Stock
	payWages WageFunc
}

// NewVessel builds a Vessel and subscribes it to clock.
// payWages may be nil for an unowned ship, in which case wages are skipped.
func NewVessel(cfg VesselConfig, clock *Clock, payWages WageFunc) (*Vessel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := &Vessel{
		id:              uuid.New(),
		name:            cfg.Name,
		capacity:        cfg.Capacity,
		maxCrew:         cfg.MaxCrew,
		speed:           cfg.Speed,
		salaryPerWorker: cfg.SalaryPerWorker,
		aging:           cfg.Aging,
		hold:            NewStock(),
		payWages:        payWages,
	}
	if clock != nil {
		clock.Subscribe(v)
	}
	return v, nil
}

func (v *Vessel) ID() uuid.UUID    { return v.id }
func (v *Vessel) Name() string     { return v.name }
func (v *Vessel) Capacity() uint64 { return v.capacity }
func (v *Vessel) MaxCrew() uint64  { return v.maxCrew }
func (v *Vessel) Crew() uint64     { return v.crew }
func (v *Vessel) Speed() uint64    { return v.speed }
func (v *Vessel) Occupied() uint64 { return v.hold.Occupied() }

// Wage is what one day of the current crew costs.
func (v *Vessel) Wage() uint64 { return saturatingMul(v.crew, v.salaryPerWorker) }

func (v *Vessel) SetName(name string) { v.name = name }

// Hold returns a copy of the cargo in load order.
func (v *Vessel) Hold() []Good { return v.hold.Goods() }

// Cargo returns the entry at a 1-based listing index.
func (v *Vessel) Cargo(index int) (Good, bool) {
	return v.hold.At(index - 1)
}

// Holding returns the held entry named name.
func (v *Vessel) Holding(name string) (Good, bool) {
	return v.hold.Find(name)
}

// HireCrew adds n workers, clamping at MaxCrew.
func (v *Vessel) HireCrew(n uint64) {
	v.crew = saturatingAdd(v.crew, n)
	if v.crew > v.maxCrew {
		v.crew = v.maxCrew
	}
}

// DismissCrew removes n workers, clamping at zero.
func (v *Vessel) DismissCrew(n uint64) {
	v.crew = saturatingSub(v.crew, n)
}

// AdjustCrew hires for positive delta and dismisses for negative delta.
func (v *Vessel) AdjustCrew(delta int64) {
	switch {
	case delta > 0:
		v.HireCrew(uint64(delta))
	case delta < 0:
		// -(delta+1)+1 avoids overflow on math.MinInt64.
		v.DismissCrew(uint64(-(delta + 1)) + 1)
	}
}

// Listing is the read-only hold table.
func (v *Vessel) Listing() []HoldRow {
	goods := v.hold.Goods()
	rows := make([]HoldRow, len(goods))
	for i, g := range goods {
		rows[i] = HoldRow{
			Index:     i + 1,
			Name:      g.Name,
			Amount:    g.Amount,
			BasePrice: g.BasePrice,
		}
	}
	return rows
}

// load and unload are reserved for the Trader, which keeps its space cache in step.
func (v *Vessel) load(g Good, amount uint64) {
	v.hold.Add(g, amount)
}

func (v *Vessel) unload(name string, amount uint64) bool {
	return v.hold.Remove(name, amount)
}

// OnTick pays the crew and ages the hold by one day.
func (v *Vessel) OnTick() {
	wage := v.Wage()
	if v.payWages != nil {
		v.payWages(wage)
		slog.Debug("crew paid", "vessel", v.id, "crew", v.crew, "wage", wage)
	}
	v.hold.transform(func(g Good) Good {
		return g.Aged(v.aging, 1)
	})
}
