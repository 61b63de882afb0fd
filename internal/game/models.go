/*
Package game
File: models.go
Description:
    Defines the configuration structures of the trading economy.
    This file serves as the "schema" for the engine's construction parameters,
    mapping directly to the 'economy.yaml' file.

    Apart from validation, no logic is performed here.
*/

package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every construction-time misconfiguration.
var ErrInvalidConfig = errors.New("invalid economy configuration")

// Economy is the root configuration struct, mapping to the entire 'economy.yaml' file.
type Economy struct {
	Trader TraderConfig `yaml:"trader" json:"trader"`
	Vessel VesselConfig `yaml:"vessel" json:"vessel"`
	Market MarketConfig `yaml:"market" json:"market"`
}

// TraderConfig holds the player's opening balance.
type TraderConfig struct {
	StartingMoney uint64 `yaml:"starting_money" json:"starting_money"` // Credits on a fresh start
}

// VesselConfig describes the player's ship.
type VesselConfig struct {
	Name            string      `yaml:"name" json:"name"`                           // Display name
	Capacity        uint64      `yaml:"capacity" json:"capacity"`                   // Max units of cargo in the hold
	MaxCrew         uint64      `yaml:"max_crew" json:"max_crew"`                   // Crew ceiling for hiring
	Speed           uint64      `yaml:"speed" json:"speed"`                         // Informational; no travel in this engine
	SalaryPerWorker uint64      `yaml:"salary_per_worker" json:"salary_per_worker"` // Wage per crew member per day
	Aging           AgingPolicy `yaml:"aging" json:"aging"`                         // Daily stat loss per category
}

// AgingPolicy is how much each category's stat drops per day in a hold.
// The default economy only rots perishables.
type AgingPolicy struct {
	Perishable uint64 `yaml:"perishable" json:"perishable"`
	Alcohol    uint64 `yaml:"alcohol" json:"alcohol"`
	Artifact   uint64 `yaml:"artifact" json:"artifact"`
}

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min uint64 `yaml:"min" json:"min"`
	Max uint64 `yaml:"max" json:"max"`
}

// FloatRange is a half-open real interval [Min, Max). Min == Max pins the value.
type FloatRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// CategoryConfig drives generation of one shelf section.
type CategoryConfig struct {
	Names     []string `yaml:"names" json:"names"`           // Name pool sampled without replacement
	Amount    IntRange `yaml:"amount" json:"amount"`         // Units per entry
	BasePrice IntRange `yaml:"base_price" json:"base_price"` // Base price per unit
	Stat      IntRange `yaml:"stat" json:"stat"`             // Days to rot / ABV; ignored for artifacts
}

// MarketConfig sets shelf generation and the pricing model.
type MarketConfig struct {
	SectionSize     int        `yaml:"section_size" json:"section_size"`         // Entries per category
	PriceThreshold  IntRange   `yaml:"price_threshold" json:"price_threshold"`   // Cheap/expensive cut-off
	BelowMultiplier FloatRange `yaml:"below_multiplier" json:"below_multiplier"` // Markup at or under the threshold
	AboveMultiplier FloatRange `yaml:"above_multiplier" json:"above_multiplier"` // Markup over the threshold

	Perishables CategoryConfig `yaml:"perishables" json:"perishables"`
	Alcohols    CategoryConfig `yaml:"alcohols" json:"alcohols"`
	Artifacts   CategoryConfig `yaml:"artifacts" json:"artifacts"`
}

// Validate checks the whole economy.
func (e Economy) Validate() error {
	if err := e.Vessel.Validate(); err != nil {
		return err
	}
	return e.Market.Validate()
}

// Validate checks the vessel parameters.
func (v VesselConfig) Validate() error {
	if v.Capacity == 0 {
		return fmt.Errorf("%w: vessel capacity must be positive", ErrInvalidConfig)
	}
	return nil
}

// Validate checks ranges, multipliers and the name pools.
func (m MarketConfig) Validate() error {
	if m.SectionSize <= 0 {
		return fmt.Errorf("%w: section_size must be positive, got %d", ErrInvalidConfig, m.SectionSize)
	}
	if err := m.PriceThreshold.validate("price_threshold"); err != nil {
		return err
	}
	if err := m.BelowMultiplier.validateMultiplier("below_multiplier"); err != nil {
		return err
	}
	if err := m.AboveMultiplier.validateMultiplier("above_multiplier"); err != nil {
		return err
	}

	seen := make(map[string]string)
	sections := []struct {
		label string
		cfg   CategoryConfig
	}{
		{"perishables", m.Perishables},
		{"alcohols", m.Alcohols},
		{"artifacts", m.Artifacts},
	}
	for _, sec := range sections {
		if len(sec.cfg.Names) < m.SectionSize {
			return fmt.Errorf("%w: %s has %d names, section_size is %d",
				ErrInvalidConfig, sec.label, len(sec.cfg.Names), m.SectionSize)
		}
		for _, name := range sec.cfg.Names {
			if name == "" {
				return fmt.Errorf("%w: %s contains an empty name", ErrInvalidConfig, sec.label)
			}
			// Identity is the name, so pools must not overlap.
			if other, dup := seen[name]; dup {
				return fmt.Errorf("%w: name %q appears in %s and %s", ErrInvalidConfig, name, other, sec.label)
			}
			seen[name] = sec.label
		}
		if err := sec.cfg.Amount.validate(sec.label + ".amount"); err != nil {
			return err
		}
		if err := sec.cfg.BasePrice.validate(sec.label + ".base_price"); err != nil {
			return err
		}
		if err := sec.cfg.Stat.validate(sec.label + ".stat"); err != nil {
			return err
		}
	}

	// A perishable drawn with 0 days is rotten on arrival and worth nothing.
	if m.Perishables.Stat.Min == 0 {
		return fmt.Errorf("%w: perishables.stat min must be at least 1 day", ErrInvalidConfig)
	}
	if m.Alcohols.Stat.Max == 0 {
		return fmt.Errorf("%w: alcohols.stat must allow a positive ABV", ErrInvalidConfig)
	}
	return nil
}

func (r IntRange) validate(field string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: %s min %d exceeds max %d", ErrInvalidConfig, field, r.Min, r.Max)
	}
	return nil
}

func (r FloatRange) validateMultiplier(field string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: %s min %g exceeds max %g", ErrInvalidConfig, field, r.Min, r.Max)
	}
	if r.Min < 1.0 || r.Max > 2.0 || r.Min >= 2.0 {
		return fmt.Errorf("%w: %s must lie in [1.0, 2.0), got [%g, %g)", ErrInvalidConfig, field, r.Min, r.Max)
	}
	return nil
}
