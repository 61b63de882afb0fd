/*
Package game
File: config.go
Description:
    Loads the economy configuration.
    The YAML file is first checked against the embedded JSON schema (shape and
    types), then decoded into Economy and checked semantically (ranges, name
    pools). Any failure is fatal for construction.
*/

package game

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed economy.schema.json
var economySchemaJSON string

var economySchema = jsonschema.MustCompileString("economy.schema.json", economySchemaJSON)

// LoadConfig reads and validates the economy file at path.
func LoadConfig(path string) (Economy, error) {
	// 1. Read the YAML file
	raw, err := os.ReadFile(path)
	if err != nil {
		return Economy{}, fmt.Errorf("read economy config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig validates and decodes an economy document.
func ParseConfig(raw []byte) (Economy, error) {
	// 2. Structural check against the schema
	if err := validateSchema(raw); err != nil {
		return Economy{}, err
	}

	// 3. Decode into the Economy struct
	var eco Economy
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&eco); err != nil {
		return Economy{}, fmt.Errorf("%w: decode: %v", ErrInvalidConfig, err)
	}

	// 4. Semantic checks the schema cannot express
	if err := eco.Validate(); err != nil {
		return Economy{}, err
	}
	return eco, nil
}

// validateSchema runs the document through the embedded JSON schema.
// YAML is normalised through JSON first so numbers arrive as float64.
func validateSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: parse: %v", ErrInvalidConfig, err)
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: normalise: %v", ErrInvalidConfig, err)
	}
	var normalised any
	if err := json.Unmarshal(buf, &normalised); err != nil {
		return fmt.Errorf("%w: normalise: %v", ErrInvalidConfig, err)
	}
	if err := economySchema.Validate(normalised); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// DefaultEconomy is the built-in economy used when no file is supplied.
// It matches the 'economy.yaml' shipped at the repository root.
func DefaultEconomy() Economy {
	return Economy{
		Trader: TraderConfig{StartingMoney: 1000},
		Vessel: VesselConfig{
			Name:            "Black Pearl",
			Capacity:        100,
			MaxCrew:         20,
			Speed:           10,
			SalaryPerWorker: 1,
			Aging:           AgingPolicy{Perishable: 1},
		},
		Market: MarketConfig{
			SectionSize:     5,
			PriceThreshold:  IntRange{Min: 10, Max: 20},
			BelowMultiplier: FloatRange{Min: 1.5, Max: 1.9},
			AboveMultiplier: FloatRange{Min: 1.2, Max: 1.5},
			Perishables: CategoryConfig{
				Names:     []string{"Apple", "Banana", "Mango", "Pineapple", "Coconut", "Orange", "Papaya", "Lime"},
				Amount:    IntRange{Min: 0, Max: 15},
				BasePrice: IntRange{Min: 30, Max: 50},
				Stat:      IntRange{Min: 3, Max: 10},
			},
			Alcohols: CategoryConfig{
				Names:     []string{"Rum", "Vodka", "Whisky", "Gin", "Tequila", "Brandy", "Absinthe", "Mead"},
				Amount:    IntRange{Min: 0, Max: 20},
				BasePrice: IntRange{Min: 100, Max: 200},
				Stat:      IntRange{Min: 5, Max: 70},
			},
			Artifacts: CategoryConfig{
				Names:     []string{"Compass", "Spyglass", "Sextant", "Golden Idol", "Pearl Necklace", "Silk Map", "Jade Statue", "Pocket Watch"},
				Amount:    IntRange{Min: 1, Max: 10},
				BasePrice: IntRange{Min: 30, Max: 100},
			},
		},
	}
}
