package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigShippedEconomyMatchesDefault(t *testing.T) {
	eco, err := LoadConfig(filepath.Join("..", "..", "economy.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEconomy(), eco)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultEconomyIsValid(t *testing.T) {
	assert.NoError(t, DefaultEconomy().Validate())
}

const minimalEconomy = `
trader:
  starting_money: 50
vessel:
  capacity: 10
  max_crew: 2
  salary_per_worker: 1
market:
  section_size: 1
  price_threshold: { min: 10, max: 10 }
  below_multiplier: { min: 1.5, max: 1.5 }
  above_multiplier: { min: 1.2, max: 1.2 }
  perishables: { names: [Apple], amount: { min: 1, max: 2 }, base_price: { min: 5, max: 6 }, stat: { min: 1, max: 3 } }
  alcohols: { names: [Rum], amount: { min: 1, max: 2 }, base_price: { min: 5, max: 6 }, stat: { min: 1, max: 3 } }
  artifacts: { names: [Idol], amount: { min: 1, max: 2 }, base_price: { min: 5, max: 6 } }
`

func TestParseConfigMinimal(t *testing.T) {
	eco, err := ParseConfig([]byte(minimalEconomy))
	require.NoError(t, err)

	assert.Equal(t, uint64(50), eco.Trader.StartingMoney)
	assert.Equal(t, uint64(10), eco.Vessel.Capacity)
	assert.Equal(t, AgingPolicy{}, eco.Vessel.Aging)
	assert.Equal(t, []string{"Idol"}, eco.Market.Artifacts.Names)
	assert.Equal(t, FloatRange{Min: 1.2, Max: 1.2}, eco.Market.AboveMultiplier)
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantMsg string
	}{
		{"negative money", "starting_money: 50", "starting_money: -5", "starting_money"},
		{"zero capacity", "capacity: 10", "capacity: 0", "capacity"},
		{"unknown field", "max_crew: 2", "max_crew: 2\n  cannons: 4", "cannons"},
		{"multiplier out of range", "below_multiplier: { min: 1.5, max: 1.5 }", "below_multiplier: { min: 0.5, max: 1.5 }", "below_multiplier"},
		{"reversed range", "price_threshold: { min: 10, max: 10 }", "price_threshold: { min: 20, max: 10 }", "price_threshold"},
		{"section larger than pool", "section_size: 1", "section_size: 2", "section_size"},
		{"overlapping pools", "names: [Idol]", "names: [Rum]", "Rum"},
		{"perishable stat missing", "base_price: { min: 5, max: 6 }, stat: { min: 1, max: 3 }", "base_price: { min: 5, max: 6 }", "stat"},
		{"perishables rotten on arrival", "stat: { min: 1, max: 3 }", "stat: { min: 0, max: 3 }", "stat"},
		{"alcohol stat missing", "alcohols: { names: [Rum], amount: { min: 1, max: 2 }, base_price: { min: 5, max: 6 }, stat: { min: 1, max: 3 } }", "alcohols: { names: [Rum], amount: { min: 1, max: 2 }, base_price: { min: 5, max: 6 } }", "stat"},
		{"missing market", "market:", "bazaar:", ""},
		{"not yaml", "trader:", "trader: [", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(minimalEconomy, tt.old, tt.new, 1)
			require.NotEqual(t, minimalEconomy, doc)

			_, err := ParseConfig([]byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMarketConfigValidateMultiplierBounds(t *testing.T) {
	cfg := testEconomy().Market

	cfg.AboveMultiplier = FloatRange{Min: 2.0, Max: 2.0}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.AboveMultiplier = FloatRange{Min: 1.0, Max: 2.0}
	assert.NoError(t, cfg.Validate())
}

func TestMarketConfigValidateStats(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MarketConfig)
		wantErr bool
	}{
		{"defaults", func(*MarketConfig) {}, false},
		{"perishables without stat", func(c *MarketConfig) { c.Perishables.Stat = IntRange{} }, true},
		{"perishables may start at one day", func(c *MarketConfig) { c.Perishables.Stat = IntRange{Min: 1, Max: 1} }, false},
		{"alcohols without stat", func(c *MarketConfig) { c.Alcohols.Stat = IntRange{} }, true},
		{"alcohols may include 0% ABV", func(c *MarketConfig) { c.Alcohols.Stat = IntRange{Min: 0, Max: 5} }, false},
		{"artifacts need no stat", func(c *MarketConfig) { c.Artifacts.Stat = IntRange{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testEconomy().Market
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), "stat")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
