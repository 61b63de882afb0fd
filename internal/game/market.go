/*
Package game
File: market.go
Description:
    The Market owns the shelves and the pricing model.
    This includes:
    1. Defining the market's economy (price threshold and markups) once, at construction.
    2. Generating a fresh stock from the three category name pools.
    3. Regenerating that stock every day (the Market subscribes to the Clock).

    Buying and selling live in trade.go.
*/

package game

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing is the market's economy: goods priced at or under Threshold are
// marked up by Below, the rest by Above.
type Pricing struct {
	Threshold uint64
	Below     decimal.Decimal
	Above     decimal.Decimal
}

// MarketRow is one line of the market listing. Index is 1-based.
type MarketRow struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stat      string `json:"stat"`
	Amount    uint64 `json:"amount"`
	BuyPrice  uint64 `json:"buy_price"`
	SellPrice uint64 `json:"sell_price"`
}

// Market is a single trading post.
type Market struct {
	cfg     MarketConfig
	pricing Pricing
	stock   *Stock
	rng     *rand.Rand
}

// NewMarket defines the market economy, generates the first stock and
// subscribes to clock. rng is the market's only source of randomness; a nil
// rng gets a time-seeded one.
func NewMarket(cfg MarketConfig, clock *Clock, rng *rand.Rand) (*Market, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	m := &Market{
		cfg:   cfg,
		stock: NewShelf(),
		rng:   rng,
	}
	m.defineEconomy()
	m.generateStock()

	if clock != nil {
		clock.Subscribe(m)
	}
	return m, nil
}

// Pricing returns the economy drawn at construction.
func (m *Market) Pricing() Pricing { return m.pricing }

// Stock returns a copy of the shelves in listing order.
func (m *Market) Stock() []Good { return m.stock.Goods() }

// Find returns the shelf entry named name.
func (m *Market) Find(name string) (Good, bool) { return m.stock.Find(name) }

// Cargo returns the entry at a 1-based listing index.
func (m *Market) Cargo(index int) (Good, bool) { return m.stock.At(index - 1) }

// Listing is the read-only market table.
func (m *Market) Listing() []MarketRow {
	goods := m.stock.Goods()
	rows := make([]MarketRow, len(goods))
	for i, g := range goods {
		q := m.quote(g)
		rows[i] = MarketRow{
			Index:     i + 1,
			Name:      g.Name,
			Category:  g.Trait.Category().String(),
			Stat:      g.StatLabel(),
			Amount:    g.Amount,
			BuyPrice:  q.BuyPrice,
			SellPrice: q.SellPrice,
		}
	}
	return rows
}

// OnTick throws away the old shelves and stocks new ones.
func (m *Market) OnTick() {
	m.generateStock()
	slog.Debug("market restocked", "entries", m.stock.Len())
}

// defineEconomy draws the threshold and the two markups.
func (m *Market) defineEconomy() {
	m.pricing = Pricing{
		Threshold: m.intIn(m.cfg.PriceThreshold),
		Below:     decimal.NewFromFloat(m.floatIn(m.cfg.BelowMultiplier)),
		Above:     decimal.NewFromFloat(m.floatIn(m.cfg.AboveMultiplier)),
	}
	slog.Debug("market economy defined",
		"threshold", m.pricing.Threshold,
		"below", m.pricing.Below.String(),
		"above", m.pricing.Above.String(),
	)
}

// generateStock replaces the whole stock. Each section samples names without
// replacement, so identities are unique within the new stock.
func (m *Market) generateStock() {
	goods := make([]Good, 0, 3*m.cfg.SectionSize)

	goods = m.generateSection(goods, m.cfg.Perishables, func(stat uint64) Trait {
		return Perishable{DaysToRot: stat}
	})
	goods = m.generateSection(goods, m.cfg.Alcohols, func(stat uint64) Trait {
		return Alcohol{ABV: stat}
	})
	goods = m.generateSection(goods, m.cfg.Artifacts, func(uint64) Trait {
		return Artifact{Rarity: Rarity(m.rng.IntN(rarityCount))}
	})

	m.stock.replace(goods)
}

func (m *Market) generateSection(goods []Good, cfg CategoryConfig, trait func(stat uint64) Trait) []Good {
	picks := m.rng.Perm(len(cfg.Names))[:m.cfg.SectionSize]
	for _, idx := range picks {
		amount := m.intIn(cfg.Amount)
		basePrice := m.intIn(cfg.BasePrice)
		stat := m.intIn(cfg.Stat)
		goods = append(goods, Good{
			Name:      cfg.Names[idx],
			Amount:    amount,
			BasePrice: basePrice,
			Trait:     trait(stat),
		})
	}
	return goods
}

// intIn draws uniformly from the inclusive range.
func (m *Market) intIn(r IntRange) uint64 {
	span := r.Max - r.Min
	if span == math.MaxUint64 {
		return m.rng.Uint64()
	}
	return r.Min + m.rng.Uint64N(span+1)
}

// floatIn draws uniformly from [Min, Max); a pinned range returns Min.
func (m *Market) floatIn(r FloatRange) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + m.rng.Float64()*(r.Max-r.Min)
}
