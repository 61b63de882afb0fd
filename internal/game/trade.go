/*
Package game
File: trade.go
Description:
    Pricing and the two trade operations.
    Every check runs before any state changes, so a refused trade leaves the
    Market, the Trader's money and the hold exactly as they were. Goods never
    change hands as the same value: each side gets its own copy.
*/

package game

import (
	"log/slog"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Response is the outcome of a trade. The refusals are ordinary game events,
// not errors.
type Response int

const (
	Done Response = iota
	InsufficientFunds
	InsufficientStock
	InsufficientCargoSpace
)

func (r Response) String() string {
	switch r {
	case Done:
		return "done"
	case InsufficientFunds:
		return "insufficient funds"
	case InsufficientStock:
		return "insufficient stock"
	case InsufficientCargoSpace:
		return "insufficient cargo space"
	}
	return "unknown response"
}

var two = decimal.NewFromInt(2)

// BuyPrice is what the market charges per unit of g: the sale price marked up
// by the threshold rule, truncated.
func (m *Market) BuyPrice(g Good) uint64 {
	price := g.Price()
	multiplier := m.pricing.Above
	if price <= m.pricing.Threshold {
		multiplier = m.pricing.Below
	}
	return toUint(decimalFromUint(price).Mul(multiplier).Floor())
}

// Quote is the per-unit price pair shown for a shelf entry.
type Quote struct {
	BuyPrice  uint64 `json:"buy_price"`
	SellPrice uint64 `json:"sell_price"`
}

// Quote prices the shelf entry called name. The sell side is the market's own
// price, before any staleness discount on what is actually sold.
func (m *Market) Quote(name string) (Quote, bool) {
	g, ok := m.stock.Find(name)
	if !ok {
		return Quote{}, false
	}
	return m.quote(g), true
}

func (m *Market) quote(g Good) Quote {
	return Quote{BuyPrice: m.BuyPrice(g), SellPrice: g.Price()}
}

// SellPrice is what the market pays per unit for held, before rounding the total.
func (m *Market) SellPrice(held Good) decimal.Decimal {
	stocked, ok := m.stock.Find(held.Name)
	if !ok {
		return decimalFromUint(held.Price())
	}

	marketPrice := decimalFromUint(stocked.Price())
	if !held.Decays() || !stocked.Decays() || held.Trait.Category() != stocked.Trait.Category() {
		return marketPrice
	}

	marketStat, soldStat := stocked.Trait.Stat(), held.Trait.Stat()
	if soldStat >= marketStat {
		return marketPrice
	}
	// Staler than the shelf: marketPrice * (marketStat + soldStat) / (2 * marketStat)
	num := decimalFromUint(marketStat).Add(decimalFromUint(soldStat))
	den := decimalFromUint(marketStat).Mul(two)
	return marketPrice.Mul(num).Div(den)
}

// Buy sells amount units of name to t.
func (m *Market) Buy(name string, amount uint64, t *Trader) Response {
	// A missing entry reads as zero units on the shelf.
	g, _ := m.stock.Find(name)
	price := saturatingMul(m.BuyPrice(g), amount)

	if g.Amount < amount {
		return InsufficientStock
	} else if t.Money() < price {
		return InsufficientFunds
	} else if t.AvailableSpace() < amount {
		return InsufficientCargoSpace
	}

	m.stock.Remove(name, amount)
	t.purchaseCargo(g.WithAmount(amount), amount, price)

	slog.Debug("cargo bought", "good", name, "amount", amount, "price", price)
	return Done
}

// Sell buys amount units of name back from t.
func (m *Market) Sell(name string, amount uint64, t *Trader) Response {
	held, _ := t.vessel.Holding(name)
	if held.Amount < amount {
		return InsufficientStock
	}
	if amount == 0 {
		return Done
	}

	unit := m.SellPrice(held)
	price := toUint(unit.Mul(decimalFromUint(amount)).Round(0))

	m.stock.Add(held, amount)
	t.sellCargo(name, amount, price)

	slog.Debug("cargo sold", "good", name, "amount", amount, "price", price)
	return Done
}

func decimalFromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

// toUint converts a whole decimal, saturating at both ends of uint64.
func toUint(d decimal.Decimal) uint64 {
	if d.Sign() <= 0 {
		return 0
	}
	b := d.BigInt()
	if !b.IsUint64() {
		return math.MaxUint64
	}
	return b.Uint64()
}
