/*
Package game
File: goods.go
Description:
    Defines the tradable Good and its category variant (Trait).
    A Good's identity is its Name. Amount is the only field that trades mutate;
    the category stat (freshness, ABV, rarity) is fixed when the Good is created.

    All category-dependent rules (sale price, aging, sell discount eligibility,
    display suffix) are a type switch over the Trait.
*/

package game

import (
	"fmt"
	"math"
)

// Category tags the three kinds of Good the market deals in.
type Category uint8

const (
	CategoryPerishable Category = iota
	CategoryAlcohol
	CategoryArtifact
)

func (c Category) String() string {
	switch c {
	case CategoryPerishable:
		return "perishable"
	case CategoryAlcohol:
		return "alcohol"
	case CategoryArtifact:
		return "artifact"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Rarity is the artifact tier. It also scales the artifact's sale price.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

// rarityCount is the number of tiers drawn uniformly during generation.
const rarityCount = 4

var rarityNames = [rarityCount]string{"common", "rare", "epic", "legendary"}

// rarityFactor multiplies the base price of an artifact.
var rarityFactor = [rarityCount]uint64{1, 2, 3, 5}

func (r Rarity) String() string {
	if int(r) < rarityCount {
		return rarityNames[r]
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

// Trait is the closed set of category-specific stats.
// Only Perishable, Alcohol and Artifact implement it.
type Trait interface {
	Category() Category
	// Stat is the numeric form of the category stat (days, ABV, tier).
	Stat() uint64
	isTrait()
}

// Perishable goods rot: DaysToRot drops as the hold ages.
type Perishable struct {
	DaysToRot uint64 `json:"days_to_rot"`
}

// Alcohol carries its alcohol-by-volume percentage.
type Alcohol struct {
	ABV uint64 `json:"abv"`
}

// Artifact carries a rarity tier.
type Artifact struct {
	Rarity Rarity `json:"rarity"`
}

func (Perishable) Category() Category { return CategoryPerishable }
func (Alcohol) Category() Category    { return CategoryAlcohol }
func (Artifact) Category() Category   { return CategoryArtifact }

func (p Perishable) Stat() uint64 { return p.DaysToRot }
func (a Alcohol) Stat() uint64    { return a.ABV }
func (a Artifact) Stat() uint64   { return uint64(a.Rarity) }

func (Perishable) isTrait() {}
func (Alcohol) isTrait()    {}
func (Artifact) isTrait()   {}

// Good is one stack of a tradable item.
type Good struct {
	Name      string `json:"name"`
	Amount    uint64 `json:"amount"`
	BasePrice uint64 `json:"base_price"`
	Trait     Trait  `json:"trait"`
}

// SameKind reports whether two goods share an identity. Amount is ignored.
func (g Good) SameKind(other Good) bool {
	return g.Name == other.Name
}

// WithAmount returns a copy of g carrying n units.
// Every transfer between Market and Vessel goes through this copy.
func (g Good) WithAmount(n uint64) Good {
	g.Amount = n
	return g
}

// Grow adds n units, clamping at the top of the range.
func (g *Good) Grow(n uint64) {
	g.Amount = saturatingAdd(g.Amount, n)
}

// Shrink removes n units, clamping at zero.
func (g *Good) Shrink(n uint64) {
	g.Amount = saturatingSub(g.Amount, n)
}

// Price is the Good's current sale price per unit.
func (g Good) Price() uint64 {
	switch t := g.Trait.(type) {
	case Perishable:
		if t.DaysToRot == 0 {
			return 0
		}
		return g.BasePrice
	case Alcohol:
		return g.BasePrice + g.BasePrice*t.ABV/100
	case Artifact:
		if int(t.Rarity) >= rarityCount {
			return g.BasePrice
		}
		return g.BasePrice * rarityFactor[t.Rarity]
	}
	return g.BasePrice
}

// Decays reports whether the category stat reflects condition, which makes
// stale stock eligible for a sell-side discount. Artifacts never qualify.
func (g Good) Decays() bool {
	switch g.Trait.(type) {
	case Perishable, Alcohol:
		return true
	}
	return false
}

// StatLabel is the display suffix for listings.
func (g Good) StatLabel() string {
	switch t := g.Trait.(type) {
	case Perishable:
		if t.DaysToRot == 0 {
			return "rotten"
		}
		if t.DaysToRot == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", t.DaysToRot)
	case Alcohol:
		return fmt.Sprintf("%d%% ABV", t.ABV)
	case Artifact:
		return t.Rarity.String()
	}
	return ""
}

// Aged returns the Good after `days` days in a hold under policy.
func (g Good) Aged(policy AgingPolicy, days uint64) Good {
	switch t := g.Trait.(type) {
	case Perishable:
		t.DaysToRot = saturatingSub(t.DaysToRot, saturatingMul(policy.Perishable, days))
		g.Trait = t
	case Alcohol:
		t.ABV = saturatingSub(t.ABV, saturatingMul(policy.Alcohol, days))
		g.Trait = t
	case Artifact:
		t.Rarity = Rarity(saturatingSub(uint64(t.Rarity), saturatingMul(policy.Artifact, days)))
		g.Trait = t
	}
	return g
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}
