/*
Package game
File: stock.go
Description:
    Stock is the ordered, identity-keyed collection of Goods used for both the
    Market's shelves and a Vessel's hold.

    Entries are stored by value, so nothing outside the Stock can alias them.
    Collection policy: in a hold, an entry whose amount is brought to zero by
    Remove is pruned. A shelf (NewShelf) keeps emptied entries, so the market
    goes on pricing that identity until it restocks. Entries inserted with a
    zero amount stay until the collection is replaced.
*/

package game

// Stock holds at most one entry per Good name.
type Stock struct {
	goods     []Good
	keepEmpty bool
}

// NewStock builds a pruning Stock from goods, merging duplicate names in order.
func NewStock(goods ...Good) *Stock {
	s := &Stock{}
	s.merge(goods)
	return s
}

// NewShelf is NewStock for a market: emptied entries are kept.
func NewShelf(goods ...Good) *Stock {
	s := &Stock{keepEmpty: true}
	s.merge(goods)
	return s
}

func (s *Stock) merge(goods []Good) {
	for _, g := range goods {
		if i := s.index(g.Name); i >= 0 {
			s.goods[i].Grow(g.Amount)
			continue
		}
		s.goods = append(s.goods, g)
	}
}

func (s *Stock) index(name string) int {
	for i := range s.goods {
		if s.goods[i].Name == name {
			return i
		}
	}
	return -1
}

// Find returns a copy of the entry with the given name.
func (s *Stock) Find(name string) (Good, bool) {
	if i := s.index(name); i >= 0 {
		return s.goods[i], true
	}
	return Good{}, false
}

// AmountOf returns how many units of name are held (0 if absent).
func (s *Stock) AmountOf(name string) uint64 {
	if i := s.index(name); i >= 0 {
		return s.goods[i].Amount
	}
	return 0
}

// Add merges amount units of good into the stock. An existing entry keeps its
// own trait and base price; otherwise a copy of good is inserted.
func (s *Stock) Add(good Good, amount uint64) {
	if amount == 0 {
		return
	}
	if i := s.index(good.Name); i >= 0 {
		s.goods[i].Grow(amount)
		return
	}
	s.goods = append(s.goods, good.WithAmount(amount))
}

// Remove takes amount units of name out of the stock. It reports false and
// changes nothing when the entry is missing or too small; callers are
// expected to validate first.
func (s *Stock) Remove(name string, amount uint64) bool {
	i := s.index(name)
	if i < 0 || s.goods[i].Amount < amount {
		return false
	}
	if amount == 0 {
		return true
	}
	s.goods[i].Shrink(amount)
	if s.goods[i].Amount == 0 && !s.keepEmpty {
		s.goods = append(s.goods[:i], s.goods[i+1:]...)
	}
	return true
}

// Len is the number of entries.
func (s *Stock) Len() int { return len(s.goods) }

// At returns a copy of the i-th entry (0-based).
func (s *Stock) At(i int) (Good, bool) {
	if i < 0 || i >= len(s.goods) {
		return Good{}, false
	}
	return s.goods[i], true
}

// Goods returns a copy of all entries in order.
func (s *Stock) Goods() []Good {
	out := make([]Good, len(s.goods))
	copy(out, s.goods)
	return out
}

// Occupied sums the amounts of every entry.
func (s *Stock) Occupied() uint64 {
	var total uint64
	for _, g := range s.goods {
		total = saturatingAdd(total, g.Amount)
	}
	return total
}

// replace swaps in a freshly generated set of goods.
func (s *Stock) replace(goods []Good) {
	s.goods = goods
}

// transform rewrites every entry in place.
func (s *Stock) transform(fn func(Good) Good) {
	for i := range s.goods {
		s.goods[i] = fn(s.goods[i])
	}
}
