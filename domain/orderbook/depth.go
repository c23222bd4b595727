package orderbook

// DepthLevel is one aggregated row of a depth snapshot: the level price and
// the summed remaining quantity of every order resting there.
type DepthLevel struct {
	Price int64
	Qty   int64
}

// DepthSnapshot is a point-in-time top-N view of both sides, best-first.
// It never exposes order identities or ownership.
type DepthSnapshot struct {
	Bids []DepthLevel
	Asks []DepthLevel
}

// Depth aggregates the first n levels of each side. Fewer than n levels
// returns all available. Callers serialize against mutations.
func (b *OrderBook) Depth(n int) DepthSnapshot {
	if n <= 0 {
		return DepthSnapshot{}
	}

	collect := func(s *BookSide) []DepthLevel {
		out := make([]DepthLevel, 0, n)
		s.Walk(func(lvl *PriceLevel) bool {
			out = append(out, DepthLevel{Price: lvl.Price, Qty: lvl.TotalQty})
			return len(out) < n
		})
		return out
	}

	return DepthSnapshot{
		Bids: collect(b.Bids),
		Asks: collect(b.Asks),
	}
}
