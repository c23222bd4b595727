package orderbook

import "sync/atomic"

// OrderBook is the matching core for one instrument. It is single-writer and
// deterministic: callers serialize access (see matching.Engine) and the book
// never blocks.
//
// The orders map is the order index: an id is present iff the order rests in
// one of the two sides. It is kept in lockstep with the level queues and is
// never a second source of truth.
type OrderBook struct {
	Instrument string

	Bids *BookSide
	Asks *BookSide

	orders   map[uint64]*Order
	tradeSeq uint64

	LastSeq atomic.Uint64
}

func NewOrderBook(instrument string) *OrderBook {
	return &OrderBook{
		Instrument: instrument,
		Bids:       NewBookSide(Bid),
		Asks:       NewBookSide(Ask),
		orders:     make(map[uint64]*Order),
	}
}

func (b *OrderBook) sideFor(s Side) *BookSide {
	if s == Bid {
		return b.Bids
	}
	return b.Asks
}

// Submit validates and matches an incoming order, resting any remainder if
// the order type allows it. o.SeqID must be set by the caller; it becomes the
// order's time priority if it rests. On error no state changes.
func (b *OrderBook) Submit(o *Order) (Result, error) {
	if o.Qty <= 0 {
		return Result{Status: Rejected}, ErrInvalidQuantity
	}
	if o.Type != Market && o.Price <= 0 {
		return Result{Status: Rejected}, ErrInvalidPrice
	}
	if _, exists := b.orders[o.ID]; exists {
		return Result{Status: Rejected}, ErrDuplicateOrder
	}

	if o.Type == FillOrKill && !b.canFullyFill(o.Side, o.Price, o.Remaining()) {
		return Result{Status: Rejected}, nil
	}

	b.LastSeq.Store(o.SeqID)

	res := Result{Trades: b.match(o)}

	rested := false
	if o.Remaining() > 0 && o.Type == GoodTillCancel {
		lvl := b.sideFor(o.Side).GetOrCreate(o.Price)
		lvl.Enqueue(o)
		b.orders[o.ID] = o
		rested = true
	}

	switch {
	case len(res.Trades) == 0 && rested:
		res.Status = Accepted
	case o.Remaining() == 0:
		res.Status = Filled
	case len(res.Trades) > 0:
		res.Status = PartiallyFilled
	default:
		// FillAndKill or Market that crossed nothing.
		res.Status = Rejected
	}
	return res, nil
}

// match consumes crossing levels on the opposite side in price-time order.
func (b *OrderBook) match(o *Order) []Trade {
	opp := b.sideFor(o.Side.Opposite())

	var trades []Trade
	for o.Remaining() > 0 {
		best := opp.Best()
		if best == nil {
			break
		}
		if o.Type != Market && !opp.Crosses(best.Price, o.Price) {
			break
		}

		head := best.Head()
		executed := min(o.Remaining(), head.Remaining())

		o.Filled += executed
		head.Filled += executed
		best.TotalQty -= executed

		b.tradeSeq++
		trades = append(trades, Trade{
			Instrument: b.Instrument,
			MakerID:    head.ID,
			TakerID:    o.ID,
			Price:      best.Price,
			Qty:        executed,
			Seq:        b.tradeSeq,
		})

		if head.Remaining() == 0 {
			best.PopHead()
			delete(b.orders, head.ID)
			if best.Empty() {
				opp.RemoveLevel(best.Price)
			}
		}
	}
	return trades
}

// Modify applies the fairness rule: a pure quantity reduction at the same
// price keeps queue position; any price change, or a quantity above the
// remaining, re-enters through Submit with seq as the fresh time priority.
func (b *OrderBook) Modify(id uint64, clientID string, newPrice, newQty int64, side Side, seq uint64) (Result, error) {
	o, ok := b.orders[id]
	if !ok {
		return Result{Status: Rejected}, ErrOrderNotFound
	}
	if o.ClientID != clientID {
		return Result{Status: Rejected}, ErrUnauthorized
	}
	if side != o.Side {
		return Result{Status: Rejected}, ErrSideMismatch
	}
	if newPrice <= 0 {
		return Result{Status: Rejected}, ErrInvalidPrice
	}
	if newQty < 0 {
		return Result{Status: Rejected}, ErrInvalidQuantity
	}

	b.LastSeq.Store(seq)

	if newQty == 0 {
		b.removeResting(o)
		return Result{Status: Modified}, nil
	}

	if newPrice == o.Price && newQty <= o.Remaining() {
		delta := o.Remaining() - newQty
		o.Qty -= delta
		o.level.TotalQty -= delta
		return Result{Status: Modified}, nil
	}

	b.removeResting(o)
	o.Price = newPrice
	o.Qty = newQty
	o.Filled = 0
	o.SeqID = seq

	res, err := b.Submit(o)
	if err == nil && res.Status == Accepted {
		// Re-rested without trading; the caller sees a modify, not a fresh order.
		res.Status = Modified
	}
	return res, err
}

// Cancel removes a resting order. Missing ids are reported, not fatal.
func (b *OrderBook) Cancel(id uint64, clientID string, seq uint64) (*Order, error) {
	o, ok := b.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if o.ClientID != clientID {
		return nil, ErrUnauthorized
	}

	b.LastSeq.Store(seq)
	b.removeResting(o)
	return o, nil
}

func (b *OrderBook) removeResting(o *Order) {
	side := b.sideFor(o.Side)
	lvl := o.level
	lvl.Remove(o)
	if lvl.Empty() {
		side.RemoveLevel(lvl.Price)
	}
	delete(b.orders, o.ID)
}

// canFullyFill walks crossing levels summing their quantity; used for
// fill-or-kill admission.
func (b *OrderBook) canFullyFill(side Side, price, qty int64) bool {
	opp := b.sideFor(side.Opposite())

	available := int64(0)
	opp.Walk(func(lvl *PriceLevel) bool {
		if !opp.Crosses(lvl.Price, price) {
			return false
		}
		available += lvl.TotalQty
		return available < qty
	})
	return available >= qty
}

// Restore inserts a previously resting order without matching, preserving its
// original time priority. Callers feed orders in SeqID order so each level's
// FIFO comes back intact. Used only by snapshot recovery.
func (b *OrderBook) Restore(o *Order) {
	lvl := b.sideFor(o.Side).GetOrCreate(o.Price)
	lvl.Enqueue(o)
	b.orders[o.ID] = o
	if o.SeqID > b.LastSeq.Load() {
		b.LastSeq.Store(o.SeqID)
	}
}

// Resting returns the resting order for id, or nil.
func (b *OrderBook) Resting(id uint64) *Order {
	return b.orders[id]
}

// TradeSeq is the sequence of the last trade this book generated.
func (b *OrderBook) TradeSeq() uint64 {
	return b.tradeSeq
}

// RestoreTradeSeq resumes trade numbering after recovery. Only moves forward.
func (b *OrderBook) RestoreTradeSeq(seq uint64) {
	if seq > b.tradeSeq {
		b.tradeSeq = seq
	}
}

func (b *OrderBook) Contains(id uint64) bool {
	_, ok := b.orders[id]
	return ok
}

// Size is the number of resting orders across both sides.
func (b *OrderBook) Size() int {
	return len(b.orders)
}

// RestingWalk visits every resting order, bids then asks, levels best-first,
// each level in time priority.
func (b *OrderBook) RestingWalk(fn func(*Order)) {
	walk := func(s *BookSide) {
		s.Walk(func(lvl *PriceLevel) bool {
			for o := lvl.Head(); o != nil; o = o.Next() {
				fn(o)
			}
			return true
		})
	}
	walk(b.Bids)
	walk(b.Asks)
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
