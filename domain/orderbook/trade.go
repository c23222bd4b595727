package orderbook

// Trade records one execution between an incoming (taker) order and a
// resting (maker) order. Price is always the maker's limit price.
type Trade struct {
	Instrument string
	MakerID    uint64
	TakerID    uint64
	Price      int64
	Qty        int64
	Seq        uint64
}

// Result is the outcome of a submit or modify, including every trade the
// operation generated, in execution order.
type Result struct {
	Status Status
	Trades []Trade
}
