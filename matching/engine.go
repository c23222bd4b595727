package matching

import (
	"sync"

	"hermes/domain/orderbook"
	"hermes/infra/memory"
	"hermes/infra/sequence"
)

// Engine serializes all access to one instrument's book. One operation runs
// to completion, trades included, before the next begins; depth queries join
// the same critical section so they never observe a book mid-mutation.
//
// Engines for different instruments share nothing but the sequencer, so they
// run fully in parallel.
type Engine struct {
	mu         sync.Mutex
	instrument string
	book       *orderbook.OrderBook
	seq        *sequence.Sequencer
	pool       *memory.Pool[orderbook.Order]
}

// Applied reports a completed mutation: the sequence number it was assigned
// (for journaling) and the matching result.
type Applied struct {
	Seq    uint64
	Result orderbook.Result
}

func NewEngine(instrument string, seq *sequence.Sequencer, pool *memory.Pool[orderbook.Order]) *Engine {
	return &Engine{
		instrument: instrument,
		book:       orderbook.NewOrderBook(instrument),
		seq:        seq,
		pool:       pool,
	}
}

func (e *Engine) Instrument() string {
	return e.instrument
}

// Submit runs the full submit algorithm. The seq is drawn inside the critical
// section, so seq order and apply order agree per instrument.
func (e *Engine) Submit(id uint64, clientID string, side orderbook.Side, otype orderbook.OrderType, price, qty int64) (Applied, error) {
	o := e.pool.Get()
	*o = orderbook.Order{
		ID:       id,
		ClientID: clientID,
		Side:     side,
		Type:     otype,
		Price:    price,
		Qty:      qty,
	}

	e.mu.Lock()
	seq := e.seq.Next()
	o.SeqID = seq
	res, err := e.book.Submit(o)
	rested := err == nil && e.book.Contains(id)
	e.mu.Unlock()

	if !rested {
		e.pool.Put(o)
	}
	if err != nil {
		return Applied{}, err
	}
	return Applied{Seq: seq, Result: res}, nil
}

func (e *Engine) Modify(id uint64, clientID string, newPrice, newQty int64, side orderbook.Side) (Applied, error) {
	e.mu.Lock()
	seq := e.seq.Next()
	o := e.book.Resting(id)
	res, err := e.book.Modify(id, clientID, newPrice, newQty, side, seq)
	consumed := err == nil && o != nil && !e.book.Contains(id)
	e.mu.Unlock()

	// A modify to zero, or a resubmit that fully fills, removes the order.
	if consumed {
		e.pool.Put(o)
	}
	if err != nil {
		return Applied{}, err
	}
	return Applied{Seq: seq, Result: res}, nil
}

func (e *Engine) Cancel(id uint64, clientID string) (Applied, error) {
	e.mu.Lock()
	seq := e.seq.Next()
	o, err := e.book.Cancel(id, clientID, seq)
	e.mu.Unlock()

	if err != nil {
		return Applied{}, err
	}
	e.pool.Put(o)
	return Applied{Seq: seq}, nil
}

func (e *Engine) Depth(n int) orderbook.DepthSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Depth(n)
}

func (e *Engine) Contains(id uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Contains(id)
}

// Snapshot runs fn against the book inside the critical section. Used by the
// snapshot writer; fn must not retain the book.
func (e *Engine) Snapshot(fn func(*orderbook.OrderBook)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.book)
}

// Restore feeds recovered resting orders into the book without matching.
// Only called before the engine starts taking traffic.
func (e *Engine) Restore(orders []orderbook.Order) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range orders {
		o := e.pool.Get()
		*o = orders[i]
		e.book.Restore(o)
	}
}

// RestoreTradeSeq resumes the book's trade numbering from a snapshot, so
// post-recovery trades never reuse an exit WAL key.
func (e *Engine) RestoreTradeSeq(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.book.RestoreTradeSeq(seq)
}
