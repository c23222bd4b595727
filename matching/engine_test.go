package matching

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/domain/orderbook"
	"hermes/infra/memory"
	"hermes/infra/sequence"
)

func newTestEngine() *Engine {
	seq := sequence.New(0)
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	return NewEngine("AAPL", seq, pool)
}

func TestEngineSubmitAssignsSeq(t *testing.T) {
	e := newTestEngine()

	ap, err := e.Submit(1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ap.Seq)
	assert.Equal(t, orderbook.Accepted, ap.Result.Status)

	ap, err = e.Submit(2, "c1", orderbook.Ask, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ap.Seq)
	assert.Equal(t, orderbook.Filled, ap.Result.Status)
	assert.Len(t, ap.Result.Trades, 1)
}

func TestEngineDuplicateSubmit(t *testing.T) {
	e := newTestEngine()

	_, err := e.Submit(1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)

	_, err = e.Submit(1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 101, 10)
	assert.ErrorIs(t, err, orderbook.ErrDuplicateOrder)
	assert.True(t, e.Contains(1))
}

func TestEngineModifyAndCancel(t *testing.T) {
	e := newTestEngine()

	_, err := e.Submit(1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)

	ap, err := e.Modify(1, "c1", 99, 5, orderbook.Bid)
	require.NoError(t, err)
	assert.Equal(t, orderbook.Modified, ap.Result.Status)

	d := e.Depth(1)
	require.Len(t, d.Bids, 1)
	assert.Equal(t, int64(99), d.Bids[0].Price)
	assert.Equal(t, int64(5), d.Bids[0].Qty)

	_, err = e.Cancel(1, "c1")
	require.NoError(t, err)
	assert.False(t, e.Contains(1))

	_, err = e.Cancel(1, "c1")
	assert.ErrorIs(t, err, orderbook.ErrOrderNotFound)
}

func TestEngineModifyRecyclesRemovedOrder(t *testing.T) {
	allocs := 0
	pool := memory.NewPool(func() *orderbook.Order {
		allocs++
		return &orderbook.Order{}
	})
	e := NewEngine("AAPL", sequence.New(0), pool)

	_, err := e.Submit(1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	require.Equal(t, 1, allocs)

	// Modify to zero removes the order; its struct goes back to the pool
	// and the next submit reuses it.
	_, err = e.Modify(1, "c1", 100, 0, orderbook.Bid)
	require.NoError(t, err)
	_, err = e.Submit(2, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, allocs)

	// A reprice that fully fills consumes the order the same way.
	_, err = e.Submit(3, "c2", orderbook.Ask, orderbook.GoodTillCancel, 105, 10)
	require.NoError(t, err)
	ap, err := e.Modify(2, "c1", 105, 10, orderbook.Bid)
	require.NoError(t, err)
	assert.Equal(t, orderbook.Filled, ap.Result.Status)
	assert.False(t, e.Contains(2))

	_, err = e.Submit(4, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, allocs)
}

func TestEngineRestore(t *testing.T) {
	e := newTestEngine()

	e.Restore([]orderbook.Order{
		{ID: 1, ClientID: "c1", Side: orderbook.Bid, Type: orderbook.GoodTillCancel, Price: 100, Qty: 10, SeqID: 5},
		{ID: 2, ClientID: "c1", Side: orderbook.Ask, Type: orderbook.GoodTillCancel, Price: 105, Qty: 3, SeqID: 6},
	})

	assert.True(t, e.Contains(1))
	assert.True(t, e.Contains(2))

	d := e.Depth(10)
	require.Len(t, d.Bids, 1)
	require.Len(t, d.Asks, 1)
	assert.Equal(t, int64(10), d.Bids[0].Qty)
}

func TestEngineConcurrentSubmits(t *testing.T) {
	e := newTestEngine()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := uint64(w*perWorker + i + 1)
				price := int64(100 + id%10)
				side := orderbook.Bid
				if id%2 == 0 {
					side = orderbook.Ask
				}
				_, err := e.Submit(id, "c1", side, orderbook.GoodTillCancel, price, 1)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	// Every operation got a distinct seq and the book is uncrossed.
	d := e.Depth(100)
	if len(d.Bids) > 0 && len(d.Asks) > 0 {
		assert.Less(t, d.Bids[0].Price, d.Asks[0].Price)
	}
}

func TestRegistryProvisionAndLookup(t *testing.T) {
	r := NewRegistry(sequence.New(0))

	a := r.Provision("AAPL")
	b := r.Provision("AAPL")
	assert.Same(t, a, b)

	got, err := r.Lookup("AAPL")
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = r.Lookup("MSFT")
	assert.ErrorIs(t, err, orderbook.ErrUnknownInstrument)
}

func TestRegistryEachVisitsSorted(t *testing.T) {
	r := NewRegistry(sequence.New(0))
	for _, name := range []string{"MSFT", "AAPL", "GOOG"} {
		r.Provision(name)
	}

	var seen []string
	r.Each(func(e *Engine) { seen = append(seen, e.Instrument()) })
	assert.Equal(t, []string{"AAPL", "GOOG", "MSFT"}, seen)
}

func TestRegistrySharedSequencer(t *testing.T) {
	seq := sequence.New(0)
	r := NewRegistry(seq)
	a := r.Provision("AAPL")
	b := r.Provision("MSFT")

	ap1, err := a.Submit(1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 1)
	require.NoError(t, err)
	ap2, err := b.Submit(2, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 1)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), ap1.Seq)
	assert.Equal(t, uint64(2), ap2.Seq)
}
