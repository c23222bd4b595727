package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hermes/domain/orderbook"
	"hermes/infra/sequence"
	entrywal "hermes/infra/wal/entry"
	exitwal "hermes/infra/wal/exit"
	"hermes/matching"
	"hermes/snapshot"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func newRegistry(instruments ...string) (*matching.Registry, *sequence.Sequencer) {
	seq := sequence.New(0)
	r := matching.NewRegistry(seq)
	for _, in := range instruments {
		r.Provision(in)
	}
	return r, seq
}

func TestReplayRebuildsBook(t *testing.T) {
	walDir := t.TempDir()

	registry, _ := newRegistry("AAPL", "MSFT")
	entryWAL, err := entrywal.Open(entrywal.Config{Dir: walDir, SegmentSize: 1 << 20})
	require.NoError(t, err)

	svc := NewOrderService(registry, entryWAL, nil, nil)

	_, err = svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 1000)
	require.NoError(t, err)
	_, err = svc.Submit("AAPL", 2, "c2", orderbook.Ask, orderbook.GoodTillCancel, 100, 500)
	require.NoError(t, err)
	_, err = svc.Submit("MSFT", 3, "c1", orderbook.Bid, orderbook.GoodTillCancel, 200, 10)
	require.NoError(t, err)
	_, err = svc.Modify(3, "c1", 195, 10, orderbook.Bid)
	require.NoError(t, err)
	require.NoError(t, entryWAL.Close())

	// Fresh process: replay the log into empty engines.
	registry2, seq2 := newRegistry("AAPL", "MSFT")
	err = ReplayFromWAL(walDir, registry2, seq2, nil, testLogger())
	require.NoError(t, err)

	svc2 := NewOrderService(registry2, nil, nil, nil)

	d, err := svc2.Depth("AAPL", 10)
	require.NoError(t, err)
	require.Len(t, d.Bids, 1)
	assert.Equal(t, int64(100), d.Bids[0].Price)
	assert.Equal(t, int64(500), d.Bids[0].Qty)
	assert.Empty(t, d.Asks)

	d, err = svc2.Depth("MSFT", 10)
	require.NoError(t, err)
	require.Len(t, d.Bids, 1)
	assert.Equal(t, int64(195), d.Bids[0].Price)

	// New seqs continue past everything replayed.
	assert.Equal(t, uint64(4), seq2.Current())
}

func TestReplaySkipsRecordsCoveredBySnapshot(t *testing.T) {
	walDir := t.TempDir()
	snapDir := t.TempDir()

	registry, _ := newRegistry("AAPL")
	entryWAL, err := entrywal.Open(entrywal.Config{Dir: walDir, SegmentSize: 1 << 20})
	require.NoError(t, err)

	svc := NewOrderService(registry, entryWAL, nil, nil)

	_, err = svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	_, err = svc.Submit("AAPL", 2, "c1", orderbook.Bid, orderbook.GoodTillCancel, 99, 5)
	require.NoError(t, err)

	// Snapshot covers the first two operations.
	eng, err := registry.Lookup("AAPL")
	require.NoError(t, err)
	w := &snapshot.Writer{Dir: snapDir}
	eng.Snapshot(func(b *orderbook.OrderBook) {
		require.NoError(t, w.Write(b))
	})

	// One more operation lands after the snapshot.
	_, err = svc.Submit("AAPL", 3, "c1", orderbook.Ask, orderbook.GoodTillCancel, 105, 7)
	require.NoError(t, err)
	require.NoError(t, entryWAL.Close())

	// Recovery: snapshot first, then replay only the uncovered tail.
	registry2, seq2 := newRegistry("AAPL")
	watermarks, err := RestoreSnapshots(snapDir, registry2, seq2, testLogger())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), watermarks["AAPL"])

	err = ReplayFromWAL(walDir, registry2, seq2, watermarks, testLogger())
	require.NoError(t, err)

	eng2, err := registry2.Lookup("AAPL")
	require.NoError(t, err)
	d := eng2.Depth(10)
	require.Len(t, d.Bids, 2)
	require.Len(t, d.Asks, 1)
	assert.Equal(t, int64(10), d.Bids[0].Qty)
	assert.Equal(t, int64(7), d.Asks[0].Qty)

	// Replaying the covered records again must not duplicate orders.
	assert.True(t, eng2.Contains(1))
	assert.True(t, eng2.Contains(2))
	assert.True(t, eng2.Contains(3))
}

func TestRestoredBookContinuesTradeNumbering(t *testing.T) {
	snapDir := t.TempDir()

	exitWAL, err := exitwal.Open(t.TempDir())
	require.NoError(t, err)
	defer exitWAL.Close()

	registry, _ := newRegistry("AAPL")
	svc := NewOrderService(registry, nil, exitWAL, nil)

	// One trade before the snapshot; its event holds the first outbox key.
	_, err = svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	res, err := svc.Submit("AAPL", 2, "c2", orderbook.Ask, orderbook.GoodTillCancel, 100, 4)
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, uint64(1), res.Trades[0].Seq)

	eng, err := registry.Lookup("AAPL")
	require.NoError(t, err)
	w := &snapshot.Writer{Dir: snapDir}
	eng.Snapshot(func(b *orderbook.OrderBook) {
		require.NoError(t, w.Write(b))
	})

	// Restart from the snapshot, sharing the surviving outbox.
	registry2, seq2 := newRegistry("AAPL")
	_, err = RestoreSnapshots(snapDir, registry2, seq2, testLogger())
	require.NoError(t, err)

	// The next trade keeps counting; its outbox key must not collide with
	// the still-pending pre-restart event.
	svc2 := NewOrderService(registry2, nil, exitWAL, nil)
	res, err = svc2.Submit("AAPL", 3, "c2", orderbook.Ask, orderbook.GoodTillCancel, 100, 2)
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, uint64(2), res.Trades[0].Seq)

	var keys []string
	require.NoError(t, exitWAL.ScanPending(func(r *exitwal.Record) error {
		keys = append(keys, r.Key)
		return nil
	}))
	assert.Equal(t, []string{
		"trade/AAPL/00000000000000000001",
		"trade/AAPL/00000000000000000002",
	}, keys)
}

func TestRestoredBookStillMatches(t *testing.T) {
	snapDir := t.TempDir()

	registry, _ := newRegistry("AAPL")
	svc := NewOrderService(registry, nil, nil, nil)

	_, err := svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	_, err = svc.Submit("AAPL", 2, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)

	eng, _ := registry.Lookup("AAPL")
	w := &snapshot.Writer{Dir: snapDir}
	eng.Snapshot(func(b *orderbook.OrderBook) {
		require.NoError(t, w.Write(b))
	})

	registry2, seq2 := newRegistry("AAPL")
	_, err = RestoreSnapshots(snapDir, registry2, seq2, testLogger())
	require.NoError(t, err)

	// Time priority survives the round trip: order 1 fills first.
	svc2 := NewOrderService(registry2, nil, nil, nil)
	res, err := svc2.Submit("AAPL", 3, "c2", orderbook.Ask, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, uint64(1), res.Trades[0].MakerID)
}
