package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/domain/orderbook"
	"hermes/infra/sequence"
	entrywal "hermes/infra/wal/entry"
	exitwal "hermes/infra/wal/exit"
	"hermes/matching"
)

func newTestService(t *testing.T, instruments ...string) *OrderService {
	t.Helper()
	registry := matching.NewRegistry(sequence.New(0))
	for _, in := range instruments {
		registry.Provision(in)
	}
	return NewOrderService(registry, nil, nil, nil)
}

func TestSubmitRoutesToInstrument(t *testing.T) {
	svc := newTestService(t, "AAPL", "MSFT")

	res, err := svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, orderbook.Accepted, res.Status)

	d, err := svc.Depth("AAPL", 10)
	require.NoError(t, err)
	assert.Len(t, d.Bids, 1)

	d, err = svc.Depth("MSFT", 10)
	require.NoError(t, err)
	assert.Empty(t, d.Bids)
}

func TestSubmitUnknownInstrument(t *testing.T) {
	svc := newTestService(t, "AAPL")

	_, err := svc.Submit("TSLA", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	assert.ErrorIs(t, err, orderbook.ErrUnknownInstrument)

	_, err = svc.Depth("TSLA", 10)
	assert.ErrorIs(t, err, orderbook.ErrUnknownInstrument)
}

func TestModifyResolvesAcrossInstruments(t *testing.T) {
	svc := newTestService(t, "AAPL", "MSFT")

	_, err := svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	_, err = svc.Submit("MSFT", 2, "c1", orderbook.Bid, orderbook.GoodTillCancel, 200, 10)
	require.NoError(t, err)

	// No instrument on the request: the service finds the owning engine.
	res, err := svc.Modify(2, "c1", 199, 10, orderbook.Bid)
	require.NoError(t, err)
	assert.Equal(t, orderbook.Modified, res.Status)

	d, _ := svc.Depth("MSFT", 10)
	require.Len(t, d.Bids, 1)
	assert.Equal(t, int64(199), d.Bids[0].Price)

	d, _ = svc.Depth("AAPL", 10)
	assert.Equal(t, int64(100), d.Bids[0].Price)
}

func TestModifyUnknownOrder(t *testing.T) {
	svc := newTestService(t, "AAPL")

	_, err := svc.Modify(99, "c1", 100, 10, orderbook.Bid)
	assert.ErrorIs(t, err, orderbook.ErrOrderNotFound)
}

func TestCancelIsIdempotent(t *testing.T) {
	svc := newTestService(t, "AAPL")

	_, err := svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)

	ok, err := svc.Cancel(1, "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Cancel(1, "c1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCancelWrongOwner(t *testing.T) {
	svc := newTestService(t, "AAPL")

	_, err := svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)

	_, err = svc.Cancel(1, "other")
	assert.ErrorIs(t, err, orderbook.ErrUnauthorized)
}

func TestTradesStagedInOutbox(t *testing.T) {
	registry := matching.NewRegistry(sequence.New(0))
	registry.Provision("AAPL")

	exitWAL, err := exitwal.Open(t.TempDir())
	require.NoError(t, err)
	defer exitWAL.Close()

	svc := NewOrderService(registry, nil, exitWAL, nil)

	_, err = svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	res, err := svc.Submit("AAPL", 2, "c2", orderbook.Ask, orderbook.GoodTillCancel, 100, 4)
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)

	var events []TradeEvent
	err = exitWAL.ScanPending(func(r *exitwal.Record) error {
		var ev TradeEvent
		if err := json.Unmarshal(r.Payload, &ev); err != nil {
			return err
		}
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "AAPL", ev.Instrument)
	assert.Equal(t, uint64(1), ev.MakerID)
	assert.Equal(t, uint64(2), ev.TakerID)
	assert.Equal(t, int64(100), ev.Price)
	assert.Equal(t, int64(4), ev.Qty)
}

func TestSubmitJournalsToEntryWAL(t *testing.T) {
	dir := t.TempDir()

	registry := matching.NewRegistry(sequence.New(0))
	registry.Provision("AAPL")

	entryWAL, err := entrywal.Open(entrywal.Config{Dir: dir, SegmentSize: 1 << 20})
	require.NoError(t, err)

	svc := NewOrderService(registry, entryWAL, nil, nil)

	_, err = svc.Submit("AAPL", 1, "c1", orderbook.Bid, orderbook.GoodTillCancel, 100, 10)
	require.NoError(t, err)
	_, err = svc.Cancel(1, "c1")
	require.NoError(t, err)
	require.NoError(t, entryWAL.Close())

	var types []entrywal.RecordType
	_, err = entrywal.Replay(dir, func(rec *entrywal.Record) error {
		types = append(types, rec.Type)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []entrywal.RecordType{entrywal.RecordSubmit, entrywal.RecordCancel}, types)
}
