package snapshot

import (
	"testing"

	"hermes/domain/orderbook"
)

func restingBook(t *testing.T) *orderbook.OrderBook {
	t.Helper()
	b := orderbook.NewOrderBook("AAPL")

	orders := []*orderbook.Order{
		{ID: 1, ClientID: "c1", Side: orderbook.Bid, Type: orderbook.GoodTillCancel, Price: 100, Qty: 10, SeqID: 1},
		{ID: 2, ClientID: "c1", Side: orderbook.Bid, Type: orderbook.GoodTillCancel, Price: 100, Qty: 5, SeqID: 2},
		{ID: 3, ClientID: "c2", Side: orderbook.Ask, Type: orderbook.GoodTillCancel, Price: 105, Qty: 7, SeqID: 3},
	}
	for _, o := range orders {
		if _, err := b.Submit(o); err != nil {
			t.Fatalf("seed submit failed: %v", err)
		}
	}
	return b
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b := restingBook(t)

	w := &Writer{Dir: dir}
	if err := w.Write(b); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	snaps, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected one snapshot, got %d", len(snaps))
	}

	s := snaps[0]
	if s.Instrument != "AAPL" || s.Seq != 3 {
		t.Errorf("header wrong: %+v", s)
	}
	if len(s.Orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(s.Orders))
	}

	// Bids walk first, FIFO within the level.
	if s.Orders[0].ID != 1 || s.Orders[1].ID != 2 || s.Orders[2].ID != 3 {
		t.Errorf("walk order wrong: %+v", s.Orders)
	}
}

func TestSnapshotStoresRemainingQty(t *testing.T) {
	dir := t.TempDir()
	b := restingBook(t)

	// Partially fill order 1: 4 of its 10 trade away.
	taker := &orderbook.Order{
		ID: 9, ClientID: "c3", Side: orderbook.Ask, Type: orderbook.GoodTillCancel,
		Price: 100, Qty: 4, SeqID: 4,
	}
	if _, err := b.Submit(taker); err != nil {
		t.Fatalf("taker submit failed: %v", err)
	}

	w := &Writer{Dir: dir}
	if err := w.Write(b); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	snaps, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := snaps[0].Orders[0]; got.ID != 1 || got.Qty != 6 {
		t.Errorf("expected remaining 6 for order 1, got %+v", got)
	}
}

func TestSnapshotCarriesTradeSeq(t *testing.T) {
	dir := t.TempDir()
	b := restingBook(t)

	// Two trades: the taker sweeps both bids at 100.
	taker := &orderbook.Order{
		ID: 9, ClientID: "c3", Side: orderbook.Ask, Type: orderbook.GoodTillCancel,
		Price: 100, Qty: 12, SeqID: 4,
	}
	if _, err := b.Submit(taker); err != nil {
		t.Fatalf("taker submit failed: %v", err)
	}

	w := &Writer{Dir: dir}
	if err := w.Write(b); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	snaps, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := snaps[0].TradeSeq; got != 2 {
		t.Errorf("expected trade seq 2 in snapshot, got %d", got)
	}
}

func TestWriteOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	b := restingBook(t)
	w := &Writer{Dir: dir}

	if err := w.Write(b); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if _, err := b.Cancel(2, "c1", 4); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := w.Write(b); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	snaps, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snaps) != 1 || len(snaps[0].Orders) != 2 || snaps[0].Seq != 4 {
		t.Errorf("latest snapshot should win: %+v", snaps)
	}
}

func TestLoadMissingDirIsFreshStart(t *testing.T) {
	snaps, err := Load(t.TempDir() + "/nope")
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snaps))
	}
}
