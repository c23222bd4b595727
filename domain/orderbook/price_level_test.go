package orderbook

import "testing"

func TestPriceLevelFIFO(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	a := gtc(1, Bid, 100, 5, 1)
	b := gtc(2, Bid, 100, 7, 2)
	c := gtc(3, Bid, 100, 3, 3)
	lvl.Enqueue(a)
	lvl.Enqueue(b)
	lvl.Enqueue(c)

	if lvl.TotalQty != 15 || lvl.OrderCount != 3 {
		t.Fatalf("accounting wrong: qty=%d count=%d", lvl.TotalQty, lvl.OrderCount)
	}

	if got := lvl.PopHead(); got != a {
		t.Errorf("expected first-in first-out, got %d", got.ID)
	}
	if got := lvl.PopHead(); got != b {
		t.Errorf("expected second order next, got %d", got.ID)
	}
	if lvl.TotalQty != 3 || lvl.OrderCount != 1 {
		t.Errorf("accounting after pops wrong: qty=%d count=%d", lvl.TotalQty, lvl.OrderCount)
	}
}

func TestPriceLevelRemoveMiddle(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	a := gtc(1, Bid, 100, 5, 1)
	b := gtc(2, Bid, 100, 5, 2)
	c := gtc(3, Bid, 100, 5, 3)
	lvl.Enqueue(a)
	lvl.Enqueue(b)
	lvl.Enqueue(c)

	lvl.Remove(b)

	if lvl.Head() != a || a.Next() != c || c.Next() != nil {
		t.Error("links broken after middle removal")
	}
	if lvl.TotalQty != 10 || lvl.OrderCount != 2 {
		t.Errorf("accounting wrong: qty=%d count=%d", lvl.TotalQty, lvl.OrderCount)
	}
}

func TestPriceLevelRemoveEnds(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	a := gtc(1, Bid, 100, 5, 1)
	b := gtc(2, Bid, 100, 5, 2)
	lvl.Enqueue(a)
	lvl.Enqueue(b)

	lvl.Remove(a)
	if lvl.Head() != b {
		t.Error("head removal should promote the next order")
	}

	lvl.Remove(b)
	if !lvl.Empty() || lvl.PopHead() != nil {
		t.Error("level should be empty")
	}
}

func TestPriceLevelCountsRemaining(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	o := gtc(1, Bid, 100, 10, 1)
	o.Filled = 4

	lvl.Enqueue(o)
	if lvl.TotalQty != 6 {
		t.Errorf("enqueue should count remaining, got %d", lvl.TotalQty)
	}
}
