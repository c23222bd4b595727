package orderbook

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// BookSide keeps the price levels of one side ordered best-first: the tree
// comparator is inverted for bids, so Left() is always the best level
// (highest bid / lowest ask).
type BookSide struct {
	side Side
	tree *rbt.Tree[int64, *PriceLevel]
}

func NewBookSide(side Side) *BookSide {
	var cmp func(a, b int64) int
	if side == Bid {
		cmp = func(a, b int64) int {
			if a > b {
				return -1
			} else if a < b {
				return 1
			}
			return 0
		}
	} else {
		cmp = func(a, b int64) int {
			if a < b {
				return -1
			} else if a > b {
				return 1
			}
			return 0
		}
	}

	return &BookSide{
		side: side,
		tree: rbt.NewWith[int64, *PriceLevel](cmp),
	}
}

func (s *BookSide) GetOrCreate(price int64) *PriceLevel {
	if lvl, ok := s.tree.Get(price); ok {
		return lvl
	}
	lvl := &PriceLevel{Price: price}
	s.tree.Put(price, lvl)
	return lvl
}

func (s *BookSide) Find(price int64) *PriceLevel {
	lvl, ok := s.tree.Get(price)
	if !ok {
		return nil
	}
	return lvl
}

// Best returns the first level in priority order, or nil on an empty side.
func (s *BookSide) Best() *PriceLevel {
	node := s.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value
}

func (s *BookSide) RemoveLevel(price int64) {
	s.tree.Remove(price)
}

func (s *BookSide) Levels() int {
	return s.tree.Size()
}

func (s *BookSide) Empty() bool {
	return s.tree.Empty()
}

// Walk visits levels best-first until fn returns false.
func (s *BookSide) Walk(fn func(*PriceLevel) bool) {
	it := s.tree.Iterator()
	for it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

// Crosses reports whether a resting level at price on this side is matchable
// by an incoming order at limit on the opposite side.
func (s *BookSide) Crosses(price, limit int64) bool {
	if s.side == Ask {
		return price <= limit
	}
	return price >= limit
}
