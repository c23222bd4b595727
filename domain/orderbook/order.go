package orderbook

type Side int
type OrderType int
type Status int

const (
	Bid Side = iota
	Ask
)

const (
	GoodTillCancel OrderType = iota
	Market
	FillAndKill
	FillOrKill
)

// Status is the outcome of a submit or modify operation.
const (
	Accepted Status = iota
	PartiallyFilled
	Filled
	Modified
	Rejected
)

func (s Side) String() string {
	if s == Ask {
		return "ASK"
	}
	return "BID"
}

func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

func (s Status) String() string {
	switch s {
	case Accepted:
		return "ACCEPTED"
	case PartiallyFilled:
		return "PARTIALLY_FILLED"
	case Filled:
		return "FILLED"
	case Modified:
		return "MODIFIED"
	case Rejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Order is a pure domain entity. The intrusive next/prev links place it in
// exactly one PriceLevel queue while it rests; level is the back-pointer that
// makes removal O(1).
type Order struct {
	ID       uint64
	ClientID string
	Price    int64
	Qty      int64
	Filled   int64
	SeqID    uint64

	Side Side
	Type OrderType

	level *PriceLevel
	next  *Order
	prev  *Order
}

func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// Read-only traversal helper
func (o *Order) Next() *Order {
	return o.next
}
