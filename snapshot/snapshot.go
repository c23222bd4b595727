package snapshot

import "time"

// Snapshot captures one instrument's resting orders plus the sequence of the
// last operation applied to that book. WAL records at or below Seq are
// covered by the snapshot and skipped during replay. TradeSeq carries the
// book's trade numbering across restarts; trade seqs key the exit WAL, so a
// restored book must never reissue one.
type Snapshot struct {
	Instrument string
	Seq        uint64
	TradeSeq   uint64
	Created    time.Time
	Orders     []OrderEntry
}

type OrderEntry struct {
	ID       uint64
	ClientID string
	Side     int
	Type     int
	Price    int64
	Qty      int64
	SeqID    uint64
}
