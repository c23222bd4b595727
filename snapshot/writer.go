package snapshot

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hermes/domain/orderbook"
)

type Writer struct {
	Dir string
}

// Write persists one instrument's book. Callers hold the engine's critical
// section, so the walk sees a consistent state. The file is written to a
// temp path and renamed, so a crash never leaves a half snapshot behind.
func (w *Writer) Write(book *orderbook.OrderBook) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Instrument: book.Instrument,
		Seq:        book.LastSeq.Load(),
		TradeSeq:   book.TradeSeq(),
		Created:    time.Now(),
		Orders:     make([]OrderEntry, 0, book.Size()),
	}

	book.RestingWalk(func(o *orderbook.Order) {
		s.Orders = append(s.Orders, OrderEntry{
			ID:       o.ID,
			ClientID: o.ClientID,
			Side:     int(o.Side),
			Type:     int(o.Type),
			Price:    o.Price,
			Qty:      o.Remaining(),
			SeqID:    o.SeqID,
		})
	})

	path := filepath.Join(w.Dir, fmt.Sprintf("snapshot-%s.bin", book.Instrument))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
