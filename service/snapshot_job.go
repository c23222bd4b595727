package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"hermes/domain/orderbook"
	"hermes/matching"
	"hermes/snapshot"
)

// StartSnapshotJob periodically persists every book and then trims both
// WALs: entry segments fully covered by all snapshots, and acked exit
// records.
func (s *OrderService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *OrderService) snapshotOnce(w *snapshot.Writer) {
	minSeq := uint64(math.MaxUint64)
	wrote := false
	failed := false

	s.registry.Each(func(e *matching.Engine) {
		e.Snapshot(func(book *orderbook.OrderBook) {
			if err := w.Write(book); err != nil {
				s.log.Warn("snapshot write failed",
					zap.String("instrument", book.Instrument), zap.Error(err))
				failed = true
				return
			}
			wrote = true
			if seq := book.LastSeq.Load(); seq < minSeq {
				minSeq = seq
			}
		})
	})

	// Truncating on a partial snapshot could drop records the failed
	// instrument still needs.
	if !wrote || failed || minSeq == math.MaxUint64 {
		return
	}

	if s.entryWAL != nil {
		if err := s.entryWAL.TruncateBefore(minSeq); err != nil {
			s.log.Warn("entry wal truncate failed", zap.Error(err))
		}
	}
	if s.exitWAL != nil {
		if err := s.exitWAL.DeleteAcked(); err != nil {
			s.log.Warn("exit wal cleanup failed", zap.Error(err))
		}
	}
}
