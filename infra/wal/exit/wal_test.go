package exit

import (
	"fmt"
	"testing"
)

func openTestWAL(t *testing.T) *WAL {
	t.Helper()
	w, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestOutboxLifecycle(t *testing.T) {
	w := openTestWAL(t)

	key := "trade/AAPL/00000000000000000001"
	if err := w.PutNew(key, []byte(`{"qty":5}`)); err != nil {
		t.Fatalf("stage failed: %v", err)
	}

	var rec *Record
	err := w.ScanPending(func(r *Record) error {
		cp := *r
		rec = &cp
		return nil
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if rec == nil || rec.State != StateNew || string(rec.Payload) != `{"qty":5}` {
		t.Fatalf("staged record wrong: %+v", rec)
	}

	if err := w.MarkSent(rec); err != nil {
		t.Fatalf("mark sent failed: %v", err)
	}
	if rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Errorf("sent bookkeeping wrong: %+v", rec)
	}

	if err := w.MarkAcked(rec); err != nil {
		t.Fatalf("mark acked failed: %v", err)
	}

	// Acked records drop out of the pending scan.
	pending := 0
	if err := w.ScanPending(func(*Record) error { pending++; return nil }); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if pending != 0 {
		t.Errorf("acked record still pending: %d", pending)
	}
}

func TestScanPendingKeyOrder(t *testing.T) {
	w := openTestWAL(t)

	// Stage out of order; zero-padded seq keys restore it.
	for _, seq := range []int{3, 1, 2} {
		key := fmt.Sprintf("trade/AAPL/%020d", seq)
		if err := w.PutNew(key, []byte("x")); err != nil {
			t.Fatalf("stage failed: %v", err)
		}
	}

	var keys []string
	if err := w.ScanPending(func(r *Record) error {
		keys = append(keys, r.Key)
		return nil
	}); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(keys) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("scan out of order: %v", keys)
		}
	}
}

func TestDeleteAcked(t *testing.T) {
	w := openTestWAL(t)

	for i := 1; i <= 3; i++ {
		key := fmt.Sprintf("trade/AAPL/%020d", i)
		if err := w.PutNew(key, []byte("x")); err != nil {
			t.Fatalf("stage failed: %v", err)
		}
	}

	// Ack the first record only.
	var first *Record
	w.ScanPending(func(r *Record) error {
		if first == nil {
			cp := *r
			first = &cp
		}
		return nil
	})
	w.MarkSent(first)
	w.MarkAcked(first)

	if err := w.DeleteAcked(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	pending := 0
	w.ScanPending(func(*Record) error { pending++; return nil })
	if pending != 2 {
		t.Errorf("expected 2 survivors, got %d", pending)
	}
}
