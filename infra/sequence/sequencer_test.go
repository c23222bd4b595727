package sequence

import (
	"sync"
	"testing"
)

func TestNextIsMonotonic(t *testing.T) {
	s := New(0)
	if s.Next() != 1 || s.Next() != 2 || s.Current() != 2 {
		t.Error("sequence should count up from start")
	}
}

func TestResetOnlyMovesForward(t *testing.T) {
	s := New(0)
	s.Reset(100)
	if s.Current() != 100 {
		t.Errorf("reset forward failed, got %d", s.Current())
	}

	s.Reset(50)
	if s.Current() != 100 {
		t.Errorf("reset must never move backwards, got %d", s.Current())
	}
	if s.Next() != 101 {
		t.Error("next after reset should continue from the watermark")
	}
}

func TestConcurrentNextIsUnique(t *testing.T) {
	s := New(0)

	const workers = 8
	const perWorker = 1000

	var mu sync.Mutex
	seen := make(map[uint64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]uint64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				ids = append(ids, s.Next())
			}
			mu.Lock()
			for _, id := range ids {
				if seen[id] {
					t.Errorf("duplicate seq %d", id)
				}
				seen[id] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if s.Current() != workers*perWorker {
		t.Errorf("expected %d issued, got %d", workers*perWorker, s.Current())
	}
}
