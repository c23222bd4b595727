package matching

import (
	"sort"
	"sync"

	"hermes/domain/orderbook"
	"hermes/infra/memory"
	"hermes/infra/sequence"
)

// Registry routes operations to the engine owning an instrument. Lookups are
// read-mostly; provisioning happens once at startup from configuration and is
// never implicit.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*Engine

	seq  *sequence.Sequencer
	pool *memory.Pool[orderbook.Order]
}

func NewRegistry(seq *sequence.Sequencer) *Registry {
	return &Registry{
		engines: make(map[string]*Engine),
		seq:     seq,
		pool: memory.NewPool(func() *orderbook.Order {
			return &orderbook.Order{}
		}),
	}
}

// Provision creates the engine for an instrument. Idempotent.
func (r *Registry) Provision(instrument string) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.engines[instrument]; ok {
		return e
	}
	e := NewEngine(instrument, r.seq, r.pool)
	r.engines[instrument] = e
	return e
}

// Lookup returns the engine for an instrument or ErrUnknownInstrument.
func (r *Registry) Lookup(instrument string) (*Engine, error) {
	r.mu.RLock()
	e, ok := r.engines[instrument]
	r.mu.RUnlock()

	if !ok {
		return nil, orderbook.ErrUnknownInstrument
	}
	return e, nil
}

// Each visits every engine in instrument order.
func (r *Registry) Each(fn func(*Engine)) {
	r.mu.RLock()
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	for _, name := range names {
		if e, err := r.Lookup(name); err == nil {
			fn(e)
		}
	}
}
