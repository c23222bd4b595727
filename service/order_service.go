package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hermes/domain/orderbook"
	entrywal "hermes/infra/wal/entry"
	exitwal "hermes/infra/wal/exit"
	"hermes/matching"
)

// OrderService is the only write entry point into the system. It routes an
// operation to the owning engine, journals the applied mutation to the entry
// WAL, and stages generated trades in the exit WAL for publication.
//
// Both WALs are optional: a nil WAL disables journaling (tests, ephemeral
// runs) without touching matching semantics.
type OrderService struct {
	registry *matching.Registry
	entryWAL *entrywal.WAL
	exitWAL  *exitwal.WAL
	log      *zap.Logger
}

// TradeEvent is the published form of a trade, staged in the exit WAL and
// drained to Kafka by the broadcaster.
type TradeEvent struct {
	V          int    `json:"v"`
	Instrument string `json:"instrument"`
	MakerID    uint64 `json:"maker_id"`
	TakerID    uint64 `json:"taker_id"`
	Price      int64  `json:"price"`
	Qty        int64  `json:"qty"`
	Seq        uint64 `json:"seq"`
	Time       int64  `json:"ts"`
}

func NewOrderService(
	registry *matching.Registry,
	entryWAL *entrywal.WAL,
	exitWAL *exitwal.WAL,
	log *zap.Logger,
) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		registry: registry,
		entryWAL: entryWAL,
		exitWAL:  exitWAL,
		log:      log,
	}
}

// Submit places a new order on its instrument's book.
func (s *OrderService) Submit(
	instrument string,
	id uint64,
	clientID string,
	side orderbook.Side,
	otype orderbook.OrderType,
	price, qty int64,
) (orderbook.Result, error) {
	eng, err := s.registry.Lookup(instrument)
	if err != nil {
		return orderbook.Result{Status: orderbook.Rejected}, err
	}

	ap, err := eng.Submit(id, clientID, side, otype, price, qty)
	if err != nil {
		return orderbook.Result{Status: orderbook.Rejected}, err
	}

	payload := fmt.Sprintf("%s|%d|%s|%d|%d|%d|%d",
		instrument, id, clientID, side, otype, price, qty)
	s.journal(entrywal.RecordSubmit, ap.Seq, payload)
	s.stageTrades(ap.Result.Trades)

	s.log.Info("submit",
		zap.String("instrument", instrument),
		zap.Uint64("order_id", id),
		zap.String("status", ap.Result.Status.String()),
		zap.Int("trades", len(ap.Result.Trades)),
	)
	return ap.Result, nil
}

// Modify routes by order id. Requests carry no instrument, so the owning
// engine is resolved by asking each engine's index.
func (s *OrderService) Modify(
	id uint64,
	clientID string,
	newPrice, newQty int64,
	side orderbook.Side,
) (orderbook.Result, error) {
	eng, ok := s.resolve(id)
	if !ok {
		return orderbook.Result{Status: orderbook.Rejected}, orderbook.ErrOrderNotFound
	}

	ap, err := eng.Modify(id, clientID, newPrice, newQty, side)
	if err != nil {
		return orderbook.Result{Status: orderbook.Rejected}, err
	}

	payload := fmt.Sprintf("%s|%d|%s|%d|%d|%d",
		eng.Instrument(), id, clientID, side, newPrice, newQty)
	s.journal(entrywal.RecordModify, ap.Seq, payload)
	s.stageTrades(ap.Result.Trades)

	s.log.Info("modify",
		zap.String("instrument", eng.Instrument()),
		zap.Uint64("order_id", id),
		zap.String("status", ap.Result.Status.String()),
		zap.Int("trades", len(ap.Result.Trades)),
	)
	return ap.Result, nil
}

// Cancel is idempotent: a missing order id reports success=false, not an
// error. An owner mismatch is an error.
func (s *OrderService) Cancel(id uint64, clientID string) (bool, error) {
	eng, ok := s.resolve(id)
	if !ok {
		return false, nil
	}

	ap, err := eng.Cancel(id, clientID)
	if err != nil {
		if errors.Is(err, orderbook.ErrOrderNotFound) {
			return false, nil
		}
		return false, err
	}

	payload := fmt.Sprintf("%s|%d|%s", eng.Instrument(), id, clientID)
	s.journal(entrywal.RecordCancel, ap.Seq, payload)

	s.log.Info("cancel",
		zap.String("instrument", eng.Instrument()),
		zap.Uint64("order_id", id),
	)
	return true, nil
}

// Depth serves a consistent top-n snapshot of one instrument's book.
func (s *OrderService) Depth(instrument string, n int) (orderbook.DepthSnapshot, error) {
	eng, err := s.registry.Lookup(instrument)
	if err != nil {
		return orderbook.DepthSnapshot{}, err
	}
	return eng.Depth(n), nil
}

func (s *OrderService) Registry() *matching.Registry {
	return s.registry
}

// resolve finds the engine whose index holds id. Order ids are expected to
// be unique across instruments; with a handful of provisioned instruments
// this scan is cheap and keeps the engines the only source of truth.
func (s *OrderService) resolve(id uint64) (*matching.Engine, bool) {
	var found *matching.Engine
	s.registry.Each(func(e *matching.Engine) {
		if found == nil && e.Contains(id) {
			found = e
		}
	})
	return found, found != nil
}

func (s *OrderService) journal(t entrywal.RecordType, seq uint64, payload string) {
	if s.entryWAL == nil {
		return
	}
	if err := s.entryWAL.Append(entrywal.NewRecord(t, seq, []byte(payload))); err != nil {
		s.log.Warn("entry wal append failed", zap.Uint64("seq", seq), zap.Error(err))
	}
}

func (s *OrderService) stageTrades(trades []orderbook.Trade) {
	if s.exitWAL == nil || len(trades) == 0 {
		return
	}

	now := time.Now().UnixNano()
	for _, t := range trades {
		ev := TradeEvent{
			V:          1,
			Instrument: t.Instrument,
			MakerID:    t.MakerID,
			TakerID:    t.TakerID,
			Price:      t.Price,
			Qty:        t.Qty,
			Seq:        t.Seq,
			Time:       now,
		}
		payload, err := json.Marshal(ev)
		if err != nil {
			s.log.Warn("trade event encode failed", zap.Error(err))
			continue
		}

		key := fmt.Sprintf("trade/%s/%020d", t.Instrument, t.Seq)
		if err := s.exitWAL.PutNew(key, payload); err != nil {
			s.log.Warn("exit wal stage failed", zap.String("key", key), zap.Error(err))
		}
	}
}
