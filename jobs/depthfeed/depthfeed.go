package depthfeed

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"hermes/infra/kafka"
	"hermes/matching"
	"hermes/service"
)

// Feed publishes periodic depth snapshots per instrument. Depth is derived
// market data, so unlike trades it needs no outbox: a missed tick is
// superseded by the next one.
type Feed struct {
	svc      *service.OrderService
	producer *kafka.Producer
	levels   int
	interval time.Duration
	log      *zap.Logger
}

type depthEvent struct {
	V          int        `json:"v"`
	Instrument string     `json:"instrument"`
	Bids       [][2]int64 `json:"bids"`
	Asks       [][2]int64 `json:"asks"`
	Time       int64      `json:"ts"`
}

func New(
	svc *service.OrderService,
	producer *kafka.Producer,
	levels int,
	interval time.Duration,
	log *zap.Logger,
) *Feed {
	return &Feed{
		svc:      svc,
		producer: producer,
		levels:   levels,
		interval: interval,
		log:      log,
	}
}

func (f *Feed) Start(ctx context.Context) {
	f.log.Info("depth feed started", zap.Int("levels", f.levels))

	go func() {
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.publishOnce(ctx)
			}
		}
	}()
}

func (f *Feed) publishOnce(ctx context.Context) {
	now := time.Now().UnixNano()

	f.svc.Registry().Each(func(e *matching.Engine) {
		snap := e.Depth(f.levels)

		ev := depthEvent{
			V:          1,
			Instrument: e.Instrument(),
			Bids:       make([][2]int64, 0, len(snap.Bids)),
			Asks:       make([][2]int64, 0, len(snap.Asks)),
			Time:       now,
		}
		for _, lvl := range snap.Bids {
			ev.Bids = append(ev.Bids, [2]int64{lvl.Price, lvl.Qty})
		}
		for _, lvl := range snap.Asks {
			ev.Asks = append(ev.Asks, [2]int64{lvl.Price, lvl.Qty})
		}

		payload, err := json.Marshal(ev)
		if err != nil {
			f.log.Warn("depth event encode failed", zap.Error(err))
			return
		}

		if err := f.producer.Send(ctx, []byte(e.Instrument()), payload); err != nil {
			f.log.Warn("depth publish failed",
				zap.String("instrument", e.Instrument()), zap.Error(err))
		}
	})
}
