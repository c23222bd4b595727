package exit

import (
	"encoding/binary"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// The exit WAL is the trade outbox: every trade is staged here durably before
// it leaves the process, so a crash between matching and publication loses
// nothing. The broadcaster drives records NEW -> SENT -> ACKED.

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

type Record struct {
	Key         string
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][payload]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 1+4+8+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[13:], r.Payload)
	return buf
}

func decodeRecord(key, b []byte) (Record, error) {
	if len(b) < 13 {
		return Record{}, errors.New("invalid exit record length")
	}
	return Record{
		Key:         string(key),
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     append([]byte(nil), b[13:]...),
	}, nil
}

type WAL struct {
	db *pebble.DB
}

func Open(dir string) (*WAL, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // durability is the point
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open exit wal %s", dir)
	}
	return &WAL{db: db}, nil
}

func (w *WAL) Close() error {
	return w.db.Close()
}

// PutNew stages a fresh outbox entry (called by the order service with the
// serialized trade event as payload).
func (w *WAL) PutNew(key string, payload []byte) error {
	rec := Record{
		State:   StateNew,
		Payload: payload,
	}
	return w.db.Set([]byte(key), encodeRecord(rec), pebble.Sync)
}

// MarkSent flips a record to SENT and counts the attempt.
func (w *WAL) MarkSent(rec *Record) error {
	rec.State = StateSent
	rec.Retries++
	rec.LastAttempt = time.Now().UnixNano()
	return w.db.Set([]byte(rec.Key), encodeRecord(*rec), pebble.Sync)
}

// MarkAcked flips a record to ACKED after the broker confirmed it.
func (w *WAL) MarkAcked(rec *Record) error {
	rec.State = StateAcked
	return w.db.Set([]byte(rec.Key), encodeRecord(*rec), pebble.Sync)
}

// ScanPending iterates records not yet acked, in key order.
func (w *WAL) ScanPending(fn func(*Record) error) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("trade/"),
		UpperBound: []byte("trade/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Key(), iter.Value())
		if err != nil {
			return err
		}

		if rec.State == StateAcked {
			continue
		}

		if err := fn(&rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// DeleteAcked removes confirmed records; run by the snapshot job as cleanup.
func (w *WAL) DeleteAcked() error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("trade/"),
		UpperBound: []byte("trade/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	var acked [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Key(), iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			acked = append(acked, append([]byte(nil), iter.Key()...))
		}
	}
	if err := iter.Error(); err != nil {
		return err
	}

	for _, key := range acked {
		if err := w.db.Delete(key, pebble.Sync); err != nil {
			return err
		}
	}
	return nil
}
