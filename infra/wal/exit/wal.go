package exit

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/pebble"

	"matchcore/domain/orderbook"
)

// ExitWAL is the execution outbox. Every execution is written here before
// the command that produced it is acknowledged, and stays until a publisher
// has delivered it.
type ExitWAL struct {
	db     *pebble.DB
	closed atomic.Bool
}

// ErrClosed is returned by every operation on a closed outbox.
var ErrClosed = errors.New("exit wal closed")

func Open(dir string) (*ExitWAL, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &ExitWAL{db: db}, nil
}

func (w *ExitWAL) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return w.db.Close()
}

// PutNew stores the executions of the command at seq in state NEW.
// Entries that already exist keep their state, so re-running a command
// during replay never resurrects a delivered execution.
func (w *ExitWAL) PutNew(seq uint64, ts int64, execs []orderbook.Execution) (added int, err error) {
	if len(execs) == 0 {
		return 0, nil
	}
	if w.closed.Load() {
		return 0, ErrClosed
	}
	b := w.db.NewBatch()
	defer b.Close()

	for i, e := range execs {
		key := keyFor(Key{Seq: seq, Index: uint32(i)})
		exists, err := w.has(key)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		rec := ExitRecord{State: StateNew, Time: ts, Execution: e}
		if err := b.Set(key, encodeRecord(rec), nil); err != nil {
			return 0, err
		}
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, b.Commit(pebble.Sync)
}

func (w *ExitWAL) has(key []byte) (bool, error) {
	_, closer, err := w.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

// UpdateState moves an entry to state, keeping its execution payload.
func (w *ExitWAL) UpdateState(k Key, state ExitState, retries uint32) error {
	rec, err := w.Get(k)
	if err != nil {
		return err
	}
	rec.State = state
	rec.Retries = retries
	rec.LastAttempt = time.Now().UnixNano()
	return w.db.Set(keyFor(k), encodeRecord(rec), pebble.Sync)
}

func (w *ExitWAL) MarkSent(k Key) error {
	rec, err := w.Get(k)
	if err != nil {
		return err
	}
	return w.UpdateState(k, StateSent, rec.Retries)
}

func (w *ExitWAL) MarkAcked(k Key) error {
	rec, err := w.Get(k)
	if err != nil {
		return err
	}
	return w.UpdateState(k, StateAcked, rec.Retries)
}

// MarkFailed records a failed delivery attempt and bumps the retry count.
func (w *ExitWAL) MarkFailed(k Key) error {
	rec, err := w.Get(k)
	if err != nil {
		return err
	}
	return w.UpdateState(k, StateFailed, rec.Retries+1)
}

func (w *ExitWAL) Delete(k Key) error {
	if w.closed.Load() {
		return ErrClosed
	}
	return w.db.Delete(keyFor(k), pebble.Sync)
}

func (w *ExitWAL) Get(k Key) (ExitRecord, error) {
	if w.closed.Load() {
		return ExitRecord{}, ErrClosed
	}
	val, closer, err := w.db.Get(keyFor(k))
	if err != nil {
		return ExitRecord{}, fmt.Errorf("exit wal %s: %w", k, err)
	}
	defer closer.Close()

	return decodeRecord(val)
}

// ScanByState visits entries in state in key order, which is the order the
// executions were produced.
func (w *ExitWAL) ScanByState(state ExitState, fn func(Key, ExitRecord) error) error {
	return w.scan(func(k Key, rec ExitRecord) (bool, error) {
		if rec.State != state {
			return true, nil
		}
		return true, fn(k, rec)
	})
}

// Pending visits up to limit undelivered entries in production order.
// SENT counts as undelivered: with a single publisher it only survives a
// crash between send and acknowledgement.
// limit <= 0 visits all of them.
func (w *ExitWAL) Pending(limit int, fn func(Key, ExitRecord) error) error {
	n := 0
	return w.scan(func(k Key, rec ExitRecord) (bool, error) {
		if rec.State == StateAcked {
			return true, nil
		}
		if err := fn(k, rec); err != nil {
			return false, err
		}
		n++
		return limit <= 0 || n < limit, nil
	})
}

// DeleteAckedUpTo removes acknowledged entries produced by commands up to
// and including seq.
func (w *ExitWAL) DeleteAckedUpTo(seq uint64) (int, error) {
	if w.closed.Load() {
		return 0, ErrClosed
	}
	b := w.db.NewBatch()
	defer b.Close()

	n := 0
	err := w.scan(func(k Key, rec ExitRecord) (bool, error) {
		if k.Seq > seq {
			return false, nil
		}
		if rec.State != StateAcked {
			return true, nil
		}
		n++
		return true, b.Delete(keyFor(k), nil)
	})
	if err != nil || n == 0 {
		return 0, err
	}
	return n, b.Commit(pebble.Sync)
}

// Counts reports how many entries sit in each state.
func (w *ExitWAL) Counts() (map[ExitState]int, error) {
	out := make(map[ExitState]int, 4)
	err := w.scan(func(_ Key, rec ExitRecord) (bool, error) {
		out[rec.State]++
		return true, nil
	})
	return out, err
}

func (w *ExitWAL) scan(fn func(Key, ExitRecord) (bool, error)) error {
	if w.closed.Load() {
		return ErrClosed
	}
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		k, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return fmt.Errorf("exit wal %s: %w", k, err)
		}
		more, err := fn(k, rec)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return iter.Error()
}

const keyPrefix = "exec/"

func keyFor(k Key) []byte {
	return []byte(fmt.Sprintf("%s%020d/%010d", keyPrefix, k.Seq, k.Index))
}

func parseKey(b []byte) (Key, error) {
	var k Key
	_, err := fmt.Sscanf(string(b), keyPrefix+"%d/%d", &k.Seq, &k.Index)
	if err != nil {
		return Key{}, fmt.Errorf("exit wal key %q: %w", b, err)
	}
	return k, nil
}
