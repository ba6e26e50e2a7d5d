package entry

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

type Config struct {
	Dir         string
	SegmentSize int64
	// SyncEveryWrite fsyncs after each Append. Without it durability is
	// bounded by the OS page cache until Sync or rotation.
	SyncEveryWrite bool
}

const DefaultSegmentSize = 64 << 20

// WAL is an append-only, segmented command log. Appends must carry strictly
// increasing sequence numbers.
type WAL struct {
	mu sync.Mutex

	dir        string
	segSize    int64
	syncWrites bool

	current *segment
	lastSeq uint64
	closed  bool
	broken  error
}

// Open resumes the newest segment, cutting off a torn final frame left by
// a crash, or creates the first one.
func Open(cfg Config) (*WAL, error) {
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = DefaultSegmentSize
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	w := &WAL{dir: cfg.Dir, segSize: cfg.SegmentSize, syncWrites: cfg.SyncEveryWrite}

	indexes, err := listSegments(cfg.Dir)
	if err != nil {
		return nil, err
	}
	last := 0
	for _, idx := range indexes {
		info, err := scanSegment(segmentPath(cfg.Dir, idx), nil)
		if err != nil {
			return nil, err
		}
		if info.records > 0 {
			w.lastSeq = info.lastSeq
		}
		last = idx
		if info.torn && idx == indexes[len(indexes)-1] {
			if err := os.Truncate(segmentPath(cfg.Dir, idx), info.valid); err != nil {
				return nil, fmt.Errorf("entry wal: truncate torn tail: %w", err)
			}
		}
	}

	seg, err := openSegment(cfg.Dir, last)
	if err != nil {
		return nil, err
	}
	w.current = seg
	return w, nil
}

func (w *WAL) Dir() string {
	return w.dir
}

// LastSeq is the sequence number of the newest durable-or-buffered record.
func (w *WAL) LastSeq() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeq
}

func (w *WAL) Append(r *Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if w.broken != nil {
		return w.broken
	}
	if r.Seq <= w.lastSeq {
		return fmt.Errorf("%w: %d after %d", ErrSequence, r.Seq, w.lastSeq)
	}

	if err := w.current.append(encodeFrame(r)); err != nil {
		if errors.Is(err, ErrBroken) {
			w.broken = err
		}
		return err
	}
	w.lastSeq = r.Seq

	if w.syncWrites {
		if err := w.current.sync(); err != nil {
			return err
		}
	}
	if w.current.offset >= w.segSize {
		return w.rotate()
	}
	return nil
}

func (w *WAL) rotate() error {
	if err := w.current.sync(); err != nil {
		return err
	}
	_ = w.current.close()

	seg, err := openSegment(w.dir, w.current.index+1)
	if err != nil {
		return err
	}
	w.current = seg
	return nil
}

func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	return w.current.sync()
}

func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.current.sync(); err != nil {
		_ = w.current.close()
		return err
	}
	return w.current.close()
}

// TruncateBefore deletes closed segments whose records all have seq <= seq.
// The active segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) (removed int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	indexes, err := listSegments(w.dir)
	if err != nil {
		return 0, err
	}
	for _, idx := range indexes {
		if idx >= w.current.index {
			break
		}
		path := segmentPath(w.dir, idx)
		info, err := scanSegment(path, nil)
		if err != nil {
			return removed, err
		}
		if info.records > 0 && info.lastSeq > seq {
			// Later segments only hold larger sequence numbers.
			break
		}
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
