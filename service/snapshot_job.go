package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// TakeSnapshot writes the current book state and then drops whatever the
// snapshot makes redundant: covered entry WAL segments, acknowledged outbox
// entries and older snapshots. It returns the covered sequence number.
func (s *OrderService) TakeSnapshot() (uint64, error) {
	if s.snapshots == nil {
		return 0, errors.New("service: snapshots not configured")
	}

	s.mu.Lock()
	if s.halted != nil {
		s.mu.Unlock()
		return 0, s.halted
	}
	seq := s.seqGen.Current()
	state := s.book.State()
	s.mu.Unlock()

	path, err := s.snapshots.Write(seq, state)
	if err != nil {
		return 0, err
	}
	s.metrics.Snapshots.Inc()

	removed, err := s.entryWAL.TruncateBefore(seq)
	if err != nil {
		s.log.Warn("entry wal truncation failed", zap.Uint64("seq", seq), zap.Error(err))
	}
	acked, err := s.exitWAL.DeleteAckedUpTo(seq)
	if err != nil {
		s.log.Warn("outbox gc failed", zap.Uint64("seq", seq), zap.Error(err))
	}
	pruned, err := s.snapshots.Prune()
	if err != nil {
		s.log.Warn("snapshot prune failed", zap.Error(err))
	}

	s.log.Info("snapshot written",
		zap.String("path", path),
		zap.Uint64("seq", seq),
		zap.Int("orders", len(state.Orders)),
		zap.Int("wal_segments_removed", removed),
		zap.Int("outbox_entries_removed", acked),
		zap.Int("snapshots_pruned", pruned),
	)
	return seq, nil
}

// StartSnapshotJob snapshots every interval until ctx ends. The returned
// channel closes when the job has stopped.
func (s *OrderService) StartSnapshotJob(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()

		var last uint64
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.mu.Lock()
				cur := s.seqGen.Current()
				s.mu.Unlock()
				if cur == last {
					continue
				}
				seq, err := s.TakeSnapshot()
				if err != nil {
					s.log.Error("snapshot failed", zap.Error(err))
					continue
				}
				last = seq
			}
		}
	}()
	return done
}
