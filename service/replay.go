package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"matchcore/domain/orderbook"
	entrywal "matchcore/infra/wal/entry"
	"matchcore/snapshot"
)

// Recover rebuilds the book from the newest snapshot and the entry WAL
// records after it. It must run on a fresh book before any traffic.
//
// Re-applied executions are written to the outbox only if missing, so
// recovery never re-publishes a delivered report.
func (s *OrderService) Recover() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.book.Len() != 0 || s.book.NextID() != 1 {
		return 0, errors.New("service: recover needs a fresh book")
	}

	var from uint64
	if s.snapshots != nil {
		seq, err := snapshot.Load(s.snapshots.Dir, s.book)
		if err != nil {
			return 0, fmt.Errorf("load snapshot: %w", err)
		}
		from = seq
	}

	var places, cancels, outbox int
	lastSeq, err := entrywal.Replay(s.entryWAL.Dir(), from, func(rec *entrywal.Record) error {
		switch rec.Type {
		case entrywal.RecordPlace:
			req, err := entrywal.DecodePlace(rec.Data)
			if err != nil {
				return fmt.Errorf("seq %d: %w", rec.Seq, err)
			}
			places++
			_, execs, err := s.book.PlaceOrder(req)
			if err != nil {
				// Rejected live as well; logged only to keep ids aligned.
				return nil
			}
			n, err := s.exitWAL.PutNew(rec.Seq, rec.Time, execs)
			if err != nil {
				return fmt.Errorf("seq %d: outbox: %w", rec.Seq, err)
			}
			outbox += n
		case entrywal.RecordCancel:
			id, err := entrywal.DecodeCancel(rec.Data)
			if err != nil {
				return fmt.Errorf("seq %d: %w", rec.Seq, err)
			}
			cancels++
			if err := s.book.CancelOrder(id); err != nil && !errors.Is(err, orderbook.ErrOrderNotFound) {
				return fmt.Errorf("seq %d: %w", rec.Seq, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("replay entry wal: %w", err)
	}

	// Resume sequencing after everything on disk, including records that
	// the snapshot already covered.
	lastSeq = max(lastSeq, from, s.entryWAL.LastSeq())
	s.seqGen.Reset(lastSeq)
	s.metrics.RestingOrders.Set(float64(s.book.Len()))
	if n := s.book.MarketPrice(); n > 0 {
		s.metrics.MarketPrice.Set(float64(n))
	}

	s.log.Info("recovery complete",
		zap.Uint64("snapshot_seq", from),
		zap.Uint64("last_seq", lastSeq),
		zap.Int("places", places),
		zap.Int("cancels", cancels),
		zap.Int("outbox_restored", outbox),
		zap.Int("resting_orders", s.book.Len()),
	)
	return lastSeq, nil
}
