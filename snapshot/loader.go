package snapshot

import (
	"errors"

	"matchcore/domain/orderbook"
)

// Load restores the newest snapshot in dir into book, which must be empty.
// It returns the covered sequence number; with no snapshot present it
// returns 0 and leaves the book alone.
func Load(dir string, book *orderbook.OrderBook) (uint64, error) {
	s, err := Latest(dir)
	if err != nil {
		seqs, listErr := List(dir)
		if errors.Is(err, ErrNoSnapshot) && listErr == nil && len(seqs) == 0 {
			return 0, nil
		}
		return 0, err
	}
	if err := book.Restore(s.State); err != nil {
		return 0, err
	}
	return s.Seq, nil
}
