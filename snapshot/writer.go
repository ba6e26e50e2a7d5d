package snapshot

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"matchcore/domain/orderbook"
)

type Writer struct {
	Dir string
	// Keep is how many snapshots survive Prune. Zero keeps two.
	Keep int
}

// Write stores state as the snapshot covering seq. The file appears under
// its final name only once it is complete and synced.
func (w *Writer) Write(seq uint64, state orderbook.State) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(w.Dir, "snapshot-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	s := Snapshot{
		Version: formatVersion,
		Seq:     seq,
		Created: time.Now().UTC(),
		State:   state,
	}
	if err := gob.NewEncoder(tmp).Encode(&s); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	path := filepath.Join(w.Dir, fileName(seq))
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// Prune removes all but the newest Keep snapshots.
func (w *Writer) Prune() (int, error) {
	keep := w.Keep
	if keep <= 0 {
		keep = 2
	}
	seqs, err := List(w.Dir)
	if err != nil {
		return 0, err
	}
	removed := 0
	for i := 0; i < len(seqs)-keep; i++ {
		if err := os.Remove(filepath.Join(w.Dir, fileName(seqs[i]))); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
