package snapshot

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoSnapshot is returned by Latest when the directory holds none.
var ErrNoSnapshot = errors.New("snapshot: none found")

// List returns the sequence numbers of stored snapshots in ascending order.
func List(dir string) ([]uint64, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "snapshot-*.gob"))
	if err != nil {
		return nil, err
	}
	seqs := make([]uint64, 0, len(paths))
	for _, p := range paths {
		var seq uint64
		if _, err := fmt.Sscanf(filepath.Base(p), filePattern, &seq); err != nil {
			continue
		}
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
	return seqs, nil
}

func Read(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", filepath.Base(path), err)
	}
	if s.Version != formatVersion {
		return nil, fmt.Errorf("snapshot %s: unsupported version %d", filepath.Base(path), s.Version)
	}
	return &s, nil
}

// Latest returns the newest snapshot that decodes cleanly, skipping damaged
// ones. The returned error joins every decode failure when none is usable.
func Latest(dir string) (*Snapshot, error) {
	seqs, err := List(dir)
	if err != nil {
		return nil, err
	}
	var errs []error
	for i := len(seqs) - 1; i >= 0; i-- {
		s, err := Read(filepath.Join(dir, fileName(seqs[i])))
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(append([]error{ErrNoSnapshot}, errs...)...)
}
