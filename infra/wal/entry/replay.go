package entry

import (
	"fmt"
	"path/filepath"
)

type ReplayHandler func(*Record) error

// Replay feeds every record with seq > after to fn in log order and returns
// the last sequence number seen. A torn frame is tolerated only at the end
// of the newest segment.
func Replay(dir string, after uint64, fn ReplayHandler) (lastSeq uint64, err error) {
	indexes, err := listSegments(dir)
	if err != nil {
		return 0, err
	}
	lastSeq = after

	for i, idx := range indexes {
		path := segmentPath(dir, idx)
		info, err := scanSegment(path, func(rec *Record) error {
			if rec.Seq <= after {
				return nil
			}
			if rec.Seq <= lastSeq {
				return fmt.Errorf("%w: %d after %d", ErrSequence, rec.Seq, lastSeq)
			}
			lastSeq = rec.Seq
			return fn(rec)
		})
		if err != nil {
			return lastSeq, err
		}
		if info.torn && i != len(indexes)-1 {
			return lastSeq, fmt.Errorf("%w: torn frame in %s", ErrCorrupt, filepath.Base(path))
		}
	}
	return lastSeq, nil
}
