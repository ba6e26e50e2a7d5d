package entry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

const segmentGlob = "segment-*.wal"

// segmentFile is the part of *os.File a segment writes through.
type segmentFile interface {
	io.Writer
	Truncate(size int64) error
	Sync() error
	Close() error
}

type segment struct {
	index  int
	file   segmentFile
	offset int64
}

func segmentPath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("segment-%06d.wal", index))
}

func openSegment(dir string, index int) (*segment, error) {
	path := segmentPath(dir, index)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &segment{index: index, file: f, offset: st.Size()}, nil
}

// append writes one frame. A failed write is cut back to the previous
// offset so no partial frame sits in front of later appends.
func (s *segment) append(b []byte) error {
	n, err := s.file.Write(b)
	if err == nil {
		s.offset += int64(n)
		return nil
	}
	if terr := s.file.Truncate(s.offset); terr != nil {
		return fmt.Errorf("%w: write: %v, truncate to %d: %v", ErrBroken, err, s.offset, terr)
	}
	return err
}

func (s *segment) sync() error {
	return s.file.Sync()
}

func (s *segment) close() error {
	return s.file.Close()
}

// listSegments returns segment indexes in ascending order.
func listSegments(dir string) ([]int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, segmentGlob))
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(paths))
	for _, p := range paths {
		var idx int
		if _, err := fmt.Sscanf(filepath.Base(p), "segment-%06d.wal", &idx); err != nil {
			continue
		}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out, nil
}

// segmentInfo is what a full scan learns about one segment.
type segmentInfo struct {
	firstSeq uint64
	lastSeq  uint64
	records  int
	// valid is the byte length of the longest prefix of whole frames.
	valid int64
	torn  bool
}

// scanSegment walks every frame in path. A partial frame at the very end is
// reported as torn rather than as an error.
func scanSegment(path string, fn func(*Record) error) (segmentInfo, error) {
	var info segmentInfo
	f, err := os.Open(path)
	if err != nil {
		return info, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		rec, n, err := readFrame(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return info, nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				info.torn = true
				return info, nil
			}
			return info, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if info.records == 0 {
			info.firstSeq = rec.Seq
		}
		info.lastSeq = rec.Seq
		info.records++
		info.valid += n
		if fn != nil {
			if err := fn(rec); err != nil {
				return info, err
			}
		}
	}
}
