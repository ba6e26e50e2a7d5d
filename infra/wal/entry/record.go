package entry

import (
	"errors"
	"time"
)

type RecordType uint8

const (
	RecordPlace RecordType = iota + 1
	RecordCancel
)

func (t RecordType) String() string {
	switch t {
	case RecordPlace:
		return "place"
	case RecordCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Record is one command as it entered the engine. Data holds the command
// payload; see EncodePlace and EncodeCancel.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

var (
	// ErrCorrupt marks a frame that fails its checksum or cannot be parsed.
	ErrCorrupt = errors.New("entry wal: corrupt record")
	// ErrSequence is returned when a record does not advance the sequence.
	ErrSequence = errors.New("entry wal: non-monotonic sequence")
	ErrClosed   = errors.New("entry wal: closed")
	// ErrBroken is returned once a failed append could not be rolled back.
	ErrBroken = errors.New("entry wal: partial frame left on disk")
)
