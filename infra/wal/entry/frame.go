package entry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Frame layout:
// [type:1][seq:8][time:8][len:4][payload][crc:4]
// The crc covers header and payload.
const (
	headerSize = 1 + 8 + 8 + 4
	crcSize    = 4

	// maxPayload bounds a single frame so a damaged length field cannot
	// trigger a huge allocation.
	maxPayload = 1 << 20
)

func encodeFrame(r *Record) []byte {
	n := uint32(len(r.Data))
	buf := make([]byte, headerSize+n+crcSize)

	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], n)
	copy(buf[headerSize:], r.Data)

	crc := CRC32(buf[:headerSize+n])
	binary.BigEndian.PutUint32(buf[headerSize+n:], crc)
	return buf
}

// readFrame returns io.EOF on a clean end of stream and
// io.ErrUnexpectedEOF when the stream stops inside a frame.
func readFrame(r io.Reader) (*Record, int64, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, 0, err
	}

	t := RecordType(header[0])
	seq := binary.BigEndian.Uint64(header[1:9])
	ts := binary.BigEndian.Uint64(header[9:17])
	l := binary.BigEndian.Uint32(header[17:21])
	if l > maxPayload {
		return nil, 0, fmt.Errorf("%w: payload length %d", ErrCorrupt, l)
	}

	data := make([]byte, l+crcSize)
	if _, err := io.ReadFull(r, data); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, 0, err
	}

	payload := data[:l]
	crc := binary.BigEndian.Uint32(data[l:])
	if !CRC32Valid(append(header, payload...), crc) {
		return nil, 0, fmt.Errorf("%w: crc mismatch at seq %d", ErrCorrupt, seq)
	}
	if t != RecordPlace && t != RecordCancel {
		return nil, 0, fmt.Errorf("%w: record type %d at seq %d", ErrCorrupt, t, seq)
	}

	return &Record{
		Type: t,
		Seq:  seq,
		Time: int64(ts),
		Data: payload,
	}, int64(headerSize + len(data)), nil
}
