package exit

import (
	"encoding/binary"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"matchcore/domain/orderbook"
)

type ExitState uint8

const (
	StateNew ExitState = iota
	StateSent
	StateAcked
	StateFailed
)

func (s ExitState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Key identifies one execution: the entry sequence number of the command
// that produced it and its position within that command's executions.
type Key struct {
	Seq   uint64
	Index uint32
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d", k.Seq, k.Index)
}

// ExitRecord is an execution awaiting publication together with its
// delivery state.
type ExitRecord struct {
	State       ExitState
	Retries     uint32
	LastAttempt int64

	Time      int64
	Execution orderbook.Execution
}

var errRecordLength = errors.New("invalid exit record length")

const stateSize = 1 + 4 + 8

// binary encoding: [state:1][retries:4][lastAttempt:8][execution (protobuf wire)]
func encodeRecord(r ExitRecord) []byte {
	buf := make([]byte, stateSize, stateSize+48)
	putState(buf, r)
	return appendExecution(buf, r.Time, r.Execution)
}

func putState(buf []byte, r ExitRecord) {
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
}

func decodeRecord(b []byte) (ExitRecord, error) {
	if len(b) < stateSize {
		return ExitRecord{}, errRecordLength
	}
	r := ExitRecord{
		State:       ExitState(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
	}
	if err := consumeExecution(b[stateSize:], &r); err != nil {
		return ExitRecord{}, err
	}
	return r, nil
}

const (
	fieldBuyOrderID  protowire.Number = 1
	fieldSellOrderID protowire.Number = 2
	fieldPrice       protowire.Number = 3
	fieldQuantity    protowire.Number = 4
	fieldTime        protowire.Number = 5
)

func appendExecution(b []byte, ts int64, e orderbook.Execution) []byte {
	for _, f := range []struct {
		num protowire.Number
		v   int64
	}{
		{fieldBuyOrderID, e.BuyOrderID},
		{fieldSellOrderID, e.SellOrderID},
		{fieldPrice, e.Price},
		{fieldQuantity, e.Quantity},
		{fieldTime, ts},
	} {
		b = protowire.AppendTag(b, f.num, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(f.v))
	}
	return b
}

func consumeExecution(b []byte, r *ExitRecord) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ != protowire.VarintType {
			if n = protowire.ConsumeFieldValue(num, typ, b); n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case fieldBuyOrderID:
			r.Execution.BuyOrderID = int64(v)
		case fieldSellOrderID:
			r.Execution.SellOrderID = int64(v)
		case fieldPrice:
			r.Execution.Price = int64(v)
		case fieldQuantity:
			r.Execution.Quantity = int64(v)
		case fieldTime:
			r.Time = int64(v)
		}
	}
	return nil
}
