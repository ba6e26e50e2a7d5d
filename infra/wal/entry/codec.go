package entry

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"matchcore/domain/orderbook"
)

// Payloads use the protobuf wire format so records stay readable by any
// protobuf decoder and tolerate added fields.
//
//	place:  1 side, 2 kind, 3 price, 4 quantity
//	cancel: 1 order id
const (
	fieldSide     protowire.Number = 1
	fieldKind     protowire.Number = 2
	fieldPrice    protowire.Number = 3
	fieldQuantity protowire.Number = 4

	fieldOrderID protowire.Number = 1
)

func EncodePlace(req orderbook.Request) []byte {
	b := make([]byte, 0, 32)
	b = appendVarint(b, fieldSide, uint64(req.Side))
	b = appendVarint(b, fieldKind, uint64(req.Kind))
	b = appendVarint(b, fieldPrice, uint64(req.Price))
	b = appendVarint(b, fieldQuantity, uint64(req.Quantity))
	return b
}

func DecodePlace(b []byte) (orderbook.Request, error) {
	var req orderbook.Request
	err := consumeVarints(b, func(num protowire.Number, v uint64) {
		switch num {
		case fieldSide:
			req.Side = orderbook.Side(v)
		case fieldKind:
			req.Kind = orderbook.Kind(v)
		case fieldPrice:
			req.Price = int64(v)
		case fieldQuantity:
			req.Quantity = int64(v)
		}
	})
	return req, err
}

func EncodeCancel(orderID int64) []byte {
	return appendVarint(nil, fieldOrderID, uint64(orderID))
}

func DecodeCancel(b []byte) (int64, error) {
	var id int64
	err := consumeVarints(b, func(num protowire.Number, v uint64) {
		if num == fieldOrderID {
			id = int64(v)
		}
	})
	return id, err
}

// NewPlaceRecord and NewCancelRecord build ready-to-append records.
func NewPlaceRecord(seq uint64, req orderbook.Request) *Record {
	return NewRecord(RecordPlace, seq, EncodePlace(req))
}

func NewCancelRecord(seq uint64, orderID int64) *Record {
	return NewRecord(RecordCancel, seq, EncodeCancel(orderID))
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// consumeVarints walks b, passing varint fields to fn and skipping unknown
// fields of any other wire type.
func consumeVarints(b []byte, fn func(protowire.Number, uint64)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
		}
		b = b[n:]
		fn(num, v)
	}
	return nil
}
