package orderbook

import "errors"

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidKind     = errors.New("invalid order kind")
	ErrPriceOutOfBand  = errors.New("price out of band")
	ErrOrderNotFound   = errors.New("order not found")
	ErrBookNotEmpty    = errors.New("book is not empty")
)
