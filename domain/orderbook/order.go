package orderbook

type Side int
type Kind int

const (
	Buy Side = iota
	Sell
)

const (
	Limit Kind = iota
	Market
)

const (
	// UnassignedID marks an order that has not been admitted yet.
	UnassignedID int64 = -1

	// NoPrice is the best/worst value of a side with no resting limit orders.
	NoPrice int64 = 0
)

func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

func (k Kind) Valid() bool {
	return k == Limit || k == Market
}

func (k Kind) String() string {
	switch k {
	case Limit:
		return "limit"
	case Market:
		return "market"
	default:
		return "unknown"
	}
}

// Security is the instrument a book trades. The book never mutates it.
type Security struct {
	ISIN string
	Name string
}

// Request is a placement request as produced by the session layer.
type Request struct {
	Side     Side
	Kind     Kind
	Price    int64 // ticks, zero for market orders
	Quantity int64
}

// Order is a domain entity owned by exactly one book.
type Order struct {
	ID       int64
	Side     Side
	Kind     Kind
	Price    int64
	Quantity int64
	Filled   int64

	queue *orderQueue
	next  *Order
	prev  *Order
}

func (o *Order) Remaining() int64 {
	return o.Quantity - o.Filled
}

func (o *Order) IsFilled() bool {
	return o.Filled == o.Quantity
}

// Next returns the order queued behind o at the same level.
func (o *Order) Next() *Order {
	return o.next
}

// fill books qty against o and keeps the owning queue's volume in step.
func (o *Order) fill(qty int64) {
	if qty <= 0 || qty > o.Remaining() {
		panic("orderbook: fill exceeds remaining quantity")
	}
	o.Filled += qty
	if o.queue != nil {
		o.queue.volume -= qty
	}
}

// detached returns a copy carrying no queue links.
func (o *Order) detached() Order {
	return Order{
		ID:       o.ID,
		Side:     o.Side,
		Kind:     o.Kind,
		Price:    o.Price,
		Quantity: o.Quantity,
		Filled:   o.Filled,
	}
}

// Execution is an immutable trade record.
type Execution struct {
	BuyOrderID  int64
	SellOrderID int64
	Price       int64
	Quantity    int64
}
