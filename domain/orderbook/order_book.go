package orderbook

import "fmt"

// Allocator hands out Order nodes. The book returns an order through Put
// once nothing inside the book references it any more.
type Allocator interface {
	Get() *Order
	Put(*Order)
}

type heapAllocator struct{}

func (heapAllocator) Get() *Order { return &Order{} }
func (heapAllocator) Put(*Order)  {}

type Config struct {
	Security      Security
	StartingPrice int64
	// Collar guards prices that would rest as a new best or new worst.
	// The zero value disables it.
	Collar Collar
	// DenseLevels is the tick span each ladder indexes directly from its
	// best price. Zero means DefaultDenseLevels.
	DenseLevels int64
	// Orders allocates order nodes. Nil means plain heap allocation.
	Orders Allocator
}

// OrderBook is single-writer and deterministic: the same request sequence
// always yields the same ids, executions and resting state.
type OrderBook struct {
	security    Security
	marketPrice int64
	nextID      int64
	collar      Collar

	bids         *Ladder
	asks         *Ladder
	buyAtMarket  orderQueue
	sellAtMarket orderQueue

	registry registry
	orders   Allocator
}

func NewOrderBook(cfg Config) (*OrderBook, error) {
	if cfg.StartingPrice <= 0 {
		return nil, fmt.Errorf("starting price %d: %w", cfg.StartingPrice, ErrInvalidPrice)
	}
	if cfg.DenseLevels < 0 {
		return nil, fmt.Errorf("dense levels %d must not be negative", cfg.DenseLevels)
	}
	if cfg.Orders == nil {
		cfg.Orders = heapAllocator{}
	}
	return &OrderBook{
		security:    cfg.Security,
		marketPrice: cfg.StartingPrice,
		nextID:      1,
		collar:      cfg.Collar,
		bids:        newLadder(Buy, cfg.DenseLevels),
		asks:        newLadder(Sell, cfg.DenseLevels),
		registry:    newRegistry(),
		orders:      cfg.Orders,
	}, nil
}

// ---- commands ----

// PlaceOrder validates and admits req, then runs an execution round if the
// order could cross. The id of an admitted order is always returned, even
// when the order traded away in full or a market remainder was discarded.
// Rejected requests leave the book untouched.
//
// A crossing limit order walks the opposing side before it is placed in
// its own ladder, so only a remainder ever extends the ladder.
func (b *OrderBook) PlaceOrder(req Request) (int64, []Execution, error) {
	if err := validate(req); err != nil {
		return UnassignedID, nil, err
	}
	if req.Kind == Limit {
		if err := b.checkCollar(req.Side, req.Price); err != nil {
			return UnassignedID, nil, err
		}
	}

	o := b.orders.Get()
	*o = Order{
		ID:       UnassignedID,
		Side:     req.Side,
		Kind:     req.Kind,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	o.ID = b.nextID
	b.nextID++

	id := o.ID
	sig := b.signal(o)
	b.registry.add(o)
	if o.Kind == Market {
		b.atMarket(o.Side).push(o)
	}

	execs := b.execute(o, sig)
	switch {
	case o.Kind == Market || o.IsFilled():
		// Market orders never rest.
		b.discard(o)
	case o.queue == nil:
		b.Ladder(o.Side).insert(o)
	}
	return id, execs, nil
}

// CancelOrder removes a live order. Filled, cancelled and unknown ids are
// indistinguishable and all yield ErrOrderNotFound.
func (b *OrderBook) CancelOrder(id int64) error {
	e, ok := b.registry.get(id)
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
	}
	b.discard(e.order)
	return nil
}

func validate(req Request) error {
	if !req.Side.Valid() {
		return fmt.Errorf("side %d: %w", req.Side, ErrInvalidSide)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("quantity %d: %w", req.Quantity, ErrInvalidQuantity)
	}
	switch req.Kind {
	case Limit:
		if req.Price <= 0 {
			return fmt.Errorf("limit price %d: %w", req.Price, ErrInvalidPrice)
		}
	case Market:
		if req.Price != 0 {
			return fmt.Errorf("market order carries price %d: %w", req.Price, ErrInvalidPrice)
		}
	default:
		return fmt.Errorf("kind %d: %w", req.Kind, ErrInvalidKind)
	}
	return nil
}

// checkCollar applies the price collar to a limit price that would rest
// as a new extreme of its side. A new worst may not sit further from the
// market than the collar on the passive side, a new best (including the
// first order of an empty side) not further on the aggressive side. Orders
// that cross on arrival are never collared: they trade at resting prices.
func (b *OrderBook) checkCollar(side Side, price int64) error {
	if b.marketable(side, price) {
		return nil
	}
	var ok bool
	switch b.Ladder(side).classify(price) {
	case placeFirst, placeNewBest:
		ok = b.collar.AllowsBest(side, price, b.marketPrice)
	case placeNewWorst:
		ok = b.collar.AllowsWorst(side, price, b.marketPrice)
	default:
		return nil
	}
	if !ok {
		return fmt.Errorf("%s limit %d outside collar %s of market %d: %w", side, price, b.collar, b.marketPrice, ErrPriceOutOfBand)
	}
	return nil
}

// marketable reports whether a limit at price would trade on arrival.
func (b *OrderBook) marketable(side Side, price int64) bool {
	opp := side.Opposite()
	if b.atMarket(opp).count > 0 {
		return true
	}
	best := b.Ladder(opp).Best()
	if best == NoPrice {
		return false
	}
	if side == Buy {
		return best <= price
	}
	return best >= price
}

// signal classifies the book transition o causes, before it is queued.
func (b *OrderBook) signal(o *Order) Signal {
	if o.Kind == Market {
		return Signal{Kind: AtMarket, Side: o.Side}
	}
	switch b.Ladder(o.Side).classify(o.Price) {
	case placeFirst, placeNewBest, placeAtBest:
		return Signal{Kind: NewBest, Side: o.Side}
	default:
		return Signal{Kind: NoOperation, Side: o.Side}
	}
}

// insert queues o without matching.
func (b *OrderBook) insert(o *Order) {
	if o.Kind == Market {
		b.atMarket(o.Side).push(o)
		return
	}
	b.Ladder(o.Side).insert(o)
}

// discard removes o from its queue, if any, and the registry and releases
// it.
func (b *OrderBook) discard(o *Order) {
	e, ok := b.registry.get(o.ID)
	if !ok || e.order != o {
		panic("orderbook: registry does not resolve the order being removed")
	}
	switch {
	case o.queue == nil:
	case e.location.AtMarket:
		b.atMarket(e.side).unlink(o)
	default:
		b.Ladder(e.side).remove(o)
	}
	b.registry.delete(o.ID)
	b.orders.Put(o)
}

func (b *OrderBook) atMarket(side Side) *orderQueue {
	if side == Buy {
		return &b.buyAtMarket
	}
	return &b.sellAtMarket
}

// ---- queries ----

func (b *OrderBook) Security() Security {
	return b.security
}

func (b *OrderBook) MarketPrice() int64 {
	return b.marketPrice
}

// NextID is the id the next admitted order will receive.
func (b *OrderBook) NextID() int64 {
	return b.nextID
}

func (b *OrderBook) Collar() Collar {
	return b.collar
}

// Ladder returns the read-only price ladder of side.
func (b *OrderBook) Ladder(side Side) *Ladder {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) Best(side Side) int64 {
	return b.Ladder(side).Best()
}

func (b *OrderBook) Worst(side Side) int64 {
	return b.Ladder(side).Worst()
}

// Len is the number of live orders.
func (b *OrderBook) Len() int {
	return b.registry.len()
}

func (b *OrderBook) AtMarketLen(side Side) int {
	return b.atMarket(side).count
}

// Order returns a copy of a live order and where it rests.
func (b *OrderBook) Order(id int64) (Order, Location, bool) {
	e, ok := b.registry.get(id)
	if !ok {
		return Order{}, Location{}, false
	}
	return e.order.detached(), e.location, true
}

// Level aggregates one price level.
type Level struct {
	Price    int64
	Quantity int64 // remaining
	Orders   int
}

// Depth returns up to n populated levels of side from best to worst.
// n <= 0 returns every level.
func (b *OrderBook) Depth(side Side, n int) []Level {
	out := make([]Level, 0, max(n, 0))
	b.Ladder(side).each(func(q *orderQueue) bool {
		out = append(out, Level{Price: q.price, Quantity: q.volume, Orders: q.count})
		return n <= 0 || len(out) < n
	})
	return out
}

// Resting visits live orders of side in priority order: at-market queue
// first, then limit levels best to worst, FIFO within each.
func (b *OrderBook) Resting(side Side, fn func(Order) bool) {
	for o := b.atMarket(side).front(); o != nil; o = o.next {
		if !fn(o.detached()) {
			return
		}
	}
	b.Ladder(side).each(func(q *orderQueue) bool {
		for o := q.front(); o != nil; o = o.next {
			if !fn(o.detached()) {
				return false
			}
		}
		return true
	})
}
