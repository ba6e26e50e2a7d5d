package orderbook

import "fmt"

// State is a restorable image of a book. Orders are listed per side in
// priority order, so restoring them in sequence reproduces every queue.
type State struct {
	Security    Security
	MarketPrice int64
	NextID      int64
	Orders      []Order
}

// State captures the book. The returned orders carry no queue links.
func (b *OrderBook) State() State {
	s := State{
		Security:    b.security,
		MarketPrice: b.marketPrice,
		NextID:      b.nextID,
		Orders:      make([]Order, 0, b.registry.len()),
	}
	for _, side := range []Side{Buy, Sell} {
		b.Resting(side, func(o Order) bool {
			s.Orders = append(s.Orders, o)
			return true
		})
	}
	return s
}

// Restore loads s into an empty book without collar checks or matching.
// The whole state is validated before the book is touched.
func (b *OrderBook) Restore(s State) error {
	if b.registry.len() != 0 {
		return ErrBookNotEmpty
	}
	if s.Security.ISIN != b.security.ISIN {
		return fmt.Errorf("restore: state for %q into book for %q", s.Security.ISIN, b.security.ISIN)
	}
	if s.MarketPrice <= 0 {
		return fmt.Errorf("restore: market price %d: %w", s.MarketPrice, ErrInvalidPrice)
	}

	seen := make(map[int64]struct{}, len(s.Orders))
	for _, o := range s.Orders {
		if o.ID <= 0 || o.ID >= s.NextID {
			return fmt.Errorf("restore: order id %d outside [1, %d)", o.ID, s.NextID)
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("restore: duplicate order id %d", o.ID)
		}
		seen[o.ID] = struct{}{}
		if err := validate(Request{Side: o.Side, Kind: o.Kind, Price: o.Price, Quantity: o.Quantity}); err != nil {
			return fmt.Errorf("restore: order %d: %w", o.ID, err)
		}
		if o.Filled < 0 || o.Filled >= o.Quantity {
			return fmt.Errorf("restore: order %d filled %d of %d: %w", o.ID, o.Filled, o.Quantity, ErrInvalidQuantity)
		}
	}

	b.marketPrice = s.MarketPrice
	b.nextID = s.NextID
	for _, src := range s.Orders {
		o := b.orders.Get()
		*o = src.detached()
		b.insert(o)
		b.registry.add(o)
	}
	return nil
}
