package orderbook

// execute runs one execution round for the incoming order in. Only AtMarket
// and NewBest signals walk the opposing side; an order resting behind the
// best price cannot cross and is never re-examined. The caller settles what
// is left of in.
func (b *OrderBook) execute(in *Order, sig Signal) []Execution {
	if !sig.Crosses() {
		return nil
	}

	var execs []Execution
	opp := in.Side.Opposite()
	queue := b.atMarket(opp)
	ladder := b.Ladder(opp)

	for in.Remaining() > 0 {
		// Resting market orders take any price, so they go ahead of every
		// opposing limit level.
		if rest := queue.front(); rest != nil {
			execs = append(execs, b.match(in, rest, b.priceAgainstMarket(in)))
			continue
		}

		lvl := ladder.front()
		if lvl == nil || !crosses(in, lvl.price) {
			break
		}
		execs = append(execs, b.match(in, lvl.front(), lvl.price))
	}

	if n := len(execs); n > 0 {
		b.marketPrice = execs[n-1].Price
	}
	return execs
}

// crosses reports whether in may trade at an opposing level priced price.
func crosses(in *Order, price int64) bool {
	if in.Kind == Market {
		return true
	}
	if in.Side == Buy {
		return price <= in.Price
	}
	return price >= in.Price
}

// priceAgainstMarket prices a trade against a resting market order, which
// quotes no price of its own.
func (b *OrderBook) priceAgainstMarket(in *Order) int64 {
	if in.Kind == Limit {
		return in.Price
	}
	return b.marketPrice
}

// match trades the lesser remaining quantity of in and the resting order
// rest at price, dequeuing rest once it is fully filled.
func (b *OrderBook) match(in, rest *Order, price int64) Execution {
	qty := min(in.Remaining(), rest.Remaining())
	in.fill(qty)
	rest.fill(qty)

	e := Execution{Price: price, Quantity: qty}
	if in.Side == Buy {
		e.BuyOrderID, e.SellOrderID = in.ID, rest.ID
	} else {
		e.BuyOrderID, e.SellOrderID = rest.ID, in.ID
	}

	if rest.IsFilled() {
		b.discard(rest)
	}
	return e
}
