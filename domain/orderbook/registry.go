package orderbook

// Location is where a live order rests.
type Location struct {
	AtMarket bool
	Price    int64 // ladder level, zero when AtMarket
}

type registryEntry struct {
	order    *Order // also the position token inside its queue
	side     Side
	location Location
}

// registry is the only authority on where an order currently lives.
type registry struct {
	entries map[int64]registryEntry
}

func newRegistry() registry {
	return registry{entries: make(map[int64]registryEntry)}
}

func (r *registry) add(o *Order) {
	if _, dup := r.entries[o.ID]; dup {
		panic("orderbook: duplicate order id in registry")
	}
	loc := Location{AtMarket: o.Kind == Market}
	if !loc.AtMarket {
		loc.Price = o.Price
	}
	r.entries[o.ID] = registryEntry{order: o, side: o.Side, location: loc}
}

func (r *registry) get(id int64) (registryEntry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

func (r *registry) delete(id int64) {
	if _, ok := r.entries[id]; !ok {
		panic("orderbook: deleting an unregistered order")
	}
	delete(r.entries, id)
}

func (r *registry) len() int {
	return len(r.entries)
}
