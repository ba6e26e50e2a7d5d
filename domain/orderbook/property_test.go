package orderbook

import (
	"testing"

	"pgregory.net/rapid"
)

type op struct {
	cancel bool
	target int64
	req    Request
}

func drawOp(t *rapid.T, nextID int64) op {
	if nextID > 1 && rapid.IntRange(0, 4).Draw(t, "cancel") == 0 {
		return op{cancel: true, target: rapid.Int64Range(1, nextID).Draw(t, "target")}
	}
	req := Request{
		Side:     rapid.SampledFrom([]Side{Buy, Sell}).Draw(t, "side"),
		Kind:     Limit,
		Quantity: rapid.Int64Range(1, 20).Draw(t, "qty"),
	}
	if rapid.IntRange(0, 5).Draw(t, "market") == 0 {
		req.Kind = Market
	} else {
		req.Price = rapid.Int64Range(85, 115).Draw(t, "price")
	}
	return op{req: req}
}

// checkBook verifies the structural invariants that must hold between rounds.
func checkBook(t *rapid.T, b *OrderBook) {
	live := 0
	for _, side := range []Side{Buy, Sell} {
		l := b.Ladder(side)
		if l.n > 0 {
			if l.slots[l.head] == nil || l.slots[l.head].empty() {
				t.Fatalf("%s best slot empty", side)
			}
			if l.slots[l.head+l.n-1] == nil || l.slots[l.head+l.n-1].empty() {
				t.Fatalf("%s worst slot empty", side)
			}
		} else if l.far.Len() > 0 {
			t.Fatalf("%s parks %d levels with no dense run", side, l.far.Len())
		}
		for i := l.head; i < l.head+l.n; i++ {
			if q := l.slots[i]; q != nil {
				if want := l.Best() - int64(i-l.head)*sideStep(side); q.price != want {
					t.Fatalf("%s slot %d holds price %d, want %d", side, i-l.head, q.price, want)
				}
			}
		}
		l.far.Scan(func(price int64, q *orderQueue) bool {
			if q.price != price {
				t.Fatalf("%s far key %d holds level %d", side, price, q.price)
			}
			if d := l.distance(l.Best(), price); d < l.window {
				t.Fatalf("%s level %d parked %d ticks from best, window %d", side, price, d, l.window)
			}
			return true
		})

		prev := NoPrice
		l.each(func(q *orderQueue) bool {
			if q.empty() {
				t.Fatalf("%s level %d kept empty", side, q.price)
			}
			if prev != NoPrice && !l.better(prev, q.price) {
				t.Fatalf("%s level %d visited after %d", side, q.price, prev)
			}
			prev = q.price
			var vol int64
			count := 0
			for o := q.front(); o != nil; o = o.next {
				e, ok := b.registry.get(o.ID)
				if !ok || e.order != o || e.location.AtMarket || e.location.Price != q.price {
					t.Fatalf("order %d not registered at %d", o.ID, q.price)
				}
				if o.Remaining() <= 0 {
					t.Fatalf("filled order %d still resting", o.ID)
				}
				vol += o.Remaining()
				count++
			}
			if vol != q.volume || count != q.count {
				t.Fatalf("level %d aggregates %d/%d, counted %d/%d", q.price, q.volume, q.count, vol, count)
			}
			live += count
			return true
		})
		if prev != l.Worst() {
			t.Fatalf("%s worst is %d, last level visited %d", side, l.Worst(), prev)
		}
		if n := b.AtMarketLen(side); n != 0 {
			t.Fatalf("%d %s market orders left resting", n, side)
		}
	}
	if live != b.Len() {
		t.Fatalf("registry holds %d orders, ladders hold %d", b.Len(), live)
	}
	if bid, ask := b.Best(Buy), b.Best(Sell); bid != NoPrice && ask != NoPrice && bid >= ask {
		t.Fatalf("book left crossed: bid %d ask %d", bid, ask)
	}
}

func sideStep(side Side) int64 {
	if side == Buy {
		return 1
	}
	return -1
}

func TestPropertyBookInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		window := rapid.SampledFrom([]int64{0, 2, 5}).Draw(t, "window")
		b, err := NewOrderBook(Config{Security: testSecurity, StartingPrice: 100, Collar: DefaultCollar, DenseLevels: window})
		if err != nil {
			t.Fatal(err)
		}
		placed := map[int64]Request{}
		traded := map[int64]int64{}

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			o := drawOp(t, b.NextID())
			if o.cancel {
				_ = b.CancelOrder(o.target)
				if _, _, ok := b.Order(o.target); ok {
					t.Fatalf("order %d still live after cancel", o.target)
				}
				checkBook(t, b)
				continue
			}

			before := b.NextID()
			id, execs, err := b.PlaceOrder(o.req)
			if err != nil {
				if id != UnassignedID || b.NextID() != before {
					t.Fatalf("rejected request consumed id %d", id)
				}
				checkBook(t, b)
				continue
			}
			if id != before {
				t.Fatalf("got id %d, want %d", id, before)
			}
			placed[id] = o.req

			for _, e := range execs {
				if e.Quantity <= 0 {
					t.Fatalf("empty execution %+v", e)
				}
				buy, sell := placed[e.BuyOrderID], placed[e.SellOrderID]
				if buy.Side != Buy || sell.Side != Sell {
					t.Fatalf("execution pairs wrong sides: %+v", e)
				}
				if buy.Kind == Limit && e.Price > buy.Price {
					t.Fatalf("buy %d paid %d above limit %d", e.BuyOrderID, e.Price, buy.Price)
				}
				if sell.Kind == Limit && e.Price < sell.Price {
					t.Fatalf("sell %d received %d below limit %d", e.SellOrderID, e.Price, sell.Price)
				}
				traded[e.BuyOrderID] += e.Quantity
				traded[e.SellOrderID] += e.Quantity
			}
			for oid, q := range traded {
				if q > placed[oid].Quantity {
					t.Fatalf("order %d traded %d of %d", oid, q, placed[oid].Quantity)
				}
				if live, _, ok := b.Order(oid); ok && live.Filled != q {
					t.Fatalf("order %d filled %d, executions say %d", oid, live.Filled, q)
				}
			}
			checkBook(t, b)
		}
	})
}

func TestPropertyDeterministicReplay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Config{
			Security:      testSecurity,
			StartingPrice: 100,
			Collar:        DefaultCollar,
			DenseLevels:   rapid.SampledFrom([]int64{0, 3}).Draw(t, "window"),
		}
		a, _ := NewOrderBook(cfg)
		b, _ := NewOrderBook(cfg)

		steps := rapid.IntRange(1, 100).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			o := drawOp(t, a.NextID())
			if o.cancel {
				ea, eb := a.CancelOrder(o.target), b.CancelOrder(o.target)
				if (ea == nil) != (eb == nil) {
					t.Fatalf("cancel %d diverged: %v vs %v", o.target, ea, eb)
				}
				continue
			}
			ida, xa, erra := a.PlaceOrder(o.req)
			idb, xb, errb := b.PlaceOrder(o.req)
			if ida != idb || len(xa) != len(xb) || (erra == nil) != (errb == nil) {
				t.Fatalf("place diverged: %d/%v vs %d/%v", ida, erra, idb, errb)
			}
			for i := range xa {
				if xa[i] != xb[i] {
					t.Fatalf("execution %d diverged: %+v vs %+v", i, xa[i], xb[i])
				}
			}
		}

		// A restored copy behaves like its source from here on.
		c, _ := NewOrderBook(cfg)
		if err := c.Restore(a.State()); err != nil {
			t.Fatal(err)
		}
		sweep := Request{Side: Sell, Kind: Market, Quantity: 50}
		_, xa, _ := a.PlaceOrder(sweep)
		_, xc, _ := c.PlaceOrder(sweep)
		if len(xa) != len(xc) {
			t.Fatalf("restored book executed %d, source %d", len(xc), len(xa))
		}
		for i := range xa {
			if xa[i] != xc[i] {
				t.Fatalf("restored execution %d diverged: %+v vs %+v", i, xc[i], xa[i])
			}
		}
	})
}
