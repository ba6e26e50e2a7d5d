package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchcore/domain/orderbook"
)

var _ orderbook.Allocator = (*Pool[orderbook.Order])(nil)

func TestPoolResetsReleasedObjects(t *testing.T) {
	p := NewPool[orderbook.Order](nil)

	o := p.Get()
	require.NotNil(t, o)
	o.ID = 42
	o.Quantity = 7
	p.Put(o)

	assert.Equal(t, orderbook.Order{}, *o, "released order must be zeroed")
}

func TestPoolCustomReset(t *testing.T) {
	calls := 0
	p := NewPool(func(v *[]int) {
		calls++
		*v = (*v)[:0]
	})
	v := p.Get()
	*v = append(*v, 1, 2, 3)
	p.Put(v)

	assert.Equal(t, 1, calls)
	assert.Empty(t, *v)
}

func TestPoolStats(t *testing.T) {
	p := NewPool[orderbook.Order](nil)

	a, b := p.Get(), p.Get()
	p.Put(a)
	p.Put(nil)

	s := p.Stats()
	assert.Equal(t, uint64(2), s.Gets)
	assert.Equal(t, uint64(1), s.Released)
	assert.Equal(t, uint64(1), s.InUse())
	assert.GreaterOrEqual(t, s.Allocated, uint64(2))
	_ = b
}

func TestPoolBacksOrderBook(t *testing.T) {
	p := NewPool[orderbook.Order](nil)
	book, err := orderbook.NewOrderBook(orderbook.Config{
		Security:      orderbook.Security{ISIN: "X"},
		StartingPrice: 100,
		Orders:        p,
	})
	require.NoError(t, err)

	id, _, err := book.PlaceOrder(orderbook.Request{Side: orderbook.Buy, Kind: orderbook.Limit, Price: 99, Quantity: 1})
	require.NoError(t, err)
	_, _, err = book.PlaceOrder(orderbook.Request{Side: orderbook.Sell, Kind: orderbook.Market, Quantity: 3})
	require.NoError(t, err)

	_, _, ok := book.Order(id)
	assert.False(t, ok)
	assert.Equal(t, uint64(0), p.Stats().InUse())
}
