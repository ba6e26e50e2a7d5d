package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadderFirstInsert(t *testing.T) {
	l := newLadder(Sell, 0)
	require.True(t, l.Empty())
	assert.Equal(t, NoPrice, l.Best())
	assert.Equal(t, NoPrice, l.Worst())

	assert.True(t, l.insert(&Order{ID: 1, Side: Sell, Price: 50, Quantity: 1}))
	assert.Equal(t, int64(50), l.Best())
	assert.Equal(t, int64(50), l.Worst())
	assert.Equal(t, int64(1), l.Width())
}

func TestLadderGrowsBothEnds(t *testing.T) {
	l := newLadder(Buy, 0)
	l.insert(&Order{ID: 1, Side: Buy, Price: 1000, Quantity: 1})

	// Far beyond minLadderCapacity in both directions.
	l.insert(&Order{ID: 2, Side: Buy, Price: 1100, Quantity: 1})
	l.insert(&Order{ID: 3, Side: Buy, Price: 900, Quantity: 1})

	assert.Equal(t, int64(1100), l.Best())
	assert.Equal(t, int64(900), l.Worst())
	assert.Equal(t, int64(201), l.Width())

	var prices []int64
	l.each(func(q *orderQueue) bool {
		prices = append(prices, q.price)
		return true
	})
	assert.Equal(t, []int64{1100, 1000, 900}, prices)

	require.NotNil(t, l.level(1000))
	assert.Nil(t, l.level(1001))
	assert.Nil(t, l.level(1101))
}

func TestLadderClassify(t *testing.T) {
	l := newLadder(Sell, 0)
	assert.Equal(t, placeFirst, l.classify(10))

	l.insert(&Order{ID: 1, Side: Sell, Price: 10, Quantity: 1})
	l.insert(&Order{ID: 2, Side: Sell, Price: 14, Quantity: 1})

	assert.Equal(t, placeNewBest, l.classify(9))
	assert.Equal(t, placeAtBest, l.classify(10))
	assert.Equal(t, placeInside, l.classify(12))
	assert.Equal(t, placeInside, l.classify(14))
	assert.Equal(t, placeNewWorst, l.classify(15))
}

func TestLadderRemoveTrimsToNextPopulatedLevel(t *testing.T) {
	l := newLadder(Sell, 0)
	a := &Order{ID: 1, Side: Sell, Price: 10, Quantity: 1}
	b := &Order{ID: 2, Side: Sell, Price: 13, Quantity: 1}
	c := &Order{ID: 3, Side: Sell, Price: 20, Quantity: 1}
	l.insert(a)
	l.insert(b)
	l.insert(c)

	l.remove(a)
	assert.Equal(t, int64(13), l.Best())
	assert.Equal(t, int64(8), l.Width())

	l.remove(c)
	assert.Equal(t, int64(13), l.Worst())
	assert.Equal(t, int64(1), l.Width())

	l.remove(b)
	assert.True(t, l.Empty())
	assert.Equal(t, NoPrice, l.Best())

	// Reuse after a full drain.
	assert.True(t, l.insert(&Order{ID: 4, Side: Sell, Price: 500, Quantity: 1}))
	assert.Equal(t, int64(500), l.Worst())
}

func TestLadderRemoveKeepsSharedLevel(t *testing.T) {
	l := newLadder(Buy, 0)
	a := &Order{ID: 1, Side: Buy, Price: 10, Quantity: 2}
	b := &Order{ID: 2, Side: Buy, Price: 10, Quantity: 3}
	l.insert(a)
	assert.True(t, l.insert(b))

	l.remove(a)
	q := l.front()
	require.NotNil(t, q)
	assert.Same(t, b, q.front())
	assert.Equal(t, 1, q.count)
	assert.Equal(t, int64(3), q.volume)
}

func TestLadderRemovePanicsOnForeignOrder(t *testing.T) {
	l := newLadder(Buy, 0)
	assert.Panics(t, func() { l.remove(&Order{ID: 9, Side: Buy, Price: 10, Quantity: 1}) })
}

func TestLadderParksLevelsBeyondWindow(t *testing.T) {
	l := newLadder(Buy, 4)
	a := &Order{ID: 1, Side: Buy, Price: 100, Quantity: 1}
	b := &Order{ID: 2, Side: Buy, Price: 90, Quantity: 1}
	c := &Order{ID: 3, Side: Buy, Price: 98, Quantity: 1}
	l.insert(a)
	assert.False(t, l.insert(b))
	l.insert(c)

	assert.Equal(t, int64(100), l.Best())
	assert.Equal(t, int64(90), l.Worst())
	assert.Equal(t, int64(11), l.Width())
	assert.Equal(t, 3, l.Dense())
	assert.Equal(t, 1, l.Far())
	assert.Same(t, b, l.level(90).front())
	assert.Nil(t, l.level(95))

	// A new best pushes 98 out of the window as well.
	d := &Order{ID: 4, Side: Buy, Price: 102, Quantity: 1}
	assert.True(t, l.insert(d))
	assert.Equal(t, 3, l.Dense())
	assert.Equal(t, 2, l.Far())

	var prices []int64
	l.each(func(q *orderQueue) bool {
		prices = append(prices, q.price)
		return true
	})
	assert.Equal(t, []int64{102, 100, 98, 90}, prices)
}

func TestLadderUnparksAsBestRetreats(t *testing.T) {
	l := newLadder(Sell, 3)
	a := &Order{ID: 1, Side: Sell, Price: 10, Quantity: 1}
	b := &Order{ID: 2, Side: Sell, Price: 14, Quantity: 1}
	c := &Order{ID: 3, Side: Sell, Price: 40, Quantity: 1}
	l.insert(a)
	l.insert(b)
	l.insert(c)
	require.Equal(t, 2, l.Far())

	l.remove(a)
	assert.Equal(t, int64(14), l.Best())
	assert.Equal(t, 1, l.Dense())
	assert.Equal(t, 1, l.Far())

	l.remove(b)
	assert.Equal(t, int64(40), l.Best(), "nearest parked level takes over")
	assert.Equal(t, int64(40), l.Worst())
	assert.Zero(t, l.Far())

	l.remove(c)
	assert.True(t, l.Empty())
}

func TestLadderRemoveFromFarLevel(t *testing.T) {
	l := newLadder(Sell, 2)
	a := &Order{ID: 1, Side: Sell, Price: 10, Quantity: 1}
	b := &Order{ID: 2, Side: Sell, Price: 20, Quantity: 1}
	c := &Order{ID: 3, Side: Sell, Price: 20, Quantity: 2}
	l.insert(a)
	l.insert(b)
	l.insert(c)

	l.remove(b)
	require.Equal(t, 1, l.Far())
	assert.Equal(t, int64(2), l.level(20).volume)
	l.remove(c)
	assert.Zero(t, l.Far())
	assert.Equal(t, int64(10), l.Worst())
	assert.Nil(t, l.level(20))
}

func TestQueuePushTwicePanics(t *testing.T) {
	q := newLevel(10)
	o := &Order{ID: 1, Quantity: 1}
	q.push(o)
	assert.Panics(t, func() { q.push(o) })
}
