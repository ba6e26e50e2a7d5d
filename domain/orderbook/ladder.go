package orderbook

import "github.com/tidwall/btree"

const minLadderCapacity = 16

// DefaultDenseLevels is the tick span a ladder keeps densely indexed from
// its best price.
const DefaultDenseLevels = 1 << 16

// Ladder is one side of the book. Levels within window ticks of the best
// price live in a dense run of slots, one per tick: slots[head] is the best
// level and slots[head+n-1] the worst densely held one. Interior slots with
// no orders are nil; the two extremal dense slots are never empty while
// n > 0.
//
// Levels window or more ticks behind the best are parked in far, ordered by
// price, and move into the dense run once the best price comes within
// reach. An empty dense run implies an empty far map.
type Ladder struct {
	side   Side
	window int64

	slots []*orderQueue
	head  int
	n     int

	far *btree.Map[int64, *orderQueue]
}

func newLadder(side Side, window int64) *Ladder {
	if window <= 0 {
		window = DefaultDenseLevels
	}
	return &Ladder{
		side:   side,
		window: window,
		far:    btree.NewMap[int64, *orderQueue](32),
	}
}

func (l *Ladder) Side() Side {
	return l.side
}

// Empty reports whether the side has no resting limit orders.
func (l *Ladder) Empty() bool {
	return l.n == 0
}

// Best is the most aggressive resting price, or NoPrice.
func (l *Ladder) Best() int64 {
	if l.n == 0 {
		return NoPrice
	}
	return l.slots[l.head].price
}

// Worst is the least aggressive resting price, or NoPrice.
func (l *Ladder) Worst() int64 {
	if q := l.farWorst(); q != nil {
		return q.price
	}
	if l.n == 0 {
		return NoPrice
	}
	return l.slots[l.head+l.n-1].price
}

// Width is the number of ticks spanned by [best, worst].
func (l *Ladder) Width() int64 {
	if l.n == 0 {
		return 0
	}
	return l.distance(l.Best(), l.Worst()) + 1
}

// Dense is the number of tick slots currently indexed directly.
func (l *Ladder) Dense() int {
	return l.n
}

// Far is the number of levels parked outside the dense window.
func (l *Ladder) Far() int {
	return l.far.Len()
}

// better reports whether a is strictly more aggressive than b on this side.
func (l *Ladder) better(a, b int64) bool {
	if l.side == Buy {
		return a > b
	}
	return a < b
}

// distance is the tick count from a to the less aggressive b.
func (l *Ladder) distance(a, b int64) int64 {
	if l.side == Buy {
		return a - b
	}
	return b - a
}

// classify says where a limit price would land without touching the ladder.
func (l *Ladder) classify(price int64) placement {
	if l.n == 0 {
		return placeFirst
	}
	switch best, worst := l.Best(), l.Worst(); {
	case l.better(price, best):
		return placeNewBest
	case l.better(worst, price):
		return placeNewWorst
	case price == best:
		return placeAtBest
	default:
		return placeInside
	}
}

// level returns the queue resting at price, or nil.
func (l *Ladder) level(price int64) *orderQueue {
	if l.n == 0 {
		return nil
	}
	off := l.distance(l.Best(), price)
	switch {
	case off < 0:
		return nil
	case off < int64(l.n):
		return l.slots[l.head+int(off)]
	case off >= l.window:
		q, _ := l.far.Get(price)
		return q
	default:
		return nil
	}
}

// front returns the best level, or nil on an empty side.
func (l *Ladder) front() *orderQueue {
	if l.n == 0 {
		return nil
	}
	return l.slots[l.head]
}

// insert queues o at its limit price, extending the ladder when needed, and
// reports whether o now sits at the best level.
func (l *Ladder) insert(o *Order) bool {
	price := o.Price
	switch l.classify(price) {
	case placeFirst:
		l.placeFirst(newLevel(price))
		l.slots[l.head].push(o)
		return true
	case placeNewBest:
		k := l.distance(price, l.Best())
		l.park(k)
		if l.n == 0 {
			l.placeFirst(newLevel(price))
		} else {
			l.reserve(int(k), 0)
			l.head -= int(k)
			l.n += int(k)
			l.slots[l.head] = newLevel(price)
		}
		l.slots[l.head].push(o)
		return true
	}

	off := l.distance(l.Best(), price)
	if off >= l.window {
		q, ok := l.far.Get(price)
		if !ok {
			q = newLevel(price)
			l.far.Set(price, q)
		}
		q.push(o)
		return false
	}
	if off >= int64(l.n) {
		l.reserve(0, int(off)-l.n+1)
		l.n = int(off) + 1
	}
	i := l.head + int(off)
	if l.slots[i] == nil {
		l.slots[i] = newLevel(price)
	}
	l.slots[i].push(o)
	return i == l.head
}

// remove unlinks o and trims the ladder if its level emptied at either end.
func (l *Ladder) remove(o *Order) {
	q := o.queue
	if q == nil {
		panic("orderbook: removing an order that is not queued")
	}
	off := l.distance(l.Best(), q.price)
	if l.n == 0 || off < 0 {
		panic("orderbook: order level lies outside the ladder")
	}
	if off >= int64(l.n) {
		if fq, ok := l.far.Get(q.price); !ok || fq != q {
			panic("orderbook: far map does not hold the order's level")
		}
		q.unlink(o)
		if q.empty() {
			l.far.Delete(q.price)
		}
		return
	}

	i := l.head + int(off)
	if l.slots[i] != q {
		panic("orderbook: ladder slot does not hold the order's level")
	}
	q.unlink(o)
	if !q.empty() {
		return
	}
	l.slots[i] = nil
	moved := false
	for l.n > 0 && l.slots[l.head] == nil {
		l.head++
		l.n--
		moved = true
	}
	for l.n > 0 && l.slots[l.head+l.n-1] == nil {
		l.n--
	}
	if l.n == 0 {
		l.head = len(l.slots) / 2
	}
	if moved {
		l.unpark()
	}
}

// placeFirst starts an empty dense run with q as its only level.
func (l *Ladder) placeFirst(q *orderQueue) {
	l.reserve(1, 0)
	l.head--
	l.n = 1
	l.slots[l.head] = q
}

// park moves dense levels that fall window or more ticks behind a new best
// price, k ticks ahead of the current one, into the far map.
func (l *Ladder) park(k int64) {
	keep := 0
	if k < l.window {
		keep = int(min(int64(l.n), l.window-k))
	}
	for i := l.head + keep; i < l.head+l.n; i++ {
		if q := l.slots[i]; q != nil {
			l.far.Set(q.price, q)
			l.slots[i] = nil
		}
	}
	l.n = keep
	for l.n > 0 && l.slots[l.head+l.n-1] == nil {
		l.n--
	}
	if l.n == 0 {
		l.head = len(l.slots) / 2
	}
}

// unpark pulls far levels that the best price has come within reach of
// back into the dense run. On an emptied run the nearest far level becomes
// the new best.
func (l *Ladder) unpark() {
	for {
		q := l.farBest()
		if q == nil {
			return
		}
		if l.n == 0 {
			l.far.Delete(q.price)
			l.placeFirst(q)
			continue
		}
		off := l.distance(l.Best(), q.price)
		if off >= l.window {
			return
		}
		l.far.Delete(q.price)
		l.reserve(0, int(off)-l.n+1)
		l.n = int(off) + 1
		l.slots[l.head+l.n-1] = q
	}
}

// farBest is the most aggressive parked level.
func (l *Ladder) farBest() *orderQueue {
	var q *orderQueue
	if l.side == Buy {
		_, q, _ = l.far.Max()
	} else {
		_, q, _ = l.far.Min()
	}
	return q
}

// farWorst is the least aggressive parked level.
func (l *Ladder) farWorst() *orderQueue {
	var q *orderQueue
	if l.side == Buy {
		_, q, _ = l.far.Min()
	} else {
		_, q, _ = l.far.Max()
	}
	return q
}

// reserve guarantees room for front new slots before head and back new
// slots after the worst dense one, re-centering into a larger buffer if
// needed.
func (l *Ladder) reserve(front, back int) {
	if l.head >= front && l.head+l.n+back <= len(l.slots) {
		return
	}
	need := l.n + front + back
	size := max(2*need, minLadderCapacity)
	slots := make([]*orderQueue, size)
	head := (size-need)/2 + front
	copy(slots[head:], l.slots[l.head:l.head+l.n])
	l.slots = slots
	l.head = head
}

// each visits non-empty levels from best to worst until fn returns false.
func (l *Ladder) each(fn func(q *orderQueue) bool) {
	for i := l.head; i < l.head+l.n; i++ {
		if q := l.slots[i]; q != nil {
			if !fn(q) {
				return
			}
		}
	}
	visit := func(_ int64, q *orderQueue) bool { return fn(q) }
	if l.side == Buy {
		l.far.Reverse(visit)
	} else {
		l.far.Scan(visit)
	}
}

type placement int

const (
	placeFirst placement = iota
	placeNewBest
	placeNewWorst
	placeAtBest
	placeInside
)
