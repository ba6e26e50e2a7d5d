package orderbook

// orderQueue is a FIFO of orders linked through the orders themselves.
// The order pointer doubles as the position token: unlink is O(1) and never
// disturbs the position of any other order.
type orderQueue struct {
	price int64 // NoPrice for at-market queues

	head *Order
	tail *Order

	count  int
	volume int64 // remaining quantity
}

func newLevel(price int64) *orderQueue {
	return &orderQueue{price: price}
}

func (q *orderQueue) push(o *Order) {
	if o.queue != nil {
		panic("orderbook: order already queued")
	}
	o.queue = q
	if q.head == nil {
		q.head = o
		q.tail = o
	} else {
		q.tail.next = o
		o.prev = q.tail
		q.tail = o
	}
	q.count++
	q.volume += o.Remaining()
}

func (q *orderQueue) unlink(o *Order) {
	if o.queue != q {
		panic("orderbook: order not in this queue")
	}
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		q.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		q.tail = o.prev
	}
	q.count--
	q.volume -= o.Remaining()

	o.queue = nil
	o.next = nil
	o.prev = nil
}

func (q *orderQueue) front() *Order {
	return q.head
}

func (q *orderQueue) empty() bool {
	return q.head == nil
}
