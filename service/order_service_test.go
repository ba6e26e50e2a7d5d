package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"matchcore/domain/orderbook"
	"matchcore/infra/memory"
	"matchcore/infra/sequence"
	entrywal "matchcore/infra/wal/entry"
	exitwal "matchcore/infra/wal/exit"
	"matchcore/snapshot"
)

var security = orderbook.Security{ISIN: "FR0000120271", Name: "TotalEnergies"}

type harness struct {
	svc   *OrderService
	entry *entrywal.WAL
	exit  *exitwal.ExitWAL
}

// open builds a service over dir. Opening the same dir twice simulates a
// restart.
func open(t *testing.T, dir string) *harness {
	t.Helper()
	book, err := orderbook.NewOrderBook(orderbook.Config{
		Security:      security,
		StartingPrice: 100,
		Collar:        orderbook.DefaultCollar,
		Orders:        memory.NewPool[orderbook.Order](nil),
	})
	require.NoError(t, err)

	entry, err := entrywal.Open(entrywal.Config{Dir: filepath.Join(dir, "entry"), SegmentSize: 256})
	require.NoError(t, err)
	exit, err := exitwal.Open(filepath.Join(dir, "exit"))
	require.NoError(t, err)

	svc, err := NewOrderService(Config{
		Book:      book,
		Sequencer: sequence.New(0),
		EntryWAL:  entry,
		ExitWAL:   exit,
		Snapshots: &snapshot.Writer{Dir: filepath.Join(dir, "snapshots")},
		Logger:    zaptest.NewLogger(t),
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	})
	require.NoError(t, err)
	return &harness{svc: svc, entry: entry, exit: exit}
}

func (h *harness) close(t *testing.T) {
	t.Helper()
	require.NoError(t, h.entry.Close())
	require.NoError(t, h.exit.Close())
}

func limit(side orderbook.Side, price, qty int64) orderbook.Request {
	return orderbook.Request{Side: side, Kind: orderbook.Limit, Price: price, Quantity: qty}
}

func TestPlaceOrderLogsAppliesAndRecords(t *testing.T) {
	h := open(t, t.TempDir())
	defer h.close(t)
	ctx := context.Background()

	var reports []ExecutionReport
	h.svc.Subscribe(func(r ExecutionReport) { reports = append(reports, r) })

	buy, err := h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 98, 10))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), buy.Seq)
	assert.Equal(t, int64(1), buy.OrderID)
	assert.Empty(t, buy.Executions)

	sell, err := h.svc.PlaceOrder(ctx, limit(orderbook.Sell, 97, 5))
	require.NoError(t, err)
	require.Equal(t, []orderbook.Execution{{BuyOrderID: 1, SellOrderID: 2, Price: 98, Quantity: 5}}, sell.Executions)

	require.Len(t, reports, 1)
	assert.Equal(t, ExecutionReport{
		ISIN: security.ISIN, Seq: 2, Index: 0,
		BuyOrderID: 1, SellOrderID: 2, Price: 98, Quantity: 5,
		Time: time.Unix(1700000000, 0).UnixNano(),
	}, reports[0])

	rec, err := h.exit.Get(exitwal.Key{Seq: 2})
	require.NoError(t, err)
	assert.Equal(t, exitwal.StateNew, rec.State)
	assert.Equal(t, sell.Executions[0], rec.Execution)

	assert.Equal(t, uint64(2), h.entry.LastSeq())
	top := h.svc.Top()
	assert.Equal(t, Top{MarketPrice: 98, BestBid: 98, WorstBid: 98}, top)
}

func TestRejectedPlaceIsLoggedWithoutConsumingID(t *testing.T) {
	h := open(t, t.TempDir())
	defer h.close(t)
	ctx := context.Background()

	res, err := h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 98, 0))
	require.ErrorIs(t, err, orderbook.ErrInvalidQuantity)
	assert.Equal(t, orderbook.UnassignedID, res.OrderID)
	assert.Equal(t, uint64(1), res.Seq)

	res, err = h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 98, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.OrderID)
	assert.Equal(t, uint64(2), h.entry.LastSeq())
}

func TestCancelOrder(t *testing.T) {
	h := open(t, t.TempDir())
	defer h.close(t)
	ctx := context.Background()

	res, err := h.svc.PlaceOrder(ctx, limit(orderbook.Sell, 101, 3))
	require.NoError(t, err)

	_, err = h.svc.CancelOrder(ctx, res.OrderID)
	require.NoError(t, err)
	_, _, ok := h.svc.Order(res.OrderID)
	assert.False(t, ok)

	_, err = h.svc.CancelOrder(ctx, res.OrderID)
	require.ErrorIs(t, err, orderbook.ErrOrderNotFound)
}

func TestOutboxFailureHaltsService(t *testing.T) {
	h := open(t, t.TempDir())
	defer func() { require.NoError(t, h.entry.Close()) }()
	ctx := context.Background()

	buy, err := h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 98, 10))
	require.NoError(t, err)
	require.NoError(t, h.svc.Halted())

	require.NoError(t, h.exit.Close())
	res, err := h.svc.PlaceOrder(ctx, limit(orderbook.Sell, 97, 5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHalted), err.Error())
	assert.Equal(t, int64(2), res.OrderID, "the book applied the crossing order before the outbox failed")
	require.Error(t, h.svc.Halted())
	assert.ErrorIs(t, h.svc.Halted(), ErrHalted)

	_, err = h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 90, 1))
	assert.ErrorIs(t, err, ErrHalted)
	_, err = h.svc.CancelOrder(ctx, buy.OrderID)
	assert.ErrorIs(t, err, ErrHalted)

	live, _, ok := h.svc.Order(buy.OrderID)
	require.True(t, ok, "halted commands are not applied")
	assert.Equal(t, int64(5), live.Filled)
}

func TestCancelledContextIsNotLogged(t *testing.T) {
	h := open(t, t.TempDir())
	defer h.close(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 98, 1))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, h.entry.LastSeq())
}

func TestBookView(t *testing.T) {
	h := open(t, t.TempDir())
	defer h.close(t)
	ctx := context.Background()

	for _, req := range []orderbook.Request{
		limit(orderbook.Buy, 99, 2),
		limit(orderbook.Buy, 99, 1),
		limit(orderbook.Buy, 95, 4),
		limit(orderbook.Sell, 103, 5),
	} {
		_, err := h.svc.PlaceOrder(ctx, req)
		require.NoError(t, err)
	}

	v := h.svc.Book(1)
	assert.Equal(t, security, v.Security)
	assert.Equal(t, []orderbook.Level{{Price: 99, Quantity: 3, Orders: 2}}, v.Bids)
	assert.Equal(t, []orderbook.Level{{Price: 103, Quantity: 5, Orders: 1}}, v.Asks)
	assert.Equal(t, int64(5), v.NextID)
	assert.Len(t, h.svc.Book(0).Bids, 2)
}

func TestRecoverReplaysEntryWAL(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	h := open(t, dir)
	_, err := h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 99, 10))
	require.NoError(t, err)
	_, err = h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 10, 1)) // out of band
	require.Error(t, err)
	_, err = h.svc.PlaceOrder(ctx, limit(orderbook.Sell, 99, 4))
	require.NoError(t, err)
	_, err = h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 97, 2))
	require.NoError(t, err)
	_, err = h.svc.CancelOrder(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, h.exit.MarkAcked(exitwal.Key{Seq: 3}))
	before := h.svc.Book(0)
	h.close(t)

	h = open(t, dir)
	defer h.close(t)
	last, err := h.svc.Recover()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), last)
	assert.Equal(t, before, h.svc.Book(0))

	rec, err := h.exit.Get(exitwal.Key{Seq: 3})
	require.NoError(t, err)
	assert.Equal(t, exitwal.StateAcked, rec.State, "replay must not reset delivered executions")

	res, err := h.svc.PlaceOrder(ctx, limit(orderbook.Sell, 105, 1))
	require.NoError(t, err)
	assert.Equal(t, uint64(6), res.Seq)
	assert.Equal(t, int64(4), res.OrderID)
}

func TestRecoverFromSnapshotAndTail(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	h := open(t, dir)
	for i := 0; i < 20; i++ {
		_, err := h.svc.PlaceOrder(ctx, limit(orderbook.Buy, 90+int64(i%5), 1))
		require.NoError(t, err)
	}
	seq, err := h.svc.TakeSnapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(20), seq)

	_, err = h.svc.PlaceOrder(ctx, orderbook.Request{Side: orderbook.Sell, Kind: orderbook.Market, Quantity: 3})
	require.NoError(t, err)
	_, err = h.svc.CancelOrder(ctx, 20)
	require.NoError(t, err)
	before := h.svc.Book(0)
	h.close(t)

	h = open(t, dir)
	defer h.close(t)
	last, err := h.svc.Recover()
	require.NoError(t, err)
	assert.Equal(t, uint64(22), last)
	assert.Equal(t, before, h.svc.Book(0))

	counts, err := h.exit.Counts()
	require.NoError(t, err)
	assert.Equal(t, 3, counts[exitwal.StateNew])
}

func TestRecoverNeedsFreshBook(t *testing.T) {
	h := open(t, t.TempDir())
	defer h.close(t)
	_, err := h.svc.PlaceOrder(context.Background(), limit(orderbook.Buy, 99, 1))
	require.NoError(t, err)

	_, err = h.svc.Recover()
	require.Error(t, err)
}

func TestSnapshotJobStopsWithContext(t *testing.T) {
	h := open(t, t.TempDir())
	defer h.close(t)
	_, err := h.svc.PlaceOrder(context.Background(), limit(orderbook.Buy, 99, 1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := h.svc.StartSnapshotJob(ctx, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		seqs, err := snapshot.List(h.svc.snapshots.Dir)
		return err == nil && len(seqs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot job did not stop")
	}
}
