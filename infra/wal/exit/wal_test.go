package exit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchcore/domain/orderbook"
)

func openTest(t *testing.T) *ExitWAL {
	t.Helper()
	w, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func execs(n int) []orderbook.Execution {
	out := make([]orderbook.Execution, n)
	for i := range out {
		out[i] = orderbook.Execution{BuyOrderID: int64(i + 1), SellOrderID: 100, Price: int64(50 + i), Quantity: 2}
	}
	return out
}

func TestPutNewAndGet(t *testing.T) {
	w := openTest(t)

	added, err := w.PutNew(7, 1234, execs(2))
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	rec, err := w.Get(Key{Seq: 7, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, StateNew, rec.State)
	assert.Equal(t, int64(1234), rec.Time)
	assert.Equal(t, orderbook.Execution{BuyOrderID: 2, SellOrderID: 100, Price: 51, Quantity: 2}, rec.Execution)

	_, err = w.Get(Key{Seq: 8})
	assert.Error(t, err)
}

func TestPutNewDoesNotResetDelivered(t *testing.T) {
	w := openTest(t)

	_, err := w.PutNew(3, 1, execs(2))
	require.NoError(t, err)
	require.NoError(t, w.MarkAcked(Key{Seq: 3, Index: 0}))

	added, err := w.PutNew(3, 1, execs(2))
	require.NoError(t, err)
	assert.Zero(t, added)

	rec, err := w.Get(Key{Seq: 3, Index: 0})
	require.NoError(t, err)
	assert.Equal(t, StateAcked, rec.State)
}

func TestStateTransitionsAndScan(t *testing.T) {
	w := openTest(t)
	_, err := w.PutNew(1, 1, execs(1))
	require.NoError(t, err)
	_, err = w.PutNew(2, 1, execs(2))
	require.NoError(t, err)

	require.NoError(t, w.MarkSent(Key{Seq: 1}))
	require.NoError(t, w.MarkFailed(Key{Seq: 2, Index: 1}))
	require.NoError(t, w.MarkFailed(Key{Seq: 2, Index: 1}))

	rec, err := w.Get(Key{Seq: 2, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, StateFailed, rec.State)
	assert.Equal(t, uint32(2), rec.Retries)
	assert.Positive(t, rec.LastAttempt)
	assert.Equal(t, int64(51), rec.Execution.Price, "payload survives state updates")

	var sent []Key
	require.NoError(t, w.ScanByState(StateSent, func(k Key, _ ExitRecord) error {
		sent = append(sent, k)
		return nil
	}))
	assert.Equal(t, []Key{{Seq: 1}}, sent)

	var pending []Key
	require.NoError(t, w.Pending(0, func(k Key, _ ExitRecord) error {
		pending = append(pending, k)
		return nil
	}))
	assert.Equal(t, []Key{{Seq: 1}, {Seq: 2, Index: 0}, {Seq: 2, Index: 1}}, pending)

	require.NoError(t, w.MarkAcked(Key{Seq: 1}))

	pending = pending[:0]
	require.NoError(t, w.Pending(1, func(k Key, _ ExitRecord) error {
		pending = append(pending, k)
		return nil
	}))
	assert.Len(t, pending, 1)
}

func TestKeysSortNumerically(t *testing.T) {
	w := openTest(t)
	for _, seq := range []uint64{10, 9, 100, 2} {
		_, err := w.PutNew(seq, 0, execs(1))
		require.NoError(t, err)
	}

	var seqs []uint64
	require.NoError(t, w.ScanByState(StateNew, func(k Key, _ ExitRecord) error {
		seqs = append(seqs, k.Seq)
		return nil
	}))
	assert.Equal(t, []uint64{2, 9, 10, 100}, seqs)
}

func TestDeleteAckedUpTo(t *testing.T) {
	w := openTest(t)
	for seq := uint64(1); seq <= 4; seq++ {
		_, err := w.PutNew(seq, 0, execs(1))
		require.NoError(t, err)
	}
	require.NoError(t, w.MarkAcked(Key{Seq: 1}))
	require.NoError(t, w.MarkAcked(Key{Seq: 3}))
	require.NoError(t, w.MarkAcked(Key{Seq: 4}))

	n, err := w.DeleteAckedUpTo(3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	counts, err := w.Counts()
	require.NoError(t, err)
	assert.Equal(t, map[ExitState]int{StateNew: 1, StateAcked: 1}, counts)
}

func TestClosedWALReturnsErrClosed(t *testing.T) {
	w, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.PutNew(1, 1, execs(1))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = w.Get(Key{Seq: 1})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, w.MarkAcked(Key{Seq: 1}), ErrClosed)
	assert.ErrorIs(t, w.Pending(0, func(Key, ExitRecord) error { return nil }), ErrClosed)
	assert.ErrorIs(t, w.Close(), ErrClosed)
}
