package metrics

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchcore/domain/orderbook"
)

func TestObservePlace(t *testing.T) {
	m := New()
	buy := orderbook.Request{Side: orderbook.Buy, Kind: orderbook.Limit, Price: 10, Quantity: 5}

	m.ObservePlace(buy, []orderbook.Execution{
		{BuyOrderID: 2, SellOrderID: 1, Price: 9, Quantity: 2},
		{BuyOrderID: 2, SellOrderID: 3, Price: 10, Quantity: 3},
	}, nil)
	m.ObservePlace(buy, nil, fmt.Errorf("wrapped: %w", orderbook.ErrPriceOutOfBand))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("buy", "limit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersRejected.WithLabelValues("price_out_of_band")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Executions))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.ExecutedVolume))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.MarketPrice))
}

func TestObserveCancel(t *testing.T) {
	m := New()
	m.ObserveCancel(nil)
	m.ObserveCancel(orderbook.ErrOrderNotFound)
	m.ObserveCancel(orderbook.ErrOrderNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersCancelled))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CancelMisses))
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "invalid_quantity", RejectReason(orderbook.ErrInvalidQuantity))
	assert.Equal(t, "invalid_side", RejectReason(orderbook.ErrInvalidSide))
	assert.Equal(t, "other", RejectReason(io.EOF))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.OrdersCancelled.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "matchcore_orders_cancelled_total 1")
}
