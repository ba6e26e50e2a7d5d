// Package metrics exposes engine counters to Prometheus.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"matchcore/domain/orderbook"
)

const namespace = "matchcore"

type Metrics struct {
	registry *prometheus.Registry

	OrdersPlaced    *prometheus.CounterVec
	OrdersRejected  *prometheus.CounterVec
	OrdersCancelled prometheus.Counter
	CancelMisses    prometheus.Counter
	Executions      prometheus.Counter
	ExecutedVolume  prometheus.Counter
	RoundSize       prometheus.Histogram
	MarketPrice     prometheus.Gauge
	RestingOrders   prometheus.Gauge
	OutboxPublished prometheus.Counter
	OutboxFailures  prometheus.Counter
	Snapshots       prometheus.Counter
}

// New registers every collector on a fresh registry, so several engines
// can live in one process (and one test binary).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OrdersPlaced: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Admitted orders by side and kind.",
		}, []string{"side", "kind"}),
		OrdersRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_rejected_total",
			Help:      "Rejected place requests by reason.",
		}, []string{"reason"}),
		OrdersCancelled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_cancelled_total",
			Help:      "Successful cancellations.",
		}),
		CancelMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancel_not_found_total",
			Help:      "Cancellations for unknown, filled or already cancelled orders.",
		}),
		Executions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "executions_total",
			Help:      "Executions produced.",
		}),
		ExecutedVolume: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "executed_quantity_total",
			Help:      "Sum of executed quantities.",
		}),
		RoundSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "executions_per_round",
			Help:      "Executions produced by one crossing order.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}),
		MarketPrice: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "market_price",
			Help:      "Price of the most recent execution.",
		}),
		RestingOrders: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resting_orders",
			Help:      "Live orders in the book.",
		}),
		OutboxPublished: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Execution reports acknowledged by the broker.",
		}),
		OutboxFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_publish_failures_total",
			Help:      "Failed publication attempts.",
		}),
		Snapshots: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_total",
			Help:      "Snapshots written.",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObservePlace records the outcome of one place request.
func (m *Metrics) ObservePlace(req orderbook.Request, execs []orderbook.Execution, err error) {
	if err != nil {
		m.OrdersRejected.WithLabelValues(RejectReason(err)).Inc()
		return
	}
	m.OrdersPlaced.WithLabelValues(req.Side.String(), req.Kind.String()).Inc()
	if len(execs) == 0 {
		return
	}
	m.RoundSize.Observe(float64(len(execs)))
	m.Executions.Add(float64(len(execs)))
	var qty int64
	for _, e := range execs {
		qty += e.Quantity
	}
	m.ExecutedVolume.Add(float64(qty))
	m.MarketPrice.Set(float64(execs[len(execs)-1].Price))
}

func (m *Metrics) ObserveCancel(err error) {
	if err != nil {
		m.CancelMisses.Inc()
		return
	}
	m.OrdersCancelled.Inc()
}

// RejectReason maps a place error to a stable label value.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, orderbook.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, orderbook.ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, orderbook.ErrInvalidSide):
		return "invalid_side"
	case errors.Is(err, orderbook.ErrInvalidKind):
		return "invalid_kind"
	case errors.Is(err, orderbook.ErrPriceOutOfBand):
		return "price_out_of_band"
	default:
		return "other"
	}
}
