package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"matchcore/domain/orderbook"
	"matchcore/infra/metrics"
	"matchcore/infra/sequence"
	entrywal "matchcore/infra/wal/entry"
	exitwal "matchcore/infra/wal/exit"
	"matchcore/snapshot"
)

// ErrHalted is returned once a durability failure has left the book ahead
// of the logs. The process must restart and recover.
var ErrHalted = errors.New("service halted")

type Config struct {
	Book      *orderbook.OrderBook
	Sequencer *sequence.Sequencer
	EntryWAL  *entrywal.WAL
	ExitWAL   *exitwal.ExitWAL
	Snapshots *snapshot.Writer

	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// Now stamps WAL records. Nil means time.Now.
	Now func() time.Time
}

// OrderService serialises every command behind one mutex, so the book
// sees exactly the order recorded in the entry WAL.
type OrderService struct {
	mu     sync.Mutex
	halted error

	book      *orderbook.OrderBook
	seqGen    *sequence.Sequencer
	entryWAL  *entrywal.WAL
	exitWAL   *exitwal.ExitWAL
	snapshots *snapshot.Writer

	log       *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
	listeners []ExecutionListener
}

func NewOrderService(cfg Config) (*OrderService, error) {
	if cfg.Book == nil || cfg.Sequencer == nil || cfg.EntryWAL == nil || cfg.ExitWAL == nil {
		return nil, errors.New("service: book, sequencer and both WALs are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &OrderService{
		book:      cfg.Book,
		seqGen:    cfg.Sequencer,
		entryWAL:  cfg.EntryWAL,
		exitWAL:   cfg.ExitWAL,
		snapshots: cfg.Snapshots,
		log:       cfg.Logger.Named("service"),
		metrics:   cfg.Metrics,
		now:       cfg.Now,
	}, nil
}

// Subscribe registers fn for every execution produced after the call.
func (s *OrderService) Subscribe(fn ExecutionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

type PlaceResult struct {
	Seq        uint64
	OrderID    int64
	Executions []orderbook.Execution
}

// PlaceOrder logs req and applies it. Book rejections are returned as the
// book's sentinel errors with OrderID set to orderbook.UnassignedID; the
// request is still logged so replay reproduces the same id sequence.
func (s *OrderService) PlaceOrder(ctx context.Context, req orderbook.Request) (PlaceResult, error) {
	if err := ctx.Err(); err != nil {
		return PlaceResult{OrderID: orderbook.UnassignedID}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := PlaceResult{OrderID: orderbook.UnassignedID}
	if s.halted != nil {
		return res, s.halted
	}

	ts := s.now().UnixNano()
	seq := s.seqGen.Next()
	rec := entrywal.NewPlaceRecord(seq, req)
	rec.Time = ts
	if err := s.entryWAL.Append(rec); err != nil {
		s.log.Error("entry wal append failed", zap.Uint64("seq", seq), zap.Error(err))
		return res, fmt.Errorf("log place: %w", err)
	}
	res.Seq = seq

	id, execs, err := s.book.PlaceOrder(req)
	s.metrics.ObservePlace(req, execs, err)
	if err != nil {
		s.log.Debug("order rejected",
			zap.Uint64("seq", seq),
			zap.Stringer("side", req.Side),
			zap.Stringer("kind", req.Kind),
			zap.Int64("price", req.Price),
			zap.Int64("qty", req.Quantity),
			zap.Error(err),
		)
		return res, err
	}
	res.OrderID = id
	res.Executions = execs

	if err := s.record(seq, ts, execs); err != nil {
		return res, err
	}
	s.metrics.RestingOrders.Set(float64(s.book.Len()))

	s.log.Debug("order placed",
		zap.Uint64("seq", seq),
		zap.Int64("order_id", id),
		zap.Int("executions", len(execs)),
	)
	return res, nil
}

// CancelOrder logs and applies a cancellation.
func (s *OrderService) CancelOrder(ctx context.Context, id int64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.halted != nil {
		return 0, s.halted
	}

	seq := s.seqGen.Next()
	rec := entrywal.NewCancelRecord(seq, id)
	rec.Time = s.now().UnixNano()
	if err := s.entryWAL.Append(rec); err != nil {
		s.log.Error("entry wal append failed", zap.Uint64("seq", seq), zap.Error(err))
		return 0, fmt.Errorf("log cancel: %w", err)
	}

	err := s.book.CancelOrder(id)
	s.metrics.ObserveCancel(err)
	if err != nil {
		return seq, err
	}
	s.metrics.RestingOrders.Set(float64(s.book.Len()))
	s.log.Debug("order cancelled", zap.Uint64("seq", seq), zap.Int64("order_id", id))
	return seq, nil
}

// record stores executions in the outbox and notifies listeners. An outbox
// failure halts the service: the book has moved but the executions would
// not survive a restart.
func (s *OrderService) record(seq uint64, ts int64, execs []orderbook.Execution) error {
	if len(execs) == 0 {
		return nil
	}
	if _, err := s.exitWAL.PutNew(seq, ts, execs); err != nil {
		s.halted = fmt.Errorf("%w: outbox write for seq %d: %v", ErrHalted, seq, err)
		s.log.Error("outbox write failed, halting", zap.Uint64("seq", seq), zap.Error(err))
		return s.halted
	}

	isin := s.book.Security().ISIN
	for i, e := range execs {
		r := NewExecutionReport(isin, exitwal.Key{Seq: seq, Index: uint32(i)}, ts, e)
		for _, fn := range s.listeners {
			fn(r)
		}
	}
	return nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (s *OrderService) Order(id int64) (orderbook.Order, orderbook.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Order(id)
}

type BookView struct {
	Security     orderbook.Security
	MarketPrice  int64
	NextID       int64
	Bids         []orderbook.Level
	Asks         []orderbook.Level
	BuyAtMarket  int
	SellAtMarket int
}

// Book returns up to depth aggregated levels per side, best first.
// depth <= 0 returns every level.
func (s *OrderService) Book(depth int) BookView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BookView{
		Security:     s.book.Security(),
		MarketPrice:  s.book.MarketPrice(),
		NextID:       s.book.NextID(),
		Bids:         s.book.Depth(orderbook.Buy, depth),
		Asks:         s.book.Depth(orderbook.Sell, depth),
		BuyAtMarket:  s.book.AtMarketLen(orderbook.Buy),
		SellAtMarket: s.book.AtMarketLen(orderbook.Sell),
	}
}

type Top struct {
	MarketPrice int64
	BestBid     int64
	WorstBid    int64
	BestAsk     int64
	WorstAsk    int64
}

func (s *OrderService) Top() Top {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Top{
		MarketPrice: s.book.MarketPrice(),
		BestBid:     s.book.Best(orderbook.Buy),
		WorstBid:    s.book.Worst(orderbook.Buy),
		BestAsk:     s.book.Best(orderbook.Sell),
		WorstAsk:    s.book.Worst(orderbook.Sell),
	}
}

// Security is immutable, so it needs no lock.
func (s *OrderService) Security() orderbook.Security {
	return s.book.Security()
}

// Halted reports the error that stopped the service, if any.
func (s *OrderService) Halted() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.halted
}
