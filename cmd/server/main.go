package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"matchcore/api/grpcserver"
	"matchcore/api/stream"
	"matchcore/domain/orderbook"
	"matchcore/infra/config"
	"matchcore/infra/kafka"
	"matchcore/infra/memory"
	"matchcore/infra/metrics"
	"matchcore/infra/sequence"
	entrywal "matchcore/infra/wal/entry"
	exitwal "matchcore/infra/wal/exit"
	"matchcore/jobs/broadcaster"
	"matchcore/service"
	"matchcore/snapshot"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:            cfg.WAL.EntryDir,
		SegmentSize:    cfg.WAL.SegmentSize,
		SyncEveryWrite: cfg.WAL.SyncEveryWrite,
	})
	if err != nil {
		return fmt.Errorf("entry wal: %w", err)
	}
	defer entryWAL.Close()

	// ---------------- Exit WAL ----------------

	exitWAL, err := exitwal.Open(cfg.WAL.ExitDir)
	if err != nil {
		return fmt.Errorf("exit wal: %w", err)
	}
	defer exitWAL.Close()

	// ---------------- Domain ----------------

	pool := memory.NewPool[orderbook.Order](nil)
	bookCfg, err := cfg.OrderBook(pool)
	if err != nil {
		return err
	}
	book, err := orderbook.NewOrderBook(bookCfg)
	if err != nil {
		return err
	}

	// ---------------- Service + recovery ----------------

	m := metrics.New()
	svc, err := service.NewOrderService(service.Config{
		Book:      book,
		Sequencer: sequence.New(0),
		EntryWAL:  entryWAL,
		ExitWAL:   exitWAL,
		Snapshots: &snapshot.Writer{Dir: cfg.Snapshot.Dir},
		Logger:    log,
		Metrics:   m,
	})
	if err != nil {
		return err
	}
	if _, err := svc.Recover(); err != nil {
		return fmt.Errorf("recover: %w", err)
	}

	// ---------------- Background jobs ----------------

	var jobs []<-chan struct{}
	if cfg.Snapshot.Interval > 0 {
		jobs = append(jobs, svc.StartSnapshotJob(ctx, cfg.Snapshot.Interval))
	}

	if cfg.Broadcaster.Driver != config.DriverNone {
		pub, err := kafka.New(cfg.Broadcaster.Driver, cfg.Broadcaster.Brokers, cfg.Broadcaster.Topic)
		if err != nil {
			return fmt.Errorf("broadcaster: %w", err)
		}
		bc := broadcaster.New(exitWAL, pub, broadcaster.Config{
			ISIN:      cfg.Security.ISIN,
			Interval:  cfg.Broadcaster.Interval,
			BatchSize: cfg.Broadcaster.BatchSize,
			Logger:    log,
			Metrics:   m,
		})
		defer bc.Close()
		jobs = append(jobs, bc.Start(ctx))
	}

	// ---------------- HTTP: metrics + execution stream ----------------

	execStream := stream.New(log)
	svc.Subscribe(execStream.Publish)

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.Handle("/ws/executions", execStream)
	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.GRPCAddr, err)
	}
	grpcSrv := grpcserver.NewGRPCServer(svc, log)

	errc := make(chan error, 2)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			errc <- fmt.Errorf("grpc: %w", err)
		}
	}()

	top := svc.Top()
	log.Info("matchcore running",
		zap.String("isin", cfg.Security.ISIN),
		zap.String("grpc", cfg.Server.GRPCAddr),
		zap.String("http", cfg.Server.HTTPAddr),
		zap.Stringer("collar", bookCfg.Collar),
		zap.Int64("market_price", top.MarketPrice),
	)

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errc:
		log.Error("listener failed, shutting down", zap.Error(err))
	}
	stop()

	grpcSrv.GracefulStop()
	execStream.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	for _, done := range jobs {
		<-done
	}

	if cfg.Snapshot.Interval > 0 && svc.Halted() == nil {
		if _, serr := svc.TakeSnapshot(); serr != nil {
			log.Warn("final snapshot failed", zap.Error(serr))
		}
	}
	return err
}
