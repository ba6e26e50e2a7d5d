package broadcaster

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"matchcore/infra/kafka"
	"matchcore/infra/metrics"
	exitwal "matchcore/infra/wal/exit"
	"matchcore/service"
)

const (
	DefaultInterval  = 250 * time.Millisecond
	DefaultBatchSize = 256
)

type Config struct {
	ISIN      string
	Interval  time.Duration
	BatchSize int
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
}

// Broadcaster drains the execution outbox into a Publisher. Delivery is
// at least once: a report is marked ACKED only after the broker confirmed
// it, and anything not ACKED is sent again on a later pass.
type Broadcaster struct {
	exitWAL   *exitwal.ExitWAL
	publisher kafka.Publisher

	isin      string
	interval  time.Duration
	batchSize int
	log       *zap.Logger
	metrics   *metrics.Metrics
}

func New(exitWAL *exitwal.ExitWAL, publisher kafka.Publisher, cfg Config) *Broadcaster {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}
	return &Broadcaster{
		exitWAL:   exitWAL,
		publisher: publisher,
		isin:      cfg.ISIN,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
		log:       cfg.Logger.Named("broadcaster"),
		metrics:   cfg.Metrics,
	}
}

// Start runs the publish loop until ctx ends. The returned channel closes
// once the loop has exited.
func (b *Broadcaster) Start(ctx context.Context) <-chan struct{} {
	b.log.Info("started", zap.Duration("interval", b.interval), zap.Int("batch", b.batchSize))

	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				b.log.Info("stopped")
				return
			case <-ticker.C:
				// Keep going while full batches come back.
				for {
					n, err := b.PublishOnce(ctx)
					if err != nil {
						b.log.Warn("publish pass failed", zap.Error(err))
					}
					if err != nil || n < b.batchSize || ctx.Err() != nil {
						break
					}
				}
			}
		}
	}()
	return done
}

type pending struct {
	key exitwal.Key
	msg kafka.Message
}

// PublishOnce sends one batch of undelivered reports and returns how many
// it sent.
func (b *Broadcaster) PublishOnce(ctx context.Context) (int, error) {
	batch := make([]pending, 0, b.batchSize)
	err := b.exitWAL.Pending(b.batchSize, func(k exitwal.Key, rec exitwal.ExitRecord) error {
		report := service.NewExecutionReport(b.isin, k, rec.Time, rec.Execution)
		value, err := json.Marshal(report)
		if err != nil {
			return err
		}
		batch = append(batch, pending{
			key: k,
			msg: kafka.Message{Key: []byte(b.isin), Value: value},
		})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan outbox: %w", err)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	msgs := make([]kafka.Message, len(batch))
	for i, p := range batch {
		if err := b.exitWAL.MarkSent(p.key); err != nil {
			return 0, err
		}
		msgs[i] = p.msg
	}

	if err := b.publisher.Publish(ctx, msgs...); err != nil {
		b.metrics.OutboxFailures.Add(float64(len(batch)))
		for _, p := range batch {
			if markErr := b.exitWAL.MarkFailed(p.key); markErr != nil {
				b.log.Error("mark failed", zap.Stringer("key", p.key), zap.Error(markErr))
			}
		}
		return 0, fmt.Errorf("publish %d reports: %w", len(batch), err)
	}

	for _, p := range batch {
		if err := b.exitWAL.MarkAcked(p.key); err != nil {
			return 0, err
		}
	}
	b.metrics.OutboxPublished.Add(float64(len(batch)))
	b.log.Debug("published", zap.Int("reports", len(batch)), zap.Stringer("last", batch[len(batch)-1].key))
	return len(batch), nil
}

func (b *Broadcaster) Close() error {
	return b.publisher.Close()
}
