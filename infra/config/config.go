// Package config loads server settings from an optional file and
// MATCHCORE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"matchcore/domain/orderbook"
	"matchcore/infra/kafka"
)

const EnvPrefix = "MATCHCORE"

type Config struct {
	Security    SecurityConfig    `mapstructure:"security"`
	Book        BookConfig        `mapstructure:"book"`
	Server      ServerConfig      `mapstructure:"server"`
	WAL         WALConfig         `mapstructure:"wal"`
	Snapshot    SnapshotConfig    `mapstructure:"snapshot"`
	Broadcaster BroadcasterConfig `mapstructure:"broadcaster"`
	Log         LogConfig         `mapstructure:"log"`
}

type SecurityConfig struct {
	ISIN string `mapstructure:"isin"`
	Name string `mapstructure:"name"`
}

type BookConfig struct {
	StartingPrice  int64  `mapstructure:"starting_price"`
	CollarFraction string `mapstructure:"collar_fraction"`
	DenseLevels    int64  `mapstructure:"dense_levels"`
}

type ServerConfig struct {
	GRPCAddr string `mapstructure:"grpc_addr"`
	HTTPAddr string `mapstructure:"http_addr"`
}

type WALConfig struct {
	EntryDir       string `mapstructure:"entry_dir"`
	SegmentSize    int64  `mapstructure:"segment_size"`
	SyncEveryWrite bool   `mapstructure:"sync_every_write"`
	ExitDir        string `mapstructure:"exit_dir"`
}

type SnapshotConfig struct {
	Dir      string        `mapstructure:"dir"`
	Interval time.Duration `mapstructure:"interval"`
}

type BroadcasterConfig struct {
	Driver    string        `mapstructure:"driver"`
	Brokers   []string      `mapstructure:"brokers"`
	Topic     string        `mapstructure:"topic"`
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

const DriverNone = "none"

func setDefaults(v *viper.Viper) {
	v.SetDefault("security.isin", "XS0000000000")
	v.SetDefault("security.name", "")
	v.SetDefault("book.starting_price", 100)
	v.SetDefault("book.collar_fraction", orderbook.DefaultCollar.String())
	v.SetDefault("book.dense_levels", orderbook.DefaultDenseLevels)
	v.SetDefault("server.grpc_addr", ":50051")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("wal.entry_dir", "data/entry")
	v.SetDefault("wal.segment_size", 64<<20)
	v.SetDefault("wal.sync_every_write", true)
	v.SetDefault("wal.exit_dir", "data/exit")
	v.SetDefault("snapshot.dir", "data/snapshots")
	v.SetDefault("snapshot.interval", time.Minute)
	v.SetDefault("broadcaster.driver", DriverNone)
	v.SetDefault("broadcaster.brokers", []string{"localhost:9092"})
	v.SetDefault("broadcaster.topic", "executions")
	v.SetDefault("broadcaster.interval", 250*time.Millisecond)
	v.SetDefault("broadcaster.batch_size", 256)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads path when it is not empty, applies environment overrides such
// as MATCHCORE_BOOK_STARTING_PRICE, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Security.ISIN == "" {
		errs = append(errs, errors.New("security.isin is required"))
	}
	if c.Book.StartingPrice <= 0 {
		errs = append(errs, fmt.Errorf("book.starting_price must be positive, got %d", c.Book.StartingPrice))
	}
	if _, err := c.Collar(); err != nil {
		errs = append(errs, fmt.Errorf("book.collar_fraction: %w", err))
	}
	if c.Book.DenseLevels < 0 {
		errs = append(errs, fmt.Errorf("book.dense_levels must not be negative, got %d", c.Book.DenseLevels))
	}
	if c.WAL.EntryDir == "" || c.WAL.ExitDir == "" || c.Snapshot.Dir == "" {
		errs = append(errs, errors.New("wal.entry_dir, wal.exit_dir and snapshot.dir are required"))
	}
	switch strings.ToLower(c.Broadcaster.Driver) {
	case DriverNone:
	case kafka.DriverKafkaGo, kafka.DriverSarama:
		if len(c.Broadcaster.Brokers) == 0 || c.Broadcaster.Topic == "" {
			errs = append(errs, errors.New("broadcaster.brokers and broadcaster.topic are required"))
		}
		if c.Broadcaster.Interval <= 0 {
			errs = append(errs, errors.New("broadcaster.interval must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("broadcaster.driver %q is not one of none, kafka-go, sarama", c.Broadcaster.Driver))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) Collar() (orderbook.Collar, error) {
	return orderbook.ParseCollar(c.Book.CollarFraction)
}

// OrderBook turns the book section into an orderbook.Config.
func (c *Config) OrderBook(orders orderbook.Allocator) (orderbook.Config, error) {
	collar, err := c.Collar()
	if err != nil {
		return orderbook.Config{}, err
	}
	return orderbook.Config{
		Security:      orderbook.Security{ISIN: c.Security.ISIN, Name: c.Security.Name},
		StartingPrice: c.Book.StartingPrice,
		Collar:        collar,
		DenseLevels:   c.Book.DenseLevels,
		Orders:        orders,
	}, nil
}
