package pubsub

import (
	"context"
	"fmt"
	"time"
)

// KafkaConfig holds Kafka-specific configuration.
type KafkaConfig struct {
	Brokers    string `mapstructure:"brokers"`
	Partitions int    `mapstructure:"partitions"`
}

// Config holds the configuration for the activity event bus.
type Config struct {
	Driver string      `mapstructure:"driver"` // "none", "redis", "kafka"
	Redis  RedisConfig `mapstructure:"redis"`
	Kafka  KafkaConfig `mapstructure:"kafka"`
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	Address      string        `mapstructure:"address"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// StreamMaxLen caps the per-channel replay stream; 0 disables it.
	StreamMaxLen int64 `mapstructure:"stream_max_len"`
}

// DefaultConfig returns the default configuration: events disabled.
func DefaultConfig() Config {
	return Config{
		Driver: "none",
		Redis: RedisConfig{
			Address:      "localhost:6379",
			PoolSize:     10,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			StreamMaxLen: 10000,
		},
		Kafka: KafkaConfig{
			Brokers:    "localhost:9092",
			Partitions: 4,
		},
	}
}

// NewPublisher creates the Publisher selected by cfg.Driver.
func NewPublisher(ctx context.Context, cfg Config) (Publisher, error) {
	switch cfg.Driver {
	case "", "none":
		return NopPublisher{}, nil
	case "redis":
		return NewRedisPublisher(ctx, cfg.Redis)
	case "kafka":
		return NewKafkaPublisher(cfg.Kafka)
	default:
		return nil, fmt.Errorf("unsupported events driver: %s", cfg.Driver)
	}
}
