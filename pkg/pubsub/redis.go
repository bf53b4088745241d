package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher fans activity events out over Redis PUBLISH. When
// StreamMaxLen is set each event is also appended to a capped stream named
// after the channel, so consumers that were offline can catch up.
type RedisPublisher struct {
	client       redis.UniversalClient
	streamMaxLen int64
}

// NewRedisPublisher connects to Redis and verifies the connection.
func NewRedisPublisher(ctx context.Context, cfg RedisConfig) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Address, err)
	}
	return newRedisPublisher(client, cfg.StreamMaxLen), nil
}

func newRedisPublisher(client redis.UniversalClient, streamMaxLen int64) *RedisPublisher {
	return &RedisPublisher{client: client, streamMaxLen: streamMaxLen}
}

func (r *RedisPublisher) Publish(ctx context.Context, channel string, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	_, err = r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.Publish(ctx, channel, data)
		if r.streamMaxLen > 0 {
			p.XAdd(ctx, &redis.XAddArgs{
				Stream: channel,
				MaxLen: r.streamMaxLen,
				Values: map[string]interface{}{"type": event.Type, "event": data},
			})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.Type, channel, err)
	}
	return nil
}

func (r *RedisPublisher) Close() error {
	return r.client.Close()
}
