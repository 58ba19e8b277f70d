package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Stream entry field names.
const (
	FieldKey     = "key"
	FieldPayload = "payload"
)

type redisEmitter struct {
	client *redis.Client
	maxLen int64
	logger *slog.Logger
}

// NewRedis creates an Emitter that appends events to a Redis stream per
// channel. Streams are capped at maxLen entries (approximately) so the
// broker does not grow without bound when no consumer trims it.
func NewRedis(client *redis.Client, maxLen int64, logger *slog.Logger) Emitter {
	return &redisEmitter{
		client: client,
		maxLen: maxLen,
		logger: logger.With("system", "events"),
	}
}

func (e *redisEmitter) Publish(ctx context.Context, channel, key string, payload []byte) error {
	err := e.client.XAdd(ctx, &redis.XAddArgs{
		Stream: channel,
		MaxLen: e.maxLen,
		Approx: true,
		Values: map[string]any{
			FieldKey:     key,
			FieldPayload: payload,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	e.logger.Debug("event published", "channel", channel, "key", key)
	return nil
}
