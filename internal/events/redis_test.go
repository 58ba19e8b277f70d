package events_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/slidekit/proofplay/internal/events"
)

func newTestEmitter(t *testing.T) (events.Emitter, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.DiscardHandler)
	return events.NewRedis(client, 1000, logger), client
}

func TestRedisPublish(t *testing.T) {
	emitter, client := newTestEmitter(t)
	ctx := context.Background()

	payload, _ := json.Marshal(events.NewProofOfPlay(1, 3, time.Now()))
	if err := emitter.Publish(ctx, "proof-of-play", "1", payload); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}

	entries, err := client.XRange(ctx, "proof-of-play", "-", "+").Result()
	if err != nil {
		t.Fatalf("XRange failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("stream entries = %d, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Values[events.FieldKey] != "1" {
		t.Errorf("key field = %v, want %q", entry.Values[events.FieldKey], "1")
	}

	stored, ok := entry.Values[events.FieldPayload].(string)
	if !ok {
		t.Fatalf("payload field is %T, want string", entry.Values[events.FieldPayload])
	}

	var event events.ProofOfPlay
	if err := json.Unmarshal([]byte(stored), &event); err != nil {
		t.Fatalf("payload decode failed: %v", err)
	}
	if event.SlideshowID != 1 || event.ImageID != 3 {
		t.Errorf("event = %+v, want slideshow 1 image 3", event)
	}
}

func TestRedisPublish_PerChannelStreams(t *testing.T) {
	emitter, client := newTestEmitter(t)
	ctx := context.Background()

	if err := emitter.Publish(ctx, "channel-a", "1", []byte("{}")); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}
	if err := emitter.Publish(ctx, "channel-b", "2", []byte("{}")); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}

	for _, channel := range []string{"channel-a", "channel-b"} {
		count, err := client.XLen(ctx, channel).Result()
		if err != nil {
			t.Fatalf("XLen(%s) failed: %v", channel, err)
		}
		if count != 1 {
			t.Errorf("stream %s length = %d, want 1", channel, count)
		}
	}
}

func TestRedisPublish_BrokerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	emitter := events.NewRedis(client, 1000, slog.New(slog.DiscardHandler))
	mr.Close()

	if err := emitter.Publish(context.Background(), "proof-of-play", "1", []byte("{}")); err == nil {
		t.Error("Publish() should fail when the broker is unreachable")
	}
}
