// Package events provides the outbound event channel for playback auditing.
// Emission is fire-and-forget from the caller's perspective: the core reports
// a failed publish but never retries, so delivery guarantees belong to the
// broker, not to this package.
package events

import (
	"context"
	"time"
)

// TypeProofOfPlay identifies a playback audit event.
const TypeProofOfPlay = "PROOF_OF_PLAY"

// Emitter publishes a payload to a named channel. The key carries partition
// affinity so consumers that shard by it observe per-key ordering.
type Emitter interface {
	Publish(ctx context.Context, channel, key string, payload []byte) error
}

// ProofOfPlay is the wire payload emitted when a slideshow displays an image.
type ProofOfPlay struct {
	SlideshowID int64  `json:"slideshowId"`
	ImageID     int64  `json:"imageId"`
	Timestamp   string `json:"timestamp"`
	EventType   string `json:"eventType"`
}

// NewProofOfPlay builds a proof-of-play payload with an ISO-8601 UTC timestamp.
func NewProofOfPlay(slideshowID, imageID int64, playedAt time.Time) ProofOfPlay {
	return ProofOfPlay{
		SlideshowID: slideshowID,
		ImageID:     imageID,
		Timestamp:   playedAt.UTC().Format(time.RFC3339Nano),
		EventType:   TypeProofOfPlay,
	}
}
