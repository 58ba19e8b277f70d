package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvEventsAddr overrides the event broker address.
	EnvEventsAddr = "EVENTS_ADDR"

	// EnvEventsPassword overrides the event broker password.
	EnvEventsPassword = "EVENTS_PASSWORD"

	// EnvEventsDB overrides the event broker database index.
	EnvEventsDB = "EVENTS_DB"

	// EnvEventsChannel overrides the proof-of-play channel name.
	EnvEventsChannel = "EVENTS_CHANNEL"

	// EnvEventsDialTimeout overrides the broker dial timeout.
	EnvEventsDialTimeout = "EVENTS_DIAL_TIMEOUT"
)

// EventsConfig contains event emitter configuration for the Redis stream broker.
type EventsConfig struct {
	Addr         string `toml:"addr"`
	Password     string `toml:"password"`
	DB           int    `toml:"db"`
	Channel      string `toml:"channel"`
	MaxStreamLen int64  `toml:"max_stream_len"`
	DialTimeout  string `toml:"dial_timeout"`
}

// DialTimeoutDuration parses and returns the dial timeout as a time.Duration.
func (c *EventsConfig) DialTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.DialTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the events configuration.
func (c *EventsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *EventsConfig) Merge(overlay *EventsConfig) {
	if overlay.Addr != "" {
		c.Addr = overlay.Addr
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.DB != 0 {
		c.DB = overlay.DB
	}
	if overlay.Channel != "" {
		c.Channel = overlay.Channel
	}
	if overlay.MaxStreamLen != 0 {
		c.MaxStreamLen = overlay.MaxStreamLen
	}
	if overlay.DialTimeout != "" {
		c.DialTimeout = overlay.DialTimeout
	}
}

func (c *EventsConfig) loadDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.Channel == "" {
		c.Channel = "proof-of-play"
	}
	if c.MaxStreamLen == 0 {
		c.MaxStreamLen = 100000
	}
	if c.DialTimeout == "" {
		c.DialTimeout = "5s"
	}
}

func (c *EventsConfig) loadEnv() {
	if v := os.Getenv(EnvEventsAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvEventsPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvEventsDB); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.DB = db
		}
	}
	if v := os.Getenv(EnvEventsChannel); v != "" {
		c.Channel = v
	}
	if v := os.Getenv(EnvEventsDialTimeout); v != "" {
		c.DialTimeout = v
	}
}

func (c *EventsConfig) validate() error {
	if c.Channel == "" {
		return fmt.Errorf("channel required")
	}
	if c.MaxStreamLen < 0 {
		return fmt.Errorf("max_stream_len cannot be negative")
	}
	if _, err := time.ParseDuration(c.DialTimeout); err != nil {
		return fmt.Errorf("invalid dial_timeout: %w", err)
	}
	return nil
}
