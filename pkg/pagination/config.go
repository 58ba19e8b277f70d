// Package pagination provides page request parsing and page result assembly
// for the list endpoints.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

// Environment overrides for pagination configuration.
const (
	EnvPaginationDefaultPageSize = "PAGINATION_DEFAULT_PAGE_SIZE"
	EnvPaginationMaxPageSize     = "PAGINATION_MAX_PAGE_SIZE"
)

// Config bounds the page sizes a caller can request. DefaultPageSize is
// applied when a request omits page_size; MaxPageSize caps what a request
// may ask for.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// Finalize applies defaults, loads environment overrides, and validates
// the result.
func (c *Config) Finalize() error {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 20
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 100
	}

	c.DefaultPageSize = envInt(EnvPaginationDefaultPageSize, c.DefaultPageSize)
	c.MaxPageSize = envInt(EnvPaginationMaxPageSize, c.MaxPageSize)

	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

func (c *Config) validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be positive")
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size cannot exceed max_page_size")
	}
	return nil
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
