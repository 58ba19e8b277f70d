package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvImagesAllowedExtensions overrides the image extension allow-list (comma-separated).
const EnvImagesAllowedExtensions = "IMAGES_ALLOWED_EXTENSIONS"

// defaultAllowedExtensions is the canonical image extension allow-list.
var defaultAllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".svg"}

// ImagesConfig contains image validation configuration.
type ImagesConfig struct {
	AllowedExtensions []string `toml:"allowed_extensions"`
}

// Finalize applies defaults, loads environment overrides, and validates the images configuration.
func (c *ImagesConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ImagesConfig) Merge(overlay *ImagesConfig) {
	if overlay.AllowedExtensions != nil {
		c.AllowedExtensions = overlay.AllowedExtensions
	}
}

func (c *ImagesConfig) loadDefaults() {
	if len(c.AllowedExtensions) == 0 {
		c.AllowedExtensions = append([]string(nil), defaultAllowedExtensions...)
	}
}

func (c *ImagesConfig) loadEnv() {
	if v := os.Getenv(EnvImagesAllowedExtensions); v != "" {
		parts := strings.Split(v, ",")
		exts := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				exts = append(exts, p)
			}
		}
		if len(exts) > 0 {
			c.AllowedExtensions = exts
		}
	}
}

func (c *ImagesConfig) validate() error {
	for _, ext := range c.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}
