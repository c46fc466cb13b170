package virtual

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config contains configuration data from the axiom.cfg file.
type Config struct {
	BaseURL           string            `toml:"baseurl"`           // Absolute origin used for canonical links and the sitemap
	Expires           Duration          `toml:"expires"`           // Expires header for pages
	StaticExpires     Duration          `toml:"staticexpires"`     // Expires header for static assets
	Headers           map[string]string `toml:"headers"`           // Extra headers added to every response
	Newsletter        string            `toml:"newsletter"`        // External endpoint receiving newsletter sign-ups
	NewsletterTimeout Duration          `toml:"newslettertimeout"` // Limit on one call to the newsletter endpoint
	CacheBytes        int64             `toml:"cachebytes"`        // Size of the rendered file cache
	CacheDuration     Duration          `toml:"cacheduration"`     // Expiration of cached files; 0 never expires
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:       "https://axiom.dev",
		Expires:       Duration(5 * time.Minute),
		StaticExpires: Duration(24 * time.Hour),
		Headers: map[string]string{
			"X-Content-Type-Options": "nosniff",
			"Referrer-Policy":        "strict-origin-when-cross-origin",
			"X-Frame-Options":        "DENY",
		},
		NewsletterTimeout: Duration(10 * time.Second),
		CacheBytes:        10 << 20,
		CacheDuration:     Duration(time.Minute),
	}
}

// ReadConfig reads the named config file from fsys on top of the defaults.
// It is not an error if the file does not exist.
func ReadConfig(fsys fs.FS, name string) (*Config, error) {
	cfg := DefaultConfig()
	cfgBytes, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("Cannot read config file: %w", err)
	}
	err = toml.Unmarshal(cfgBytes, cfg)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse config file: %w", err)
	}
	return cfg, nil
}
