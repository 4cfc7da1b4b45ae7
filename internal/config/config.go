package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	Workers        int           `yaml:"workers"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"` // text or json
	CredentialsDir string        `yaml:"credentials_dir"`
	Cache          CacheConfig   `yaml:"cache"`
}

type CacheConfig struct {
	Backend string        `yaml:"backend"` // none, memory, sqlite
	TTL     time.Duration `yaml:"ttl"`
	Path    string        `yaml:"path"` // sqlite only
}

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheSQLite = "sqlite"
)

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		BaseURL:   "https://api.epias.com.tr/epias/exchange/transparency/",
		Timeout:   30 * time.Second,
		LogLevel:  "info",
		LogFormat: "text",
		Cache: CacheConfig{
			Backend: CacheNone,
			TTL:     time.Hour,
		},
	}
}

// Load reads path, fills unset fields from Default and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	merged := Merge(Default(), c)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadUnchecked loads the file as written, without defaults or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level invalid: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheSQLite:
		if c.Cache.Path == "" {
			return errors.New("cache.path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("cache.backend must be none, memory or sqlite, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend != CacheNone && c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be positive")
	}
	return nil
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override *Config) *Config {
	out := *base
	if override == nil {
		return &out
	}
	if override.BaseURL != "" {
		out.BaseURL = override.BaseURL
	}
	if override.Timeout != 0 {
		out.Timeout = override.Timeout
	}
	if override.Workers != 0 {
		out.Workers = override.Workers
	}
	if override.LogLevel != "" {
		out.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		out.LogFormat = override.LogFormat
	}
	if override.CredentialsDir != "" {
		out.CredentialsDir = override.CredentialsDir
	}
	if override.Cache.Backend != "" {
		out.Cache.Backend = override.Cache.Backend
	}
	if override.Cache.TTL != 0 {
		out.Cache.TTL = override.Cache.TTL
	}
	if override.Cache.Path != "" {
		out.Cache.Path = override.Cache.Path
	}
	return &out
}

// NewLogger builds the process logger described by the config.
func (c *Config) NewLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
