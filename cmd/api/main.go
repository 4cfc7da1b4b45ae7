package main

import (
	"fmt"
	"io"
	"os"

	"seffaflik/internal/api"
	"seffaflik/internal/api/handlers"
	"seffaflik/internal/config"
	"seffaflik/internal/credential"
	"seffaflik/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("SEFFAFLIK_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logrus.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
	}
	log := cfg.NewLogger(os.Stderr)

	// A server-side key is optional; callers may send X-API-Key instead.
	defaultKey, err := credential.NewStore(cfg.CredentialsDir).Load()
	if err != nil {
		log.WithError(err).Warn("No server-side API key; requests must carry X-API-Key")
	}

	cache, closer, err := openCache(cfg, log)
	if err != nil {
		log.Fatalf("Failed to open response cache: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	provider := &handlers.Provider{
		Config:     cfg,
		Log:        log,
		Cache:      cache,
		DefaultKey: defaultKey,
	}
	router := api.NewRouter(provider, log)

	addr := fmt.Sprintf(":%s", port)
	log.Infof("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openCache(cfg *config.Config, log *logrus.Logger) (data.Cache, io.Closer, error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		c := data.NewMemoryCache(cfg.Cache.TTL)
		return c, c, nil
	case config.CacheSQLite:
		c, err := data.NewSQLiteCache(cfg.Cache.Path, cfg.Cache.TTL)
		if err != nil {
			return nil, nil, err
		}
		c.Log = log
		return c, c, nil
	default:
		return nil, nil, nil
	}
}
