// Package seffaflik is a client for the EPİAŞ transparency platform. Every
// call returns a labeled table; failures produce an empty table and a log
// entry instead of an error.
package seffaflik

import (
	"context"
	"fmt"
	"io"
	"os"

	"seffaflik/internal/config"
	"seffaflik/internal/credential"
	"seffaflik/internal/data"
	"seffaflik/internal/model"
	"seffaflik/internal/transparency"

	"github.com/sirupsen/logrus"
)

// Table is the result type of every call.
type Table = model.Table

// Query selects a date range and optional entity, period or volume type.
type Query = model.Query

// Options configures New. Zero values fall back to config defaults and the
// credential store.
type Options struct {
	Config *config.Config
	APIKey string
	Logger logrus.FieldLogger
}

// Client bundles the gateway, optional cache and service.
type Client struct {
	*transparency.Service
	Gateway *data.Client
	closer  io.Closer
}

// New builds a client. The API key comes from opts, else the credential
// store (SEFFAFLIK_API_KEY or the kimlik.json file). A missing key is not an
// error here; requests will fail with an AuthenticationError diagnostic.
func New(opts Options) (*Client, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = cfg.NewLogger(os.Stderr)
	}

	key := opts.APIKey
	if key == "" {
		loaded, err := credential.NewStore(cfg.CredentialsDir).Load()
		if err != nil && err != credential.ErrNoCredentials {
			return nil, err
		}
		key = loaded
	}

	gw := data.NewClient(key, cfg.BaseURL, log)
	gw.HTTP.Timeout = cfg.Timeout

	c := &Client{Gateway: gw}
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		mc := data.NewMemoryCache(cfg.Cache.TTL)
		gw.Cache, c.closer = mc, mc
	case config.CacheSQLite:
		sc, err := data.NewSQLiteCache(cfg.Cache.Path, cfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to open response cache: %w", err)
		}
		sc.Log = log
		gw.Cache, c.closer = sc, sc
	}

	c.Service = transparency.New(gw, log)
	c.Service.Workers = cfg.Workers
	return c, nil
}

// Close releases the response cache, if any.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// PTF returns hourly day-ahead clearing prices.
func (c *Client) PTF(ctx context.Context, start, end string) *Table {
	return c.Series(ctx, "ptf", Query{Start: start, End: end})
}

// SMF returns hourly system marginal prices with the system direction.
func (c *Client) SMF(ctx context.Context, start, end string) *Table {
	return c.Series(ctx, "smf", Query{Start: start, End: end})
}

// KGUP returns the finalized day-ahead production plan. An empty
// organizationEIC returns the market total.
func (c *Client) KGUP(ctx context.Context, start, end, organizationEIC string) *Table {
	return c.Series(ctx, "kgup", Query{Start: start, End: end, Entity: organizationEIC})
}

// EAK returns available installed capacity by source.
func (c *Client) EAK(ctx context.Context, start, end, organizationEIC string) *Table {
	return c.Series(ctx, "eak", Query{Start: start, End: end, Entity: organizationEIC})
}

func (c *Client) RealTimeGeneration(ctx context.Context, start, end string) *Table {
	return c.Series(ctx, "gerceklesen-uretim", Query{Start: start, End: end})
}

func (c *Client) RealTimeConsumption(ctx context.Context, start, end string) *Table {
	return c.Series(ctx, "gerceklesen-tuketim", Query{Start: start, End: end})
}

// Imbalance returns hourly positive/negative imbalance quantities and amounts.
func (c *Client) Imbalance(ctx context.Context, start, end string) *Table {
	return c.Series(ctx, "dengesizlik", Query{Start: start, End: end})
}

// AllOrganizationsKGUP returns one KGÜP total column per organization.
func (c *Client) AllOrganizationsKGUP(ctx context.Context, start, end string) *Table {
	return c.All(ctx, "kgup", Query{Start: start, End: end})
}
