package handlers

import (
	"strings"

	"seffaflik/internal/config"
	"seffaflik/internal/data"
	"seffaflik/internal/transparency"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Provider builds a service per request, since callers may bring their own
// API key. Cache is shared by all requests.
type Provider struct {
	Config     *config.Config
	Log        logrus.FieldLogger
	Cache      data.Cache
	DefaultKey string
}

// ForKey returns a service authenticated with apiKey, or the server's
// default key when apiKey is empty.
func (p *Provider) ForKey(apiKey string) *transparency.Service {
	cfg := p.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if apiKey == "" {
		apiKey = p.DefaultKey
	}
	gw := data.NewClient(apiKey, cfg.BaseURL, p.Log)
	gw.HTTP.Timeout = cfg.Timeout
	gw.Cache = p.Cache
	svc := transparency.New(gw, p.Log)
	svc.Workers = cfg.Workers
	return svc
}

// apiKey picks the key from the query parameter, then the X-API-Key header.
func apiKey(c *gin.Context, fromQuery string) string {
	if k := strings.TrimSpace(fromQuery); k != "" {
		return k
	}
	return strings.TrimSpace(c.GetHeader("X-API-Key"))
}
