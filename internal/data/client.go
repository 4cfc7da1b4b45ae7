package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seffaflik/internal/model"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public EPİAŞ transparency platform.
const DefaultBaseURL = "https://api.epias.com.tr/epias/exchange/transparency/"

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Client is the request gateway: it performs authenticated GETs against the
// transparency API and returns the decoded "body" object.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
	Cache   Cache // optional
	Log     logrus.FieldLogger
}

// NewClient creates a client. An empty baseURL uses DefaultBaseURL.
func NewClient(apiKey, baseURL string, log logrus.FieldLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: DefaultTimeout,
		},
		Log: log,
	}
}

// envelope is the outer shape of every successful response.
type envelope struct {
	Body map[string]any `json:"body"`
}

// Fetch performs GET BaseURL+path?params and returns the response's "body"
// object. Numbers are decoded as json.Number.
//
// Every failure is returned as *model.Error and logged once here with an
// error_kind field; callers must not log it again.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	log := c.logger().WithField("path", path)

	if err := c.validateAPIKey(); err != nil {
		return nil, c.fail(log, err)
	}

	key := CacheKey(path, params)
	if c.Cache != nil {
		if raw, ok := c.Cache.Get(key); ok {
			if body, err := decodeBody(raw); err == nil {
				log.Debug("cache hit")
				return body, nil
			}
		}
	}

	u, err := c.endpointURL(path, params)
	if err != nil {
		return nil, c.fail(log, &model.Error{Kind: model.KindRequest, Code: "INVALID_URL", Message: "invalid request URL", Path: path, Err: err})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, c.fail(log, &model.Error{Kind: model.KindRequest, Code: "INVALID_REQUEST", Message: "failed to create request", Path: path, Err: err})
	}
	req.Header.Set("x-ibm-client-id", c.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	duration := time.Since(start)
	if err != nil {
		return nil, c.fail(log.WithField("duration", duration), transportError(path, err))
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "duration": duration})
	log.Debug("response received")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, c.fail(log, &model.Error{
			Kind:       model.KindAuthentication,
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    "API key rejected by the transparency platform",
			Path:       path,
		})
	default:
		return nil, c.fail(log, &model.Error{
			Kind:       model.KindRequest,
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
			Path:       path,
		})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(log, transportError(path, err))
	}
	body, err := decodeBody(raw)
	if err != nil {
		var me *model.Error
		if errors.As(err, &me) {
			me.Path = path
		}
		return nil, c.fail(log, err)
	}

	if c.Cache != nil {
		c.Cache.Set(key, raw)
	}
	return body, nil
}

func (c *Client) validateAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &model.Error{
			Kind:    model.KindAuthentication,
			Code:    "MISSING_API_KEY",
			Message: "API key is required; run `seffaflik setup` or set SEFFAFLIK_API_KEY",
		}
	}
	return nil
}

func (c *Client) endpointURL(path string, params url.Values) (string, error) {
	base := c.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base + strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", err
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

func (c *Client) fail(log logrus.FieldLogger, err error) error {
	log.WithField("error_kind", model.KindOf(err).String()).Error(err.Error())
	return err
}

func (c *Client) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return &http.Client{Timeout: DefaultTimeout}
	}
	return c.HTTP
}

// transportError classifies a failed round trip as a timeout or a
// connectivity problem.
func transportError(path string, err error) *model.Error {
	var ue *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ue) && ue.Timeout()) {
		return &model.Error{Kind: model.KindTimeout, Code: "TIMEOUT", Message: "request timed out", Path: path, Err: err}
	}
	return &model.Error{Kind: model.KindConnectivity, Code: "CONNECTION_FAILED", Message: "could not reach the transparency platform", Path: path, Err: err}
}

func decodeBody(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		shapeErr := model.NewShapeError("response is not valid JSON")
		shapeErr.Err = err
		return nil, shapeErr
	}
	if env.Body == nil {
		return nil, model.NewShapeError("response has no \"body\" object")
	}
	return env.Body, nil
}
