package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/trigg3rX/algo-cli/pkg/logging"
)

const defaultDialTimeout = 10 * time.Second

// HTTPConfig holds configuration for the HTTP client
type HTTPConfig struct {
	// Timeout bounds the whole exchange. Zero leaves it unbounded so that
	// long-running algorithms are limited only by the server.
	Timeout         time.Duration
	IdleConnTimeout time.Duration
}

// DefaultHTTPConfig returns default configuration for the HTTP client
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Timeout:         0,
		IdleConnTimeout: 30 * time.Second,
	}
}

// Validate checks the HTTP configuration for reasonable values
func (c *HTTPConfig) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0")
	}
	if c.IdleConnTimeout <= 0 {
		return fmt.Errorf("idleConnTimeout must be positive")
	}
	return nil
}

// HTTPClient is a wrapper around http.Client that sends each request exactly
// once. Failed requests are never replayed.
type HTTPClient struct {
	client     *http.Client
	HTTPConfig *HTTPConfig
	logger     logging.Logger
}

// NewHTTPClient creates a new HTTP client
func NewHTTPClient(httpConfig *HTTPConfig, logger logging.Logger) (*HTTPClient, error) {
	if httpConfig == nil {
		httpConfig = DefaultHTTPConfig()
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	if err := httpConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid HTTP config: %w", err)
	}

	dialTimeout := defaultDialTimeout
	if httpConfig.Timeout > 0 && httpConfig.Timeout/2 < dialTimeout {
		dialTimeout = httpConfig.Timeout / 2
	}

	client := &http.Client{
		Timeout: httpConfig.Timeout,
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			IdleConnTimeout:   httpConfig.IdleConnTimeout,
			DisableKeepAlives: false,
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: httpConfig.IdleConnTimeout,
			}).DialContext,
			TLSHandshakeTimeout:   dialTimeout,
			ExpectContinueTimeout: time.Second,
		},
	}

	return &HTTPClient{
		client:     client,
		HTTPConfig: httpConfig,
		logger:     logger,
	}, nil
}

// Do performs a single HTTP request.
// The caller is responsible for closing the response body.
func (c *HTTPClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	c.logger.Debugf("%s %s", req.Method, req.URL.Redacted())

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debugf("%s %s failed after %s: %v", req.Method, req.URL.Redacted(), time.Since(start), err)
		return nil, err
	}
	c.logger.Debugf("%s %s -> %d in %s", req.Method, req.URL.Redacted(), resp.StatusCode, time.Since(start))
	return resp, nil
}

// Close closes idle connections
func (c *HTTPClient) Close() {
	c.client.CloseIdleConnections()
}
