package algorithmia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	httppkg "github.com/trigg3rX/algo-cli/pkg/http"
	"github.com/trigg3rX/algo-cli/pkg/logging"
)

const (
	DefaultAPIServer = "https://api.algorithmia.com"
	algoPathPrefix   = "/v1/algo/"
)

// Config holds what the client needs to reach the API
type Config struct {
	APIServer       string
	APIKey          string
	UserAgent       string
	IdleConnTimeout time.Duration
}

// Client calls algorithms on an Algorithmia API server
type Client struct {
	logger     logging.Logger
	apiServer  string
	apiKey     string
	userAgent  string
	httpClient httppkg.HTTPClientInterface
}

// NewClient creates a new instance of Client backed by a single-shot HTTP
// client with no overall timeout.
func NewClient(logger logging.Logger, cfg Config) (*Client, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	httpConfig := httppkg.DefaultHTTPConfig()
	if cfg.IdleConnTimeout > 0 {
		httpConfig.IdleConnTimeout = cfg.IdleConnTimeout
	}
	httpClient, err := httppkg.NewHTTPClient(httpConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return NewClientWithHTTPClient(logger, cfg, httpClient)
}

// NewClientWithHTTPClient creates a Client around an existing HTTP client
func NewClientWithHTTPClient(logger logging.Logger, cfg Config, httpClient httppkg.HTTPClientInterface) (*Client, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("HTTP client cannot be nil")
	}

	apiServer := strings.TrimRight(strings.TrimSpace(cfg.APIServer), "/")
	if apiServer == "" {
		apiServer = DefaultAPIServer
	}

	return &Client{
		logger:     logger,
		apiServer:  apiServer,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}, nil
}

// AlgoURL returns the endpoint for ref with opts encoded as query parameters
func (c *Client) AlgoURL(ref AlgoRef, opts Options) string {
	query := url.Values{}
	if opts.Timeout != nil {
		query.Set("timeout", strconv.FormatUint(uint64(*opts.Timeout), 10))
	}
	if opts.EnableStdout {
		query.Set("stdout", "true")
	}

	endpoint := c.apiServer + algoPathPrefix + ref.Path()
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// Pipe submits body to the algorithm exactly once. Any status code is a
// successful round trip; only failures to send or to read the response are
// returned as errors.
func (c *Client) Pipe(ctx context.Context, ref AlgoRef, body []byte, contentType string, opts Options) (*Response, error) {
	endpoint := c.AlgoURL(ref, opts)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create algorithm request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Simple "+c.apiKey)
	}

	logger := c.logger.With("algorithm", ref.String(), "request_id", requestID)
	logger.Debug("Calling algorithm", "content_type", contentType, "bytes", len(body))

	start := time.Now()
	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warnf("Failed to close response body: %v", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logger.Debug("Algorithm responded", "status", resp.StatusCode, "bytes", len(respBody), "elapsed", time.Since(start).String())

	return &Response{
		Proto:      resp.Proto,
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// Close closes the HTTP client
func (c *Client) Close() {
	c.httpClient.Close()
}
