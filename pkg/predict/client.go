package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-priceform/internal/logger"
)

const maxResponseBytes = 1 << 20

// Features is the JSON request body: feature name to parsed value.
type Features map[string]float64

// Result is a successful prediction.
type Result struct {
	Price      float64
	StatusCode int
	Latency    time.Duration
}

// Predictor is the seam the form component depends on.
type Predictor interface {
	Predict(ctx context.Context, endpoint string, features Features) (Result, error)
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout bounds each request. Zero, the default, leaves requests
// unbounded apart from the caller's context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMethod overrides the HTTP method (POST by default).
func WithMethod(method string) Option {
	return func(c *Client) {
		if m := strings.ToUpper(strings.TrimSpace(method)); m != "" {
			c.method = m
		}
	}
}

// WithLogger attaches a diagnostic logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.log = logger.OrNop(l)
	}
}

// Client posts feature payloads to a prediction endpoint.
type Client struct {
	http    *http.Client
	timeout time.Duration
	method  string
	log     logger.Logger
}

var _ Predictor = (*Client)(nil)

// NewClient constructs a Client with http.DefaultClient semantics.
func NewClient(options ...Option) *Client {
	c := &Client{
		http:   &http.Client{},
		method: http.MethodPost,
		log:    logger.NopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Predict sends features to endpoint and decodes the price.
func (c *Client) Predict(ctx context.Context, endpoint string, features Features) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("predict: context is required")
	}
	if strings.TrimSpace(endpoint) == "" {
		return Result{}, errors.New("predict: endpoint is required")
	}

	body, err := json.Marshal(features)
	if err != nil {
		return Result{}, fmt.Errorf("predict: encode features: %w", err)
	}

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, c.method, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("predict: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debugw("sending prediction request", map[string]any{
		"endpoint": endpoint,
		"method":   c.method,
		"payload":  string(body),
	})

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	latency := time.Since(started)

	c.log.Debugw("prediction response", map[string]any{
		"status":     resp.StatusCode,
		"body":       string(raw),
		"latency_ms": latency.Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, &StatusError{
			Code:    resp.StatusCode,
			Message: decodeErrorMessage(raw),
		}
	}

	price, ok := decodePrice(raw)
	if !ok {
		return Result{}, ErrInvalidResponse
	}
	return Result{Price: price, StatusCode: resp.StatusCode, Latency: latency}, nil
}

// decodePrice accepts any numeric price, zero included. Only a missing or
// non-numeric price makes the response invalid.
func decodePrice(raw []byte) (float64, bool) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return 0, false
	}
	price, ok := payload["price"].(float64)
	return price, ok
}

func decodeErrorMessage(raw []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	msg, _ := payload["error"].(string)
	return sanitizeMessage(msg)
}
