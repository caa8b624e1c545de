// Package edsm is a typed client for the Elite Dangerous Star Map web API.
package edsm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-edsm/pkg/config"
	"go-edsm/pkg/edsm/decode"
	"go-edsm/pkg/edsm/models"
	"go-edsm/pkg/version"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Base URLs of the two EDSM endpoint groups
const (
	SystemsURL = "https://www.edsm.net/api-v1"
	SystemURL  = "https://www.edsm.net/api-system-v1"
)

// DefaultUserAgent identifies this client to EDSM
var DefaultUserAgent = "go-edsm/" + version.Version

// Config selects the upstream and how requests are sent
type Config struct {
	SystemsURL string
	SystemURL  string
	UserAgent  string
	// Timeout of zero leaves timing to the transport
	Timeout         time.Duration
	EnableTelemetry bool
}

// DefaultConfig points at the public EDSM service
func DefaultConfig() Config {
	return Config{
		SystemsURL: SystemsURL,
		SystemURL:  SystemURL,
		UserAgent:  DefaultUserAgent,
	}
}

// ConfigFromSettings fills a Config from environment settings, falling back
// to DefaultConfig for anything unset
func ConfigFromSettings(s config.Settings) Config {
	cfg := Config{
		SystemsURL:      s.SystemsURL,
		SystemURL:       s.SystemURL,
		UserAgent:       s.UserAgent,
		Timeout:         s.HTTPTimeout,
		EnableTelemetry: s.EnableTelemetry,
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SystemsURL == "" {
		c.SystemsURL = def.SystemsURL
	}
	if c.SystemURL == "" {
		c.SystemURL = def.SystemURL
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	c.SystemsURL = strings.TrimRight(c.SystemsURL, "/")
	c.SystemURL = strings.TrimRight(c.SystemURL, "/")
	return c
}

// Client talks to EDSM. It holds no per-call state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	cfg        Config
	limits     *rateLimitObserver
}

// NewClient creates a client configured from the environment
func NewClient() *Client {
	return NewClientWithConfig(ConfigFromSettings(config.LoadSettings()), nil)
}

// NewClientWithConfig creates a client from cfg. A nil httpClient gets a
// default one, instrumented when telemetry is enabled.
func NewClientWithConfig(cfg Config, httpClient *http.Client) *Client {
	cfg = cfg.withDefaults()

	if httpClient == nil {
		var transport http.RoundTripper = http.DefaultTransport

		// Only add OpenTelemetry instrumentation if telemetry is enabled
		if cfg.EnableTelemetry {
			transport = otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
					return fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Host)
				}),
			)
		}

		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		}
	}

	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		limits:     newRateLimitObserver(),
	}
}

// HTTPClient returns the underlying HTTP client for advanced usage
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Config returns the effective configuration
func (c *Client) Config() Config {
	return c.cfg
}

// RateLimit returns the last rate-limit headers EDSM sent
func (c *Client) RateLimit() RateLimit {
	return c.limits.snapshot()
}

// call is one outbound request and its tracing state
type call struct {
	op        string
	name      string
	requestID string
	span      trace.Span
}

func (c *Client) begin(ctx context.Context, op, endpoint, name string) (context.Context, *call) {
	cl := &call{op: op, name: name, requestID: uuid.NewString()}

	// Only create spans if telemetry is enabled
	if c.cfg.EnableTelemetry {
		tracer := otel.Tracer("go-edsm/edsm")
		ctx, cl.span = tracer.Start(ctx, "edsm."+op)
		cl.span.SetAttributes(
			attribute.String("edsm.endpoint", endpoint),
			attribute.String("edsm.system_name", name),
			attribute.String("edsm.request_id", cl.requestID),
			attribute.String("http.user_agent", c.cfg.UserAgent),
		)
	}
	return ctx, cl
}

func (cl *call) end() {
	if cl.span != nil {
		cl.span.End()
	}
}

func (cl *call) fail(ctx context.Context, msg string, err error) error {
	if cl.span != nil {
		cl.span.RecordError(err)
		cl.span.SetStatus(codes.Error, msg)
	}
	slog.ErrorContext(ctx, "EDSM "+msg,
		"operation", cl.op,
		"system_name", cl.name,
		"request_id", cl.requestID,
		"error", err,
	)
	return err
}

// get performs one GET and returns the raw body of a 2xx reply
func (c *Client) get(ctx context.Context, cl *call, base, endpoint string, query url.Values) ([]byte, error) {
	target := base + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, cl.fail(ctx, "failed to create request", &TransportError{Op: cl.op, URL: target, Err: err})
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", cl.requestID)

	if cl.span != nil {
		cl.span.SetAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, cl.fail(ctx, "request failed", &TransportError{Op: cl.op, URL: target, Err: err})
	}
	defer resp.Body.Close()

	c.limits.observe(ctx, req, resp.Header)

	if cl.span != nil {
		cl.span.SetAttributes(
			attribute.Int("http.status_code", resp.StatusCode),
			attribute.String("http.status_text", resp.Status),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body is not interpreted
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, cl.fail(ctx, "returned non-success status", &RemoteError{
			Op:         cl.op,
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cl.fail(ctx, "failed to read response body", &TransportError{Op: cl.op, URL: target, Err: err})
	}

	if cl.span != nil {
		cl.span.SetAttributes(attribute.Int("http.response_size", len(body)))
	}
	return body, nil
}

// isEmptyReply reports the bare [] or {} EDSM sends for names it does not know
func isEmptyReply(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("{}")) || len(trimmed) == 0
}

func (c *Client) decodeList(ctx context.Context, cl *call, body []byte, requireInformation bool) ([]models.System, error) {
	if isEmptyReply(body) {
		return []models.System{}, nil
	}

	var systems []models.System
	if err := json.Unmarshal(body, &systems); err != nil {
		return nil, cl.fail(ctx, "failed to decode response", decode.Wrap("", err))
	}
	if requireInformation {
		for i := range systems {
			if !systems[i].HasInformation() {
				return nil, cl.fail(ctx, "failed to decode response",
					decode.Wrap(fmt.Sprintf("[%d]", i), decode.Missing("information")))
			}
		}
	}

	if cl.span != nil {
		cl.span.SetAttributes(attribute.Int("edsm.result_count", len(systems)))
		cl.span.SetStatus(codes.Ok, "success")
	}
	return systems, nil
}

func (c *Client) decodeOne(ctx context.Context, cl *call, body []byte, requireInformation bool) (*models.System, error) {
	if isEmptyReply(body) {
		return nil, cl.fail(ctx, "does not know system", fmt.Errorf("edsm %s %q: %w", cl.op, cl.name, ErrUnknownSystem))
	}

	var system models.System
	if err := json.Unmarshal(body, &system); err != nil {
		return nil, cl.fail(ctx, "failed to decode response", decode.Wrap("", err))
	}
	if requireInformation && !system.HasInformation() {
		return nil, cl.fail(ctx, "failed to decode response", decode.Missing("information"))
	}

	if cl.span != nil {
		cl.span.SetStatus(codes.Ok, "success")
	}
	return &system, nil
}
