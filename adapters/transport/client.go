package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/go-asaas/internal/platform/logging"
	"github.com/jsamuelsen/go-asaas/ports"
)

const (
	// instrumentationName is used for OpenTelemetry tracer and meter.
	instrumentationName = "github.com/jsamuelsen/go-asaas/adapters/transport"

	// httpStatusCategoryDivisor divides status code to get category (2xx, 4xx, 5xx).
	httpStatusCategoryDivisor = 100

	// DefaultTimeout is the request timeout used when none is configured.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "go-asaas"

	// maxErrorBody bounds how much of a failed response is kept.
	maxErrorBody = 64 << 10

	transportMaxIdleConns        = 100
	transportMaxIdleConnsPerHost = 10
	transportIdleConnTimeout     = 90 * time.Second
)

// Config configures the HTTP adapter.
type Config struct {
	// APIKey is the Asaas access token.
	APIKey string

	// ServiceName identifies the upstream for logging and tracing. Defaults to "asaas".
	ServiceName string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// AuthFunc replaces the default API key headers when set.
	AuthFunc func(*http.Request)

	// HTTPClient replaces the pooled client built by New. Timeout is ignored when set.
	HTTPClient *http.Client

	// Logger is an optional logger. If nil, slog.Default is used.
	Logger *slog.Logger
}

// Client is an instrumented ports.Adapter for the Asaas REST API.
// Each call is a single attempt: there is no retry and no circuit breaker.
// A response with status >= 400 is returned as *ports.StatusError.
// A body that cannot be read in full is returned as a plain error whatever
// the status, so it is reported as a transport failure.
type Client struct {
	http        *http.Client
	serviceName string
	userAgent   string
	auth        func(*http.Request)
	logger      *slog.Logger

	tracer trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

var _ ports.Adapter = (*Client)(nil)

// New creates a new HTTP adapter.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	auth := cfg.AuthFunc
	if auth == nil {
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		auth = apiKeyAuth(cfg.APIKey)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "asaas"
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "transport.Client"),
		slog.String("upstream", serviceName),
	)

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of Asaas HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of Asaas HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        transportMaxIdleConns,
				MaxIdleConnsPerHost: transportMaxIdleConnsPerHost,
				IdleConnTimeout:     transportIdleConnTimeout,
			},
		}
	}

	return &Client{
		http:            httpClient,
		serviceName:     serviceName,
		userAgent:       userAgent,
		auth:            auth,
		logger:          logger,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// apiKeyAuth sends the key both as a bearer token and in the access_token
// header Asaas reads.
func apiKeyAuth(key string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+key)
		req.Header.Set("access_token", key)
	}
}

// Get performs an HTTP GET against url.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.do(ctx, req)
}

// Post performs an HTTP POST against url with body encoded as JSON.
// A nil body sends an empty JSON object, including a typed nil map or pointer.
func (c *Client) Post(ctx context.Context, url string, body any) ([]byte, error) {
	if isNil(body) {
		body = struct{}{}
	}

	payload, err := sonic.ConfigStd.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req)
}

func isNil(body any) bool {
	if body == nil {
		return true
	}

	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Delete performs an HTTP DELETE against url.
func (c *Client) Delete(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.do(ctx, req)
}

// do executes req once with tracing, metrics and logging.
func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	startTime := time.Now()

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
		ctx = ContextWithRequestID(ctx, requestID)
	}
	ctx = logging.WithRequestID(logging.WithContext(ctx, c.logger), requestID)

	c.injectHeaders(req, requestID)

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			attribute.String("peer.service", c.serviceName),
			attribute.String("http.request_id", requestID),
		),
	)
	defer span.End()

	ctx = logging.WithSpan(ctx)
	logger := logging.FromContext(ctx).With(
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	logger.Log(ctx, logging.LevelTrace, "sending request", slog.String("query", req.URL.RawQuery))

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		duration := time.Since(startTime)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, duration, "error")
		logger.Warn("request failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug("failed to close response body", slog.Any("error", closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	duration := time.Since(startTime)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, resp.StatusCode, duration, "error")
		logger.Warn("reading response body failed",
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s: reading response body: %w", req.Method, req.URL.Redacted(), err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	statusCategory := fmt.Sprintf("%dxx", resp.StatusCode/httpStatusCategoryDivisor)
	c.recordMetrics(ctx, req.Method, resp.StatusCode, duration, statusCategory)

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
		logger.Debug("request rejected",
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", duration),
		)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, ports.NewStatusError(req.Method, req.URL.Redacted(), resp.StatusCode, body)
	}

	logger.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return body, nil
}

// injectHeaders adds request ID, user agent and auth to the request.
func (c *Client) injectHeaders(req *http.Request, requestID string) {
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	c.auth(req)
}

// recordMetrics records request metrics.
func (c *Client) recordMetrics(ctx context.Context, method string, statusCode int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}
