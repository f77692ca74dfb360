// Package fetch provides a resilient HTTP client for downloading
// remote data: circuit breaker, retry with exponential backoff,
// optional rate limiting, and OpenTelemetry client spans.
//
// Processing order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry → HTTP
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// RetryConfig controls the retry policy for failed requests.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// BreakerConfig controls the circuit breaker guarding a downstream.
type BreakerConfig struct {
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
}

// RateLimitConfig caps the outbound request rate. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Config collects the client's resilience settings.
type Config struct {
	Timeout   time.Duration
	Retry     RetryConfig
	Breaker   BreakerConfig
	RateLimit RateLimitConfig
}

// DefaultConfig returns settings suitable for downloading from public
// data servers.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			Multiplier:      2,
		},
		Breaker: BreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// Client is a resilient HTTP client for fetching remote resources.
type Client struct {
	httpClient  *http.Client
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    RetryConfig
	logger      *slog.Logger
}

// New creates a client guarded by a circuit breaker and retry policy.
// The serviceName identifies the downstream host in spans and logs. A
// nil logger falls back to slog.Default.
func New(cfg Config, serviceName string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.Breaker.HalfOpenLimit),
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.Breaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		serviceName: serviceName,
		breaker:     cb,
		limiter:     limiter,
		retryCfg:    cfg.Retry,
		logger:      logger,
	}
}

// Do executes req through the breaker, limiter, span, and retry
// layers.
//
// On success resp is non-nil with an open body that the caller must
// close. When retries are exhausted on a retryable status, both resp
// (with open body) and err are non-nil. When the breaker rejects or a
// network error occurs, resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, &resp)
		c.finishSpan(span, resp, retryErr)

		return struct{}{}, retryErr
	})

	return resp, err
}

// Name returns the downstream service identifier.
func (c *Client) Name() string {
	return c.serviceName
}

// Available reports whether the circuit breaker currently admits
// requests.
func (c *Client) Available() bool {
	return c.breaker.State() != gobreaker.StateOpen
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// startSpan creates a client span for the outbound request and injects
// W3C trace context into the request headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("fetch")

	spanName := fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName)
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// toUint32 clamps a non-negative int into uint32 range. Negative
// values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
