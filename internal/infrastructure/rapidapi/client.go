// Package rapidapi calls the RapidAPI reels downloader on behalf of the reel service.
package rapidapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/reel-api/internal/config"
	"github.com/janhq/reel-api/internal/domain/reel"
	"github.com/janhq/reel-api/internal/infrastructure/metrics"
)

const (
	headerKey  = "X-RapidAPI-Key"
	headerHost = "X-RapidAPI-Host"

	// maxLoggedBody bounds how much of an upstream error body reaches the logs.
	maxLoggedBody = 2048
)

var errInvalidJSON = errors.New("upstream response is not valid JSON")

// Options configures the downloader client.
type Options struct {
	APIKey   string
	Host     string
	Endpoint string
	// Timeout of 0 keeps the transport default.
	Timeout time.Duration
}

// Client fetches raw reel documents from the downloader API.
type Client struct {
	apiKey     string
	host       string
	endpoint   string
	httpClient *resty.Client
	tracer     trace.Tracer
	log        zerolog.Logger
}

// NewClient creates a downloader client with an explicit credential.
func NewClient(opts Options, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache, no-store").
		SetHeader("Pragma", "no-cache").
		SetHeader("User-Agent", "Jan-Reel-API/1.0").
		SetRetryCount(0)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		host:       opts.Host,
		endpoint:   opts.Endpoint,
		httpClient: httpClient,
		tracer:     otel.Tracer("reel-api/rapidapi"),
		log:        log.With().Str("component", "rapidapi-client").Logger(),
	}
}

// NewClientFromConfig builds the client from service configuration.
func NewClientFromConfig(cfg *config.Config, log zerolog.Logger) *Client {
	return NewClient(Options{
		APIKey:   cfg.RapidAPIKey,
		Host:     cfg.RapidAPIHost,
		Endpoint: cfg.RapidAPIEndpoint,
		Timeout:  cfg.RapidAPITimeout,
	}, log)
}

// Configured reports whether a credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Fetch issues a single GET for link and returns the upstream JSON untouched.
func (c *Client) Fetch(ctx context.Context, link string) (json.RawMessage, error) {
	if !c.Configured() {
		metrics.RecordUpstreamCall(metrics.UpstreamOutcomeMisconfig, 0)
		return nil, reel.NewConfigurationError(ctx)
	}

	ctx, span := c.tracer.Start(ctx, "rapidapi.download",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("rapidapi.host", c.host),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader(headerKey, c.apiKey).
		SetHeader(headerHost, c.host).
		SetQueryParam("url", link).
		Get(c.endpoint)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordUpstreamCall(metrics.UpstreamOutcomeUnavailable, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.log.Error().Err(err).Str("link", link).Msg("download API request failed")
		return nil, reel.NewUpstreamUnavailableError(ctx, err)
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))

	if status == http.StatusNotFound {
		metrics.RecordUpstreamCall(metrics.UpstreamOutcomeNotFound, elapsed)
		span.SetStatus(codes.Error, "not found")
		return nil, reel.NewUpstreamNotFoundError(ctx, truncate(resp.String()))
	}

	if !resp.IsSuccess() {
		body := truncate(resp.String())
		metrics.RecordUpstreamCall(metrics.UpstreamOutcomeError, elapsed)
		span.SetStatus(codes.Error, "upstream error")
		c.log.Error().
			Int("status", status).
			Str("body", body).
			Str("link", link).
			Msg("download API returned an error")
		return nil, reel.NewUpstreamError(ctx, status, body, nil)
	}

	body := resp.Body()
	if !json.Valid(body) {
		metrics.RecordUpstreamCall(metrics.UpstreamOutcomeError, elapsed)
		span.SetStatus(codes.Error, "invalid json")
		c.log.Error().
			Int("status", status).
			Str("body", truncate(string(body))).
			Msg("download API returned a non-JSON body")
		return nil, reel.NewUpstreamError(ctx, status, truncate(string(body)), errInvalidJSON)
	}

	metrics.RecordUpstreamCall(metrics.UpstreamOutcomeSuccess, elapsed)
	return json.RawMessage(body), nil
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	cut := maxLoggedBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...(truncated)"
}
