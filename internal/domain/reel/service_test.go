package reel

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/reel-api/internal/utils/platformerrors"
)

type fakeFetcher struct {
	doc   json.RawMessage
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, link string) (json.RawMessage, error) {
	f.calls = append(f.calls, link)
	return f.doc, f.err
}

func TestService_Resolve(t *testing.T) {
	fetcher := &fakeFetcher{doc: json.RawMessage(`{"medias":[{"url":"u","type":"video"}]}`)}
	svc := NewService(fetcher, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), "  https://www.instagram.com/reel/ABC123/ ")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://www.instagram.com/reel/ABC123/"}, fetcher.calls)
	assert.Equal(t, "https://www.instagram.com/reel/ABC123/", result.SourceURL)
	assert.Len(t, result.Medias, 1)
}

func TestService_Resolve_InvalidLinkSkipsFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := NewService(fetcher, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), 17)
	require.Error(t, err)
	assert.True(t, platformerrors.HasCode(err, CodeValidation))
	assert.Empty(t, fetcher.calls)
}

func TestService_Resolve_PropagatesFetchError(t *testing.T) {
	upstreamErr := NewUpstreamNotFoundError(context.Background(), "missing")
	fetcher := &fakeFetcher{err: upstreamErr}
	svc := NewService(fetcher, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), "https://www.instagram.com/reel/ABC123/")
	require.Error(t, err)
	assert.Same(t, upstreamErr, platformerrors.GetPlatformError(err))
}

func TestService_Resolve_NoMedia(t *testing.T) {
	fetcher := &fakeFetcher{doc: json.RawMessage(`{"medias":[]}`)}
	svc := NewService(fetcher, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), "https://www.instagram.com/reel/ABC123/")
	require.Error(t, err)
	assert.True(t, platformerrors.HasCode(err, CodeNoMedia))
}

func TestOutcome(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, OutcomeSuccess},
		{"validation", NewValidationError(ctx, MsgLinkRequired), "validation"},
		{"configuration", NewConfigurationError(ctx), "configuration"},
		{"unavailable", NewUpstreamUnavailableError(ctx, errors.New("dial")), "upstream_unavailable"},
		{"not found", NewUpstreamNotFoundError(ctx, ""), "upstream_not_found"},
		{"upstream error", NewUpstreamError(ctx, 500, "boom", nil), "upstream_error"},
		{"no media", NewNoMediaError(ctx, "empty"), "no_media"},
		{"plain error", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestErrorStatuses(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		err    *platformerrors.PlatformError
		status int
	}{
		{"validation", NewValidationError(ctx, MsgLinkInvalid), 400},
		{"configuration", NewConfigurationError(ctx), 500},
		{"unavailable", NewUpstreamUnavailableError(ctx, nil), 502},
		{"not found", NewUpstreamNotFoundError(ctx, ""), 404},
		{"upstream error", NewUpstreamError(ctx, 503, "", nil), 502},
		{"no media", NewNoMediaError(ctx, ""), 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, platformerrors.ErrorTypeToHTTPStatus(tt.err.Type))
		})
	}
}
