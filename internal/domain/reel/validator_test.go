package reel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/reel-api/internal/utils/platformerrors"
)

func TestValidateLink_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"plain", "https://www.instagram.com/reel/ABC123/", "https://www.instagram.com/reel/ABC123/"},
		{"trimmed", "  https://www.instagram.com/reel/DCxTlFwSJ_Y/\n", "https://www.instagram.com/reel/DCxTlFwSJ_Y/"},
		{"http with query", "http://example.com/watch?v=1", "http://example.com/watch?v=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateLink(context.Background(), tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateLink_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		message string
	}{
		{"missing", nil, MsgLinkRequired},
		{"number", 42, MsgLinkRequired},
		{"object", map[string]any{"url": "https://example.com"}, MsgLinkRequired},
		{"empty", "", MsgLinkRequired},
		{"whitespace", "   ", MsgLinkRequired},
		{"plain words", "not a link", MsgLinkInvalid},
		{"no scheme", "www.instagram.com/reel/ABC123/", MsgLinkInvalid},
		{"scheme only", "https://", MsgLinkInvalid},
		{"relative path", "/reel/ABC123", MsgLinkInvalid},
		{"file url", "file:///etc/passwd", MsgLinkInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateLink(context.Background(), tt.raw)
			require.Error(t, err)
			assert.Empty(t, got)

			platformErr := platformerrors.GetPlatformError(err)
			require.NotNil(t, platformErr)
			assert.Equal(t, CodeValidation, platformErr.Code)
			assert.Equal(t, platformerrors.ErrorTypeValidation, platformErr.Type)
			assert.Equal(t, tt.message, platformErr.Message)
		})
	}
}

func TestValidateLink_CarriesRequestID(t *testing.T) {
	ctx := platformerrors.WithRequestID(context.Background(), "req-1")

	_, err := ValidateLink(ctx, "")
	require.Error(t, err)
	assert.Equal(t, "req-1", platformerrors.GetPlatformError(err).RequestID)
}
