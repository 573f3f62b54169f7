package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	received := map[string]any{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/reels", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func TestResolve_Success(t *testing.T) {
	server, received := newServer(t, http.StatusOK, `{"sourceUrl":"https://x/reel/1","medias":[{"url":"u","type":"video","quality":"720p"}]}`)
	c := New(server.URL+"/", 0)

	result, err := c.Resolve(context.Background(), "  https://x/reel/1  ")
	require.NoError(t, err)

	assert.Equal(t, "https://x/reel/1", (*received)["url"])
	assert.Equal(t, "https://x/reel/1", result.SourceURL)
	require.Len(t, result.Medias, 1)
	assert.Equal(t, "720p", *result.Medias[0].Quality)
}

func TestResolve_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message verbatim", http.StatusNotFound, `{"error":"reel not found, check the link"}`, "reel not found, check the link"},
		{"non-string error", http.StatusBadGateway, `{"error":{"code":1}}`, DefaultErrorMessage},
		{"empty json", http.StatusInternalServerError, `{}`, DefaultErrorMessage},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, DefaultErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newServer(t, tt.status, tt.body)

			_, err := New(server.URL, 0).Resolve(context.Background(), "https://x/reel/1")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Error())
		})
	}
}

func TestResolve_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url, 0).Resolve(context.Background(), "https://x/reel/1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not reach the reel service")
}

func TestFormatDuration(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		seconds *float64
		want    string
	}{
		{"missing", nil, ""},
		{"zero", f(0), ""},
		{"seconds", f(45), "45s"},
		{"rounded", f(44.6), "45s"},
		{"minutes", f(65), "1m 05s"},
		{"long", f(600), "10m 00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}
