package httpfont

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

func TestSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ttf-bytes"))
	}))
	defer server.Close()

	data, err := NewSource().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, []byte("ttf-bytes"), data)
}

func TestSource_Fetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewSource().Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, domain.ErrFontUnavailable)
}

func TestSource_Fetch_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer server.Close()

	_, err := NewSource().Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, domain.ErrFontUnavailable)
}

func TestSource_Fetch_UnreachableHost(t *testing.T) {
	_, err := NewSource().Fetch(context.Background(), "http://127.0.0.1:1/font.ttf")

	assert.ErrorIs(t, err, domain.ErrFontUnavailable)
}

func TestSource_Fetch_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ttf"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource().Fetch(ctx, server.URL)

	assert.ErrorIs(t, err, domain.ErrFontUnavailable)
}
