// Package httpfont fetches glyph fonts over HTTP for document export.
//
// The fetch is strictly best-effort: callers treat any error as "no
// font available" and fall back to transliterated rendering. There is
// no retry loop; a failed fetch fails once per export.
package httpfont

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.FontSource = (*Source)(nil)

// maxFontSize caps the download at 8 MiB. Devanagari TTF builds are
// well under this.
const maxFontSize = 8 << 20

// Source fetches fonts over HTTP.
type Source struct {
	client *http.Client
}

// NewSource creates a font source with a bounded-timeout client.
func NewSource() *Source {
	return &Source{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewSourceWithClient creates a font source with a custom client.
// Useful for testing.
func NewSourceWithClient(client *http.Client) *Source {
	return &Source{client: client}
}

// Fetch retrieves the font bytes from the given URL.
func (s *Source) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFontUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFontUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrFontUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFontSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFontUnavailable, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrFontUnavailable)
	}
	return data, nil
}
