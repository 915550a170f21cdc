package driven

import "context"

// FontSource fetches a Unicode glyph font for document export.
//
// The fetch is best-effort: callers treat any error as "no font" and
// fall back to transliterated rendering. No retries are attempted.
type FontSource interface {
	// Fetch retrieves the font bytes from the given URL.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
