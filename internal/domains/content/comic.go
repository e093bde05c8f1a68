package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// comicDateFormat is how the strip sites date their JSON-LD entries,
// in server-local terms.
const comicDateFormat = "January 2, 2006"

// browserUserAgent makes the request look like a browser; the strip sites
// block obvious non-browser clients.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// FetchComic picks one strip source uniformly at random, fetches its page,
// and pulls today's strip out of the embedded JSON-LD metadata. When the
// site has not published today's strip yet, yesterday's is accepted;
// anything else is a failure and yields the fixed fallback.
func (s *HTTPService) FetchComic(ctx context.Context) (Comic, error) {
	slug := s.comicSlugs[s.randIntN(len(s.comicSlugs))]
	pageURL := fmt.Sprintf("%s/%s", s.comicBaseURL, slug)

	page, err := s.fetchComicPage(ctx, pageURL)
	if err != nil {
		return FallbackComic(), err
	}

	now := s.now()
	today := now.Format(comicDateFormat)
	yesterday := now.AddDate(0, 0, -1).Format(comicDateFormat)

	strip, err := extractDatedStrip(page, today, yesterday)
	if err != nil {
		return FallbackComic(), fmt.Errorf("comic %s: %w", slug, err)
	}

	return Comic{ImageURL: &strip.ImageURL, AltText: strip.AltText}, nil
}

func (s *HTTPService) fetchComicPage(ctx context.Context, pageURL string) (io.Reader, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}
	return bytes.NewReader(body), nil
}
