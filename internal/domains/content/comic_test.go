package content

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// comicPage builds a minimal strip page with one JSON-LD ImageObject per
// given (url, date) pair, plus an unrelated WebPage node that the parser
// must skip.
func comicPage(entries ...[2]string) string {
	var blocks []string
	blocks = append(blocks, `<script type="application/ld+json">{"@type":"WebPage","name":"Garfield"}</script>`)
	for _, e := range entries {
		blocks = append(blocks, fmt.Sprintf(
			`<script type="application/ld+json">{"@type":"ImageObject","contentUrl":"%s","name":"The strip","datePublished":"%s"}</script>`,
			e[0], e[1]))
	}
	return "<html><head>" + strings.Join(blocks, "") + "</head><body><h1>Comics</h1></body></html>"
}

func fixedClock() (time.Time, string, string) {
	now := time.Date(2025, 2, 15, 10, 0, 0, 0, time.Local)
	return now, now.Format(comicDateFormat), now.AddDate(0, 0, -1).Format(comicDateFormat)
}

func comicService(t *testing.T, page string) *HTTPService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	s := newTestService(srv.URL)
	now, _, _ := fixedClock()
	s.now = func() time.Time { return now }
	return s
}

func TestFetchComicPicksTodaysStrip(t *testing.T) {
	_, today, yesterday := fixedClock()
	s := comicService(t, comicPage(
		[2]string{"https://assets.example/old.gif", yesterday},
		[2]string{"https://assets.example/today.gif", today},
	))

	comic, err := s.FetchComic(context.Background())
	require.NoError(t, err)
	require.NotNil(t, comic.ImageURL)
	assert.Equal(t, "https://assets.example/today.gif", *comic.ImageURL)
	assert.Equal(t, "The strip", comic.AltText)
}

func TestFetchComicFallsBackToYesterday(t *testing.T) {
	_, _, yesterday := fixedClock()
	s := comicService(t, comicPage(
		[2]string{"https://assets.example/old.gif", yesterday},
	))

	comic, err := s.FetchComic(context.Background())
	require.NoError(t, err)
	require.NotNil(t, comic.ImageURL)
	assert.Equal(t, "https://assets.example/old.gif", *comic.ImageURL)
}

func TestFetchComicNoDatedEntry(t *testing.T) {
	s := comicService(t, comicPage(
		[2]string{"https://assets.example/ancient.gif", "January 1, 2020"},
	))

	comic, err := s.FetchComic(context.Background())
	assert.Error(t, err)
	assert.Equal(t, FallbackComic(), comic)
}

func TestFetchComicUnparseablePage(t *testing.T) {
	s := comicService(t, "<html><body>no metadata here</body></html>")

	comic, err := s.FetchComic(context.Background())
	assert.Error(t, err)
	assert.Equal(t, FallbackComic(), comic)
}

func TestExtractDatedStripReadsGraphBlocks(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
		{"@graph":[
			{"@type":"WebSite","url":"https://example.com"},
			{"@type":"ImageObject","url":"https://assets.example/graph.gif","datePublished":"February 15, 2025"}
		]}
	</script></head></html>`

	strip, err := extractDatedStrip(strings.NewReader(page), "February 15, 2025", "February 14, 2025")
	require.NoError(t, err)
	assert.Equal(t, "https://assets.example/graph.gif", strip.ImageURL)
	assert.Equal(t, "Comic strip for February 15, 2025", strip.AltText)
}

func TestExtractDatedStripReadsArrayBlocks(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
		[{"@type":"ImageObject","contentUrl":"https://assets.example/a.gif","name":"A","datePublished":"February 14, 2025"},
		 {"@type":"ImageObject","contentUrl":"https://assets.example/b.gif","name":"B","datePublished":"February 15, 2025"}]
	</script></head></html>`

	strip, err := extractDatedStrip(strings.NewReader(page), "February 15, 2025", "February 14, 2025")
	require.NoError(t, err)
	assert.Equal(t, "https://assets.example/b.gif", strip.ImageURL)
	assert.Equal(t, "B", strip.AltText)
}
