package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

// maxResponseSize caps how much of an upstream body is read (4MB); the
// comic pages especially are uncontrolled third-party HTML.
const maxResponseSize = 4 << 20

// Service is the content-fetching contract the publish workflow and the
// proxy endpoints depend on. Every Fetch method returns a usable value even
// on failure: the error is diagnostic only and the value is already the
// documented fallback.
type Service interface {
	FetchPoem(ctx context.Context) (Poem, error)
	FetchJoke(ctx context.Context) (Joke, error)
	FetchActivity(ctx context.Context) (Activity, error)
	FetchCatFact(ctx context.Context) (Fact, error)
	FetchDogFact(ctx context.Context) (Fact, error)
	FetchTriviaFact(ctx context.Context) (Fact, error)
	FetchComic(ctx context.Context) (Comic, error)
	FetchAll(ctx context.Context) Daily
}

// HTTPService fetches from the real upstream sources. All base URLs are
// fields so tests can point an adapter at an httptest server.
type HTTPService struct {
	client  *http.Client
	timeout time.Duration

	poemBaseURL   string
	jokeURL       string
	activityURL   string
	catFactURL    string
	dogFactURL    string
	triviaFactURL string
	comicBaseURL  string
	comicSlugs    []string

	randIntN func(n int) int  // uniform [0,n); swappable in tests
	now      func() time.Time // comic date matching; swappable in tests
}

// NewHTTPService builds the production adapter set. timeout bounds each
// individual upstream call so one slow source cannot stall a publish.
func NewHTTPService(client *http.Client, timeout time.Duration) *HTTPService {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPService{
		client:        client,
		timeout:       timeout,
		poemBaseURL:   "https://poetrydb.org",
		jokeURL:       "https://v2.jokeapi.dev/joke/Any?blacklistFlags=nsfw,religious,political,racist,sexist,explicit",
		activityURL:   "https://www.boredapi.com/api/activity",
		catFactURL:    "https://catfact.ninja/fact",
		dogFactURL:    "https://dogapi.dog/api/v2/facts",
		triviaFactURL: "https://uselessfacts.jsph.pl/api/v2/facts/random",
		comicBaseURL:  "https://www.gocomics.com",
		comicSlugs:    []string{"garfield", "calvinandhobbes", "peanuts", "pearlsbeforeswine"},
		randIntN:      rand.Intn,
		now:           time.Now,
	}
}

// getJSON performs one bounded GET and decodes the body into dest.
// No retries: a single attempt, any failure is the caller's cue to fall back.
func (s *HTTPService) getJSON(ctx context.Context, url string, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read %s: %w", url, err)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

var _ Service = (*HTTPService)(nil)
