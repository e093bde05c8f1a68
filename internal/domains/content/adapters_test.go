package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService points every adapter at the given base URL and makes the
// random choices deterministic (always the first option).
func newTestService(baseURL string) *HTTPService {
	s := NewHTTPService(&http.Client{}, 2*time.Second)
	s.poemBaseURL = baseURL
	s.jokeURL = baseURL + "/joke"
	s.activityURL = baseURL + "/activity"
	s.catFactURL = baseURL + "/cat"
	s.dogFactURL = baseURL + "/dog"
	s.triviaFactURL = baseURL + "/trivia"
	s.comicBaseURL = baseURL
	s.randIntN = func(int) int { return 0 }
	return s
}

// deadService targets a closed listener so every fetch fails at dial time.
func deadService(t *testing.T) *HTTPService {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return newTestService(srv.URL)
}

func TestFetchPoemCleansLines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linecount/4/title,author,lines.json", r.URL.Path)
		w.Write([]byte(`[{"title":"Test","author":"Anon","lines":["_Hello_ world","a--b","   ","last line"]}]`))
	}))
	defer srv.Close()

	s := newTestService(srv.URL)
	poem, err := s.FetchPoem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test", poem.Title)
	assert.Equal(t, []string{"Hello world", "a–b", "last line"}, poem.Lines)
}

func TestFetchPoemFallsBack(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream 500", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed payload", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":404,"reason":"Not found"}`))
		}},
		{"empty result", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			poem, err := newTestService(srv.URL).FetchPoem(context.Background())
			assert.Error(t, err)
			assert.Equal(t, FallbackPoem(), poem)
		})
	}
}

func TestFetchJokeSingle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":false,"type":"single","joke":"A one-liner."}`))
	}))
	defer srv.Close()

	joke, err := newTestService(srv.URL).FetchJoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Joke{Kind: JokeSingle, Text: "A one-liner."}, joke)
}

func TestFetchJokeTwoPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":false,"type":"twopart","setup":"Why?","delivery":"Because."}`))
	}))
	defer srv.Close()

	joke, err := newTestService(srv.URL).FetchJoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Joke{Kind: JokeTwoPart, Setup: "Why?", Delivery: "Because."}, joke)
}

func TestFetchJokeFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":true}`))
	}))
	defer srv.Close()

	joke, err := newTestService(srv.URL).FetchJoke(context.Background())
	assert.Error(t, err)
	assert.Equal(t, FallbackJoke(), joke)
}

func TestFetchActivityLowerCases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"activity":"Learn Express.js"}`))
	}))
	defer srv.Close()

	activity, err := newTestService(srv.URL).FetchActivity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "learn express.js", activity.Description)
}

func TestFetchFacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cat":
			w.Write([]byte(`{"fact":"Cats purr."}`))
		case "/dog":
			w.Write([]byte(`{"data":[{"attributes":{"body":"Dogs wag."}}]}`))
		case "/trivia":
			w.Write([]byte(`{"text":"Bananas are berries."}`))
		}
	}))
	defer srv.Close()

	s := newTestService(srv.URL)
	ctx := context.Background()

	cat, err := s.FetchCatFact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cats purr.", cat.Fact)

	dog, err := s.FetchDogFact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dogs wag.", dog.Fact)

	trivia, err := s.FetchTriviaFact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bananas are berries.", trivia.Fact)
}

func TestAllAdaptersFallBackWhenUnreachable(t *testing.T) {
	s := deadService(t)
	ctx := context.Background()

	poem, err := s.FetchPoem(ctx)
	assert.Error(t, err)
	assert.Equal(t, FallbackPoem(), poem)

	joke, err := s.FetchJoke(ctx)
	assert.Error(t, err)
	assert.Equal(t, FallbackJoke(), joke)

	activity, err := s.FetchActivity(ctx)
	assert.Error(t, err)
	assert.Equal(t, FallbackActivity(), activity)

	cat, err := s.FetchCatFact(ctx)
	assert.Error(t, err)
	assert.Equal(t, FallbackCatFact(), cat)

	dog, err := s.FetchDogFact(ctx)
	assert.Error(t, err)
	assert.Equal(t, FallbackDogFact(), dog)

	trivia, err := s.FetchTriviaFact(ctx)
	assert.Error(t, err)
	assert.Equal(t, FallbackTriviaFact(), trivia)

	comic, err := s.FetchComic(ctx)
	assert.Error(t, err)
	assert.Equal(t, FallbackComic(), comic)
}
