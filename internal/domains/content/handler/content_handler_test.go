package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unignoramus11/lumen/internal/domains/content"
)

// stubService returns canned values, optionally with a diagnostic error to
// simulate a fallen-back adapter.
type stubService struct {
	err error
}

func (s *stubService) FetchPoem(context.Context) (content.Poem, error) {
	return content.FallbackPoem(), s.err
}
func (s *stubService) FetchJoke(context.Context) (content.Joke, error) {
	return content.FallbackJoke(), s.err
}
func (s *stubService) FetchActivity(context.Context) (content.Activity, error) {
	return content.FallbackActivity(), s.err
}
func (s *stubService) FetchCatFact(context.Context) (content.Fact, error) {
	return content.FallbackCatFact(), s.err
}
func (s *stubService) FetchDogFact(context.Context) (content.Fact, error) {
	return content.FallbackDogFact(), s.err
}
func (s *stubService) FetchTriviaFact(context.Context) (content.Fact, error) {
	return content.FallbackTriviaFact(), s.err
}
func (s *stubService) FetchComic(context.Context) (content.Comic, error) {
	return content.FallbackComic(), s.err
}
func (s *stubService) FetchAll(context.Context) content.Daily {
	return content.Daily{}
}

func newRouter(svc content.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(svc)
	r := gin.New()
	r.GET("/poem", h.Poem)
	r.GET("/joke", h.Joke)
	r.GET("/activity", h.Activity)
	r.GET("/cat-fact", h.CatFact)
	r.GET("/dog-fact", h.DogFact)
	r.GET("/trivia-fact", h.TriviaFact)
	r.GET("/comic", h.Comic)
	return r
}

func TestProxyEndpointsReturn200OnSuccess(t *testing.T) {
	r := newRouter(&stubService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/joke", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var joke content.Joke
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joke))
	assert.Equal(t, content.JokeSingle, joke.Kind)
}

func TestProxyEndpointsReturnFallbackBodyOn500(t *testing.T) {
	r := newRouter(&stubService{err: errors.New("upstream down")})

	paths := []string{"/poem", "/joke", "/activity", "/cat-fact", "/dog-fact", "/trivia-fact", "/comic"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			// The fallback payload is the body even on failure; a caller
			// reads the body regardless of the status code.
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.NotEmpty(t, w.Body.Bytes())
			assert.True(t, json.Valid(w.Body.Bytes()))
		})
	}
}

func TestComicFallbackBodyHasNullImage(t *testing.T) {
	r := newRouter(&stubService{err: errors.New("scrape failed")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/comic", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["imageUrl"])
	assert.Equal(t, "Unable to load comic", body["altText"])
}
