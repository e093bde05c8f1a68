package content

import (
	"context"
	"sync"

	"github.com/unignoramus11/lumen/pkg/logger"
)

// FetchAll fans out to all seven adapters concurrently and waits for every
// one to settle. Each branch writes its own field of the result, and each
// adapter already degrades to its fallback on failure, so FetchAll as a
// whole cannot fail and one slow or broken source never cancels the others.
func (s *HTTPService) FetchAll(ctx context.Context) Daily {
	var daily Daily
	var wg sync.WaitGroup

	settle := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				logger.Warn("content adapter fell back: "+name, err)
			}
		}()
	}

	settle("poem", func() (err error) {
		daily.Poem, err = s.FetchPoem(ctx)
		return
	})
	settle("joke", func() (err error) {
		daily.Joke, err = s.FetchJoke(ctx)
		return
	})
	settle("activity", func() (err error) {
		daily.Activity, err = s.FetchActivity(ctx)
		return
	})
	settle("cat-fact", func() (err error) {
		daily.CatFact, err = s.FetchCatFact(ctx)
		return
	})
	settle("dog-fact", func() (err error) {
		daily.DogFact, err = s.FetchDogFact(ctx)
		return
	})
	settle("trivia-fact", func() (err error) {
		daily.TriviaFact, err = s.FetchTriviaFact(ctx)
		return
	})
	settle("comic", func() (err error) {
		daily.Comic, err = s.FetchComic(ctx)
		return
	})

	wg.Wait()
	return daily
}
